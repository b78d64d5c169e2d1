// Package testutil provides shared fixtures and mocks for the collab-filter
// tests.
//
// Fixtures (fixtures.go):
//   - SampleRows / SampleGrid: the 3x3 grid with one unrated cell per edge user
//   - CriticsRows / CriticsGrid: a 7x6 grid with a handful of gaps
//   - SampleFeed: SampleRows as "user item rating timestamp" records
//   - PseudoRandomGrid: deterministic larger grids for property checks
//
// Databases (db_helpers.go):
//   - SetupRatingsDB: a temporary SQLite file with the ratings table, seeded
//     with SeedRows or SeedFeed
//
// Mocks (mock_factory.go):
//   - MockCalculator: testify mock of similarity.Calculator
//   - RecordingCalculator: wraps a real calculator and records every pair
//   - MockReporter: testify mock of progress.Reporter
package testutil
