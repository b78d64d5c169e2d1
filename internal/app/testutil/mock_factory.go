package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"collab-filter/internal/app/grid"
)

// MockCalculator is a testify mock of similarity.Calculator.
type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) Calculate(g *grid.Grid, a, b int) (float64, error) {
	args := m.Called(g, a, b)
	return args.Get(0).(float64), args.Error(1)
}

// Pair is an ordered (a, b) similarity request.
type Pair struct {
	A, B int
}

// RecordingCalculator wraps a calculator and remembers every pair it was
// asked to score.
type RecordingCalculator struct {
	Inner interface {
		Calculate(g *grid.Grid, a, b int) (float64, error)
	}

	mu    sync.Mutex
	calls []Pair
}

func (r *RecordingCalculator) Calculate(g *grid.Grid, a, b int) (float64, error) {
	r.mu.Lock()
	r.calls = append(r.calls, Pair{A: a, B: b})
	r.mu.Unlock()
	return r.Inner.Calculate(g, a, b)
}

// Calls returns a copy of the recorded pairs.
func (r *RecordingCalculator) Calls() []Pair {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Pair, len(r.calls))
	copy(out, r.calls)
	return out
}

// MockReporter is a testify mock of progress.Reporter.
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Start(total int) { m.Called(total) }
func (m *MockReporter) Increment()      { m.Called() }
func (m *MockReporter) Finish()         { m.Called() }
