// Package recommend ranks neighbors and predicts ratings from a grid.
//
// Every function here is a pure computation over an immutable grid.Grid:
// nothing is cached between calls and nothing is mutated, so callers may run
// them concurrently.
package recommend

import (
	"sort"

	"collab-filter/internal/app/errors"
	"collab-filter/internal/app/grid"
	"collab-filter/internal/app/similarity"
)

// Default result sizes.
const (
	DefaultMatchK          = 5
	DefaultRecommendationK = 10
	DefaultItemK           = 10
)

// Scored pairs an entity (row or column index) with a score.
type Scored struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

// Ranked is sorted by descending score.
type Ranked []Scored

// IDs returns the entity ids in rank order.
func (r Ranked) IDs() []int {
	ids := make([]int, len(r))
	for i, s := range r {
		ids[i] = s.ID
	}
	return ids
}

// Options controls a ranking call.
type Options struct {
	// K is the maximum number of results.
	K int
	// Metric picks the similarity measure when Calculator is nil.
	Metric similarity.Metric
	// Calculator overrides Metric when set.
	Calculator similarity.Calculator
}

// DefaultMatchOptions returns {K: 5, Metric: pearson}.
func DefaultMatchOptions() Options {
	return Options{K: DefaultMatchK, Metric: similarity.DefaultMetric}
}

// DefaultRecommendationOptions returns {K: 10, Metric: pearson}.
func DefaultRecommendationOptions() Options {
	return Options{K: DefaultRecommendationK, Metric: similarity.DefaultMetric}
}

func (o Options) calculator() similarity.Calculator {
	if o.Calculator != nil {
		return o.Calculator
	}
	return o.Metric.Calculator()
}

func checkK(k int) error {
	if k <= 0 {
		return errors.Wrapf(errors.ErrInvalidK, "got %d", k)
	}
	return nil
}

// topK sorts scores in place, highest first, and keeps at most k of them.
// Equal scores are ordered by id so results are reproducible.
func topK(scores Ranked, k int) Ranked {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].ID < scores[j].ID
	})
	if len(scores) > k {
		return scores[:k]
	}
	return scores
}

// TopMatches ranks every other row of g against entity and returns the best
// opts.K of them. The entity itself is never scored. Fewer than K rows yields
// a shorter list.
func TopMatches(g *grid.Grid, entity int, opts Options) (Ranked, error) {
	if err := checkK(opts.K); err != nil {
		return nil, err
	}
	if err := g.CheckRow(entity); err != nil {
		return nil, err
	}

	calc := opts.calculator()
	scores := make(Ranked, 0, g.Rows()-1)
	for other := 0; other < g.Rows(); other++ {
		if other == entity {
			continue
		}
		score, err := calc.Calculate(g, entity, other)
		if err != nil {
			return nil, errors.Wrapf(err, "score row %d against %d", other, entity)
		}
		scores = append(scores, Scored{ID: other, Score: score})
	}

	return topK(scores, opts.K), nil
}
