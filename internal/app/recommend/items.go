package recommend

import (
	"github.com/samber/lo"

	"collab-filter/internal/app/errors"
	"collab-filter/internal/app/grid"
	"collab-filter/internal/app/progress"
	"collab-filter/internal/app/similarity"
)

// ItemIndex holds, for every column of the grid it was built from, the
// columns most similar to it. Entry i belongs to column i.
type ItemIndex []Ranked

// Similar returns the precomputed neighbors of item.
func (x ItemIndex) Similar(item int) (Ranked, error) {
	if item < 0 || item >= len(x) {
		return nil, errors.OutOfRange("item", item, len(x))
	}
	return x[item], nil
}

// CalculateSimilarItems transposes g and ranks every column against all the
// others with the distance metric, keeping the best k for each. Columns are
// visited once, in order. reporter may be nil.
func CalculateSimilarItems(g *grid.Grid, k int, reporter progress.Reporter) (ItemIndex, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	if reporter == nil {
		reporter = progress.Nop{}
	}

	itemPrefs := g.Transpose()
	opts := Options{K: k, Metric: similarity.MetricDistance}
	index := make(ItemIndex, itemPrefs.Rows())

	reporter.Start(itemPrefs.Rows())
	defer reporter.Finish()

	for item := 0; item < itemPrefs.Rows(); item++ {
		scores, err := TopMatches(itemPrefs, item, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "rank item %d", item)
		}
		index[item] = scores
		reporter.Increment()
	}

	return index, nil
}

// GetRecommendedItems scores the columns user has not rated from the
// precomputed index: each rated column r contributes sim*rating(r) to its
// similar columns, and the sum is divided by the total similarity.
func GetRecommendedItems(g *grid.Grid, index ItemIndex, user int, k int) (Ranked, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	if err := g.CheckRow(user); err != nil {
		return nil, err
	}
	if len(index) != g.Cols() {
		return nil, errors.Wrapf(errors.ErrShapeMismatch, "index has %d items, grid has %d columns", len(index), g.Cols())
	}

	scores := make(map[int]float64)
	totalSim := make(map[int]float64)

	for item := 0; item < g.Cols(); item++ {
		rating := g.Value(user, item)
		if rating <= 0 {
			continue
		}
		for _, neighbor := range index[item] {
			if err := g.CheckCol(neighbor.ID); err != nil {
				return nil, errors.Wrapf(errors.ErrShapeMismatch, "index entry %d references column %d", item, neighbor.ID)
			}
			// Ignore if this user has already rated this item
			if g.Value(user, neighbor.ID) > 0 {
				continue
			}
			scores[neighbor.ID] += neighbor.Score * float64(rating)
			totalSim[neighbor.ID] += neighbor.Score
		}
	}

	rankings := lo.FilterMap(lo.Keys(scores), func(item int, _ int) (Scored, bool) {
		if totalSim[item] == 0 {
			return Scored{}, false
		}
		return Scored{ID: item, Score: scores[item] / totalSim[item]}, true
	})

	return topK(rankings, k), nil
}
