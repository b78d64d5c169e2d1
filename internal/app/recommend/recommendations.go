package recommend

import (
	"github.com/samber/lo"

	"collab-filter/internal/app/errors"
	"collab-filter/internal/app/grid"
)

// GetRecommendations predicts a rating for every column entity has not rated
// (sentinel or non-positive) as the similarity-weighted mean of the other
// rows' positive ratings. Rows with similarity <= 0 contribute nothing.
// Columns no positively similar row has rated are left out.
func GetRecommendations(g *grid.Grid, entity int, opts Options) (Ranked, error) {
	if err := checkK(opts.K); err != nil {
		return nil, err
	}
	if err := g.CheckRow(entity); err != nil {
		return nil, err
	}

	calc := opts.calculator()
	totals := make([]float64, g.Cols())
	simSums := make([]float64, g.Cols())

	for other := 0; other < g.Rows(); other++ {
		// don't compare me to myself
		if other == entity {
			continue
		}
		sim, err := calc.Calculate(g, entity, other)
		if err != nil {
			return nil, errors.Wrapf(err, "score row %d against %d", other, entity)
		}
		if sim <= 0 {
			continue
		}

		for item := 0; item < g.Cols(); item++ {
			rating := g.Value(other, item)
			if g.Value(entity, item) <= 0 && rating > 0 {
				totals[item] += float64(rating) * sim
				simSums[item] += sim
			}
		}
	}

	rankings := lo.FilterMap(lo.Range(g.Cols()), func(item int, _ int) (Scored, bool) {
		if simSums[item] == 0 {
			return Scored{}, false
		}
		return Scored{ID: item, Score: totals[item] / simSums[item]}, true
	})

	return topK(rankings, opts.K), nil
}
