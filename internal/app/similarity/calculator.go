package similarity

import (
	"math"

	"collab-filter/internal/app/grid"
)

// Calculator scores how alike two rows of a grid are.
// Higher scores mean more alike; a pair with no shared ratings scores 0.
type Calculator interface {
	Calculate(g *grid.Grid, a, b int) (float64, error)
}

// sharedItems marks the columns where both rows hold a rating and returns the
// mask together with the number of marked columns.
func sharedItems(g *grid.Grid, a, b int) ([]bool, int) {
	shared := make([]bool, g.Cols())
	n := 0
	for c := range shared {
		if grid.IsRated(g.Value(a, c)) && grid.IsRated(g.Value(b, c)) {
			shared[c] = true
			n++
		}
	}
	return shared, n
}

func checkRows(g *grid.Grid, a, b int) error {
	if err := g.CheckRow(a); err != nil {
		return err
	}
	return g.CheckRow(b)
}

// DistanceCalculator scores 1 / (1 + sum of squared rating differences) over
// the shared items.
type DistanceCalculator struct{}

// NewDistanceCalculator creates a new distance-based calculator
func NewDistanceCalculator() *DistanceCalculator {
	return &DistanceCalculator{}
}

// Calculate returns a score in (0, 1], or 0 when nothing is shared.
func (d *DistanceCalculator) Calculate(g *grid.Grid, a, b int) (float64, error) {
	if err := checkRows(g, a, b); err != nil {
		return 0, err
	}

	shared, n := sharedItems(g, a, b)
	if n == 0 {
		return 0, nil
	}

	var sumOfSquares int64
	for c, ok := range shared {
		if !ok {
			continue
		}
		diff := int64(g.Value(a, c)) - int64(g.Value(b, c))
		sumOfSquares += diff * diff
	}

	return 1.0 / (1.0 + float64(sumOfSquares)), nil
}

// PearsonCalculator scores the Pearson correlation coefficient of the two
// rows over the shared items.
type PearsonCalculator struct{}

// NewPearsonCalculator creates a new Pearson correlation calculator
func NewPearsonCalculator() *PearsonCalculator {
	return &PearsonCalculator{}
}

// Calculate returns a value in [-1, 1]. No overlap and zero variance on
// either side both score 0. The result is not clamped.
func (p *PearsonCalculator) Calculate(g *grid.Grid, a, b int) (float64, error) {
	if err := checkRows(g, a, b); err != nil {
		return 0, err
	}

	shared, n := sharedItems(g, a, b)
	if n == 0 {
		return 0, nil
	}

	var sum1, sum2, sum1Sq, sum2Sq, pSum int64
	for c, ok := range shared {
		if !ok {
			continue
		}
		r1 := int64(g.Value(a, c))
		r2 := int64(g.Value(b, c))
		sum1 += r1
		sum2 += r2
		sum1Sq += r1 * r1
		sum2Sq += r2 * r2
		pSum += r1 * r2
	}

	count := float64(n)
	s1, s2 := float64(sum1), float64(sum2)
	num := float64(pSum) - s1*s2/count
	den := math.Sqrt((float64(sum1Sq) - s1*s1/count) * (float64(sum2Sq) - s2*s2/count))
	if den == 0 || math.IsNaN(den) {
		return 0, nil
	}

	return num / den, nil
}
