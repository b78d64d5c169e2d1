package similarity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "collab-filter/internal/app/errors"
	"collab-filter/internal/app/grid"
)

func sampleGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows([][]int{
		{5, 3, -1},
		{4, 3, 2},
		{-1, 2, 5},
	})
	require.NoError(t, err)
	return g
}

func TestCalculatorInterface(t *testing.T) {
	// Arrange
	var calculator Calculator
	calculator = NewDistanceCalculator()
	g := sampleGrid(t)

	// Act
	score, err := calculator.Calculate(g, 0, 1)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 0.5, score)
}

func TestDistanceCalculation(t *testing.T) {
	calculator := NewDistanceCalculator()
	g := sampleGrid(t)

	testCases := []struct {
		name     string
		a, b     int
		expected float64
	}{
		{"shared columns 0 and 1", 0, 1, 0.5},
		{"single shared column", 0, 2, 0.5},
		{"two shared columns with large gap", 1, 2, 1.0 / 11.0},
		{"identical row", 1, 1, 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := calculator.Calculate(g, tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, score, 1e-12)
		})
	}
}

func TestPearsonCalculation(t *testing.T) {
	calculator := NewPearsonCalculator()
	g := sampleGrid(t)

	testCases := []struct {
		name     string
		a, b     int
		expected float64
	}{
		{"perfect positive correlation", 0, 1, 1.0},
		{"single shared column has no variance", 0, 2, 0.0},
		{"perfect negative correlation", 1, 2, -1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := calculator.Calculate(g, tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, score, 1e-9)
		})
	}
}

func TestNoSharedItems(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, -1, 4},
		{-1, 2, -1},
	})
	require.NoError(t, err)

	for _, calculator := range []Calculator{NewDistanceCalculator(), NewPearsonCalculator()} {
		score, err := calculator.Calculate(g, 0, 1)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, score)
	}
}

func TestPearsonZeroVariance(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{3, 3, 3, 3},
		{1, 2, 4, 5},
	})
	require.NoError(t, err)

	score, err := NewPearsonCalculator().Calculate(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestCalculatorOutOfRange(t *testing.T) {
	g := sampleGrid(t)

	for _, calculator := range []Calculator{NewDistanceCalculator(), NewPearsonCalculator()} {
		_, err := calculator.Calculate(g, 0, 3)
		assert.True(t, errors.Is(err, apperrors.ErrOutOfRange))

		_, err = calculator.Calculate(g, -1, 0)
		assert.True(t, errors.Is(err, apperrors.ErrOutOfRange))
	}
}

// Scores stay in range and are symmetric on a denser pseudo-random grid.
func TestScoreBounds(t *testing.T) {
	const rows, cols = 12, 30
	b, err := grid.NewBuilder(rows, cols)
	require.NoError(t, err)
	seed := 7
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			seed = (seed*1103515245 + 12345) % 2147483648
			if seed%4 != 0 {
				require.NoError(t, b.Set(r, c, seed%5+1))
			}
		}
	}
	g := b.Build()

	dist := NewDistanceCalculator()
	corr := NewPearsonCalculator()
	for a := 0; a < rows; a++ {
		for o := 0; o < rows; o++ {
			d, err := dist.Calculate(g, a, o)
			require.NoError(t, err)
			assert.Greater(t, d, 0.0)
			assert.LessOrEqual(t, d, 1.0)

			p, err := corr.Calculate(g, a, o)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p, -1.0-1e-9)
			assert.LessOrEqual(t, p, 1.0+1e-9)

			back, err := corr.Calculate(g, o, a)
			require.NoError(t, err)
			assert.InDelta(t, p, back, 1e-12)
		}
	}
}

func TestLargeRatingsDoNotOverflow(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1 << 30, 1},
		{1, 1 << 30},
	})
	require.NoError(t, err)

	score, err := NewDistanceCalculator().Calculate(g, 0, 1)
	require.NoError(t, err)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 1e-17)
}

func TestParseMetric(t *testing.T) {
	testCases := []struct {
		input    string
		expected Metric
		wantErr  bool
	}{
		{"", MetricPearson, false},
		{"pearson", MetricPearson, false},
		{"Correlation", MetricPearson, false},
		{"distance", MetricDistance, false},
		{" EUCLIDEAN ", MetricDistance, false},
		{"cosine", MetricPearson, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			m, err := ParseMetric(tc.input)
			if tc.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrUnknownMetric))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m)
		})
	}
}

func TestMetricCalculator(t *testing.T) {
	assert.IsType(t, &PearsonCalculator{}, MetricPearson.Calculator())
	assert.IsType(t, &DistanceCalculator{}, MetricDistance.Calculator())
	assert.Equal(t, "pearson", MetricPearson.String())
	assert.Equal(t, "distance", MetricDistance.String())
	assert.Equal(t, "unknown", Metric(42).String())
}
