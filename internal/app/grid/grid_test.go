package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "collab-filter/internal/app/errors"
)

func TestNewBuilderFillsUnrated(t *testing.T) {
	b, err := NewBuilder(2, 3)
	require.NoError(t, err)

	g := b.Build()
	require.NotNil(t, g)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			v, err := g.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, Unrated, v)
		}
	}
	assert.Equal(t, 0, g.RatedCount())
}

func TestNewBuilderRejectsEmptyShape(t *testing.T) {
	testCases := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative", -1, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBuilder(tc.rows, tc.cols)
			assert.True(t, errors.Is(err, apperrors.ErrEmptyGrid))
		})
	}
}

func TestBuilderSet(t *testing.T) {
	b, err := NewBuilder(2, 2)
	require.NoError(t, err)

	require.NoError(t, b.Set(0, 1, 4))
	require.NoError(t, b.Set(0, 1, 5)) // later record wins

	err = b.Set(2, 0, 3)
	assert.True(t, errors.Is(err, apperrors.ErrOutOfRange))
	err = b.Set(0, -1, 3)
	assert.True(t, errors.Is(err, apperrors.ErrOutOfRange))

	g := b.Build()
	v, err := g.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, g.RatedCount())

	// frozen
	assert.Error(t, b.Set(0, 0, 1))
	assert.Nil(t, b.Build())
}

func TestBuilderSetRatingBounds(t *testing.T) {
	b, err := NewBuilder(1, 3)
	require.NoError(t, err)

	limit := int64(MaxRating)
	require.NoError(t, b.Set(0, 0, int(limit)))
	require.NoError(t, b.Set(0, 1, int(-limit)))
	assert.ErrorIs(t, b.Set(0, 2, int(limit+1)), apperrors.ErrOutOfRange)
	assert.ErrorIs(t, b.Set(0, 2, int(-limit-1)), apperrors.ErrOutOfRange)

	g := b.Build()
	assert.Equal(t, int(limit), g.Value(0, 0))
	assert.Equal(t, int(-limit), g.Value(0, 1))
	assert.Equal(t, Unrated, g.Value(0, 2))
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]int{{5, 3, -1}, {4, 3, 2}, {-1, 2, 5}})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 7, g.RatedCount())

	row, err := g.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 2, 5}, row)

	_, err = FromRows([][]int{{1, 2}, {3}})
	assert.True(t, errors.Is(err, apperrors.ErrRaggedGrid))

	_, err = FromRows(nil)
	assert.True(t, errors.Is(err, apperrors.ErrEmptyGrid))
}

func TestAtOutOfRange(t *testing.T) {
	g, err := FromRows([][]int{{1, 2}})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		row, col int
	}{
		{"row too large", 1, 0},
		{"negative row", -1, 0},
		{"col too large", 0, 2},
		{"negative col", 0, -3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.At(tc.row, tc.col)
			assert.True(t, errors.Is(err, apperrors.ErrOutOfRange))
		})
	}

	_, err = g.Row(4)
	assert.True(t, errors.Is(err, apperrors.ErrOutOfRange))
}

func TestTranspose(t *testing.T) {
	g, err := FromRows([][]int{
		{1, 2, 3},
		{4, -1, 6},
	})
	require.NoError(t, err)

	tr := g.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())

	for i := 0; i < tr.Rows(); i++ {
		for j := 0; j < tr.Cols(); j++ {
			want, err := g.At(j, i)
			require.NoError(t, err)
			got, err := tr.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want, got, "(%d,%d)", i, j)
		}
	}

	// input untouched
	v, err := g.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Unrated, v)
	assert.Equal(t, 2, g.Rows())
}

func TestTransposeRoundTrip(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 5}, {4, 1}, {3, 7}, {8, 8}}

	for _, s := range shapes {
		b, err := NewBuilder(s[0], s[1])
		require.NoError(t, err)
		for r := 0; r < s[0]; r++ {
			for c := 0; c < s[1]; c++ {
				if (r+c)%3 != 0 {
					require.NoError(t, b.Set(r, c, (r*s[1]+c)%5+1))
				}
			}
		}
		g := b.Build()

		assert.True(t, g.Transpose().Transpose().Equal(g), "shape %v", s)
		if s[0] != s[1] {
			assert.False(t, g.Transpose().Equal(g))
		}
	}
}

func TestEqual(t *testing.T) {
	a, err := FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	c, err := FromRows([][]int{{1, 2}, {3, 5}})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
