package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"collab-filter/internal/app/grid"
)

// SampleRows is the 3 users x 3 items grid used throughout the tests.
// -1 marks an unrated cell.
var SampleRows = [][]int{
	{5, 3, -1},
	{4, 3, 2},
	{-1, 2, 5},
}

// SampleFeed encodes SampleRows as feed records.
const SampleFeed = `0 0 5 881250949
0 1 3 891717742
1 0 4 878887116
1 1 3 880606923
1 2 2 886397596
2 1 2 884182806
2 2 5 881171488
`

// CriticsRows is a 7 critics x 6 movies grid of doubled half-star ratings.
var CriticsRows = [][]int{
	{5, 7, 6, 7, 5, 6},
	{6, 7, 3, 10, 6, 7},
	{6, 6, -1, 7, 8, 6},
	{-1, 7, 6, 8, 8, -1},
	{6, 8, 4, 8, 6, 4},
	{6, 8, -1, 8, 6, 5},
	{-1, 9, -1, 8, 2, -1},
}

// SampleGrid builds SampleRows.
func SampleGrid(t testing.TB) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(SampleRows)
	require.NoError(t, err)
	return g
}

// CriticsGrid builds CriticsRows.
func CriticsGrid(t testing.TB) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(CriticsRows)
	require.NoError(t, err)
	return g
}

// PseudoRandomGrid fills a rows x cols grid deterministically from seed.
// Roughly one cell in density is left unrated; ratings are 1..5.
func PseudoRandomGrid(t testing.TB, rows, cols int, seed uint32, density int) *grid.Grid {
	t.Helper()
	b, err := grid.NewBuilder(rows, cols)
	require.NoError(t, err)

	state := seed
	next := func() uint32 {
		// xorshift32
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		return state
	}
	if state == 0 {
		state = 1
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if density > 0 && next()%uint32(density) == 0 {
				continue
			}
			require.NoError(t, b.Set(r, c, int(next()%5)+1))
		}
	}
	return b.Build()
}
