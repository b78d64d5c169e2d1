// Package grid holds the dense rating grid every similarity and ranking
// operation reads from.
//
// A Grid is built once through a Builder and is immutable afterwards, so it
// can be shared freely between goroutines.
package grid

import (
	"gonum.org/v1/gonum/mat"

	"collab-filter/internal/app/errors"
)

// Unrated marks a cell with no rating recorded. Valid ratings are positive.
const Unrated = -1

// Grid is a rows x cols matrix of integer ratings.
type Grid struct {
	data *mat.Dense
	rows int
	cols int
}

// Rows returns the size of the row population.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the size of the column population.
func (g *Grid) Cols() int {
	return g.cols
}

// CheckRow returns an out-of-range error unless 0 <= row < Rows().
func (g *Grid) CheckRow(row int) error {
	if row < 0 || row >= g.rows {
		return errors.OutOfRange("row", row, g.rows)
	}
	return nil
}

// CheckCol returns an out-of-range error unless 0 <= col < Cols().
func (g *Grid) CheckCol(col int) error {
	if col < 0 || col >= g.cols {
		return errors.OutOfRange("column", col, g.cols)
	}
	return nil
}

// At returns the rating stored at (row, col).
func (g *Grid) At(row, col int) (int, error) {
	if err := g.CheckRow(row); err != nil {
		return 0, err
	}
	if err := g.CheckCol(col); err != nil {
		return 0, err
	}
	return g.Value(row, col), nil
}

// Value is At without bounds reporting. It panics on an out-of-range index,
// so callers validate indices once with CheckRow/CheckCol before looping.
func (g *Grid) Value(row, col int) int {
	return int(g.data.At(row, col))
}

// Row returns a copy of one row's ratings.
func (g *Grid) Row(row int) ([]int, error) {
	if err := g.CheckRow(row); err != nil {
		return nil, err
	}
	out := make([]int, g.cols)
	for c := range out {
		out[c] = g.Value(row, c)
	}
	return out, nil
}

// Transpose returns a new cols x rows grid whose (i, j) entry equals the
// receiver's (j, i) entry. The receiver is not modified.
func (g *Grid) Transpose() *Grid {
	return &Grid{
		data: mat.DenseCopyOf(g.data.T()),
		rows: g.cols,
		cols: g.rows,
	}
}

// Equal reports whether both grids have the same shape and ratings.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	return mat.Equal(g.data, other.data)
}

// RatedCount returns the number of cells holding a rating.
func (g *Grid) RatedCount() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if IsRated(g.Value(r, c)) {
				n++
			}
		}
	}
	return n
}

// IsRated reports whether v is a recorded rating rather than the sentinel.
func IsRated(v int) bool {
	return v != Unrated
}

// FromRows builds a grid from a rectangular slice of rows. Mostly useful for
// small fixtures; feeds go through a Builder.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.ErrEmptyGrid
	}
	b, err := NewBuilder(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.cols {
			return nil, errors.Wrapf(errors.ErrRaggedGrid, "row %d has %d columns, want %d", r, len(row), b.cols)
		}
		for c, v := range row {
			if err := b.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return b.Build(), nil
}
