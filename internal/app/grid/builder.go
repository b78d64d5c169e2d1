package grid

import (
	"gonum.org/v1/gonum/mat"

	"collab-filter/internal/app/errors"
)

var errBuilt = errors.New("grid builder already built")

// MaxRating bounds the magnitude of a stored rating. Cells are float64, which
// holds every integer in [-MaxRating, MaxRating] exactly.
const MaxRating = 1 << 53

// Builder collects ratings for a grid of fixed shape. Every cell starts as
// Unrated. Build hands the data to an immutable Grid; the builder can not be
// used afterwards.
type Builder struct {
	data *mat.Dense
	rows int
	cols int
}

// NewBuilder allocates a rows x cols grid filled with Unrated.
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(errors.ErrEmptyGrid, "got %dx%d", rows, cols)
	}
	backing := make([]float64, rows*cols)
	for i := range backing {
		backing[i] = Unrated
	}
	return &Builder{
		data: mat.NewDense(rows, cols, backing),
		rows: rows,
		cols: cols,
	}, nil
}

// Rows returns the row count the builder was created with.
func (b *Builder) Rows() int { return b.rows }

// Cols returns the column count the builder was created with.
func (b *Builder) Cols() int { return b.cols }

// Set records rating at (row, col), replacing any earlier value. Ratings
// beyond MaxRating in magnitude are out of range.
func (b *Builder) Set(row, col, rating int) error {
	if b.data == nil {
		return errBuilt
	}
	if row < 0 || row >= b.rows {
		return errors.OutOfRange("row", row, b.rows)
	}
	if col < 0 || col >= b.cols {
		return errors.OutOfRange("column", col, b.cols)
	}
	if r := int64(rating); r > MaxRating || r < -MaxRating {
		return errors.Wrapf(errors.ErrOutOfRange, "rating %d outside [-%d, %d]", rating, int64(MaxRating), int64(MaxRating))
	}
	b.data.Set(row, col, float64(rating))
	return nil
}

// Build freezes the collected ratings into a Grid. A second call returns nil.
func (b *Builder) Build() *Grid {
	if b.data == nil {
		return nil
	}
	g := &Grid{data: b.data, rows: b.rows, cols: b.cols}
	b.data = nil
	return g
}
