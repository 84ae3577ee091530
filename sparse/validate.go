package sparse

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/YuminosukeSato/sparsego/pkg/errors"
)

// Pattern returns the set of stored row indices. Rows outside the uint32
// range cannot be represented and are left out.
func (v *Vector[T]) Pattern() *roaring.Bitmap {
	bm := roaring.New()
	for _, e := range v.entries {
		if e.Row >= 0 && uint64(e.Row) <= math.MaxUint32 {
			bm.Add(uint32(e.Row))
		}
	}
	return bm
}

// Validate checks the structural invariants that Set does not enforce: every
// row lies in [0, Len) and no row is stored twice.
func (v *Vector[T]) Validate() error {
	seen := roaring.New()
	for _, e := range v.entries {
		if e.Row < 0 || e.Row >= v.length {
			return errors.NewIndexError("Vector.Validate", e.Row, v.length, 0)
		}
		if uint64(e.Row) > math.MaxUint32 {
			return errors.NewValidationError("row", "row index exceeds uint32 range", e.Row)
		}
		if !seen.CheckedAdd(uint32(e.Row)) {
			return errors.NewValidationError("row", "duplicate row index", e.Row)
		}
	}
	return nil
}

// Validate checks that every column spans the matrix rows and satisfies
// Vector.Validate.
func (m *Matrix[T]) Validate() error {
	for j := range m.cols {
		if m.cols[j].length != m.rows {
			return errors.Wrapf(errors.NewDimensionError("Matrix.Validate", m.rows, m.cols[j].length, 0), "column %d", j)
		}
		if err := m.cols[j].Validate(); err != nil {
			return errors.Wrapf(err, "column %d", j)
		}
	}
	return nil
}

// RowPattern returns, for every row, the set of columns holding an entry.
// It is the column pattern of the transpose without materializing it.
func (m *Matrix[T]) RowPattern() []*roaring.Bitmap {
	out := make([]*roaring.Bitmap, m.rows)
	for i := range out {
		out[i] = roaring.New()
	}
	for j := range m.cols {
		for _, e := range m.cols[j].entries {
			if e.Row >= 0 && e.Row < m.rows {
				out[e.Row].Add(uint32(j))
			}
		}
	}
	return out
}
