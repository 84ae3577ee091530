package sparse

import (
	"github.com/YuminosukeSato/sparsego/pkg/errors"
	"github.com/YuminosukeSato/sparsego/pkg/log"
)

// DenseReader is a dense matrix that can be read element by element.
// *mat.Dense satisfies DenseReader[float64] and *mat.CDense satisfies
// DenseReader[complex128].
type DenseReader[T Scalar] interface {
	Dims() (r, c int)
	At(i, j int) T
}

// DenseWriter is a dense matrix that can be written element by element.
// *mat.Dense and *mat.CDense satisfy it for float64 and complex128.
type DenseWriter[T Scalar] interface {
	Dims() (r, c int)
	Set(i, j int, v T)
}

// Dense is a row-major dense matrix for element types gonum has no container
// for (integers, float32, complex64).
type Dense[T Scalar] struct {
	rows, cols int
	data       []T
}

// NewDense returns a rows x cols dense matrix backed by data in row-major
// order. A nil data allocates a zeroed backing slice; otherwise len(data)
// must be rows*cols.
func NewDense[T Scalar](rows, cols int, data []T) *Dense[T] {
	if rows < 0 || cols < 0 {
		panic("sparse: negative dimension")
	}
	if data == nil {
		data = make([]T, rows*cols)
	}
	if len(data) != rows*cols {
		panic("sparse: dense data length does not match dimensions")
	}
	return &Dense[T]{rows: rows, cols: cols, data: data}
}

// Dims returns the number of rows and columns.
func (d *Dense[T]) Dims() (r, c int) { return d.rows, d.cols }

// At returns the element at (i, j). It panics when out of range.
func (d *Dense[T]) At(i, j int) T {
	d.check(i, j)
	return d.data[i*d.cols+j]
}

// Set sets the element at (i, j). It panics when out of range.
func (d *Dense[T]) Set(i, j int, v T) {
	d.check(i, j)
	d.data[i*d.cols+j] = v
}

// RawData returns the row-major backing slice.
func (d *Dense[T]) RawData() []T { return d.data }

func (d *Dense[T]) check(i, j int) {
	if i < 0 || i >= d.rows {
		panic("sparse: dense row index out of range")
	}
	if j < 0 || j >= d.cols {
		panic("sparse: dense column index out of range")
	}
}

// FromDense reinitializes m with the dimensions of d and one entry for every
// non-zero cell. Columns are filled top to bottom and therefore end up sorted.
func (m *Matrix[T]) FromDense(d DenseReader[T]) {
	r, c := d.Dims()
	m.rows = r
	m.cols = make([]Vector[T], c)
	for j := 0; j < c; j++ {
		col := Vector[T]{length: r, sorted: true}
		for i := 0; i < r; i++ {
			if v := d.At(i, j); !IsZero(v) {
				col.entries = append(col.entries, Entry[T]{Row: i, Value: v})
			}
		}
		m.cols[j] = col
	}

	logger().Debug("converted from dense",
		log.OperationKey, log.OperationFromDense,
		log.RowsKey, r,
		log.ColsKey, c,
		log.NNZKey, m.NNZ(),
	)
}

// NewFromDense returns a sparse copy of d.
func NewFromDense[T Scalar](d DenseReader[T]) *Matrix[T] {
	m := &Matrix[T]{}
	m.FromDense(d)
	return m
}

// DenseInto writes m into dst, which must have the same dimensions. Every
// cell of dst is overwritten.
func (m *Matrix[T]) DenseInto(dst DenseWriter[T]) error {
	r, c := dst.Dims()
	if r != m.rows {
		return errors.NewDimensionError("Matrix.DenseInto", m.rows, r, 0)
	}
	if c != len(m.cols) {
		return errors.NewDimensionError("Matrix.DenseInto", len(m.cols), c, 1)
	}

	var zero T
	for j := range m.cols {
		for i := 0; i < r; i++ {
			dst.Set(i, j, zero)
		}
		// Walk backwards so that the first of duplicated rows wins, as in At.
		entries := m.cols[j].entries
		for k := len(entries) - 1; k >= 0; k-- {
			e := entries[k]
			if e.Row < 0 || e.Row >= r {
				return errors.Wrapf(errors.NewIndexError("Matrix.DenseInto", e.Row, r, 0), "column %d", j)
			}
			dst.Set(e.Row, j, e.Value)
		}
	}
	return nil
}

// ToDense returns m as a generic dense matrix.
func (m *Matrix[T]) ToDense() (*Dense[T], error) {
	d := NewDense[T](m.rows, len(m.cols), nil)
	if err := m.DenseInto(d); err != nil {
		return nil, err
	}

	logger().Debug("converted to dense",
		log.OperationKey, log.OperationToDense,
		log.RowsKey, m.rows,
		log.ColsKey, len(m.cols),
	)
	return d, nil
}
