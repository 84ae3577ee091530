package sparse

import (
	"github.com/YuminosukeSato/sparsego/core/parallel"
	"github.com/YuminosukeSato/sparsego/pkg/errors"
	"github.com/YuminosukeSato/sparsego/pkg/log"
)

// sortParallelThreshold is the column count above which SortFeatures fans
// out over CPU cores.
const sortParallelThreshold = 256

// Matrix is a column-oriented sparse matrix: one Vector per column, each
// indexing into the same number of rows.
//
// The zero value is an empty 0x0 matrix. Dimensions are fixed by NewMatrix,
// FromDense or the LibSVM decoder and never change through At or Set.
// A Matrix is not safe for concurrent mutation; distinct matrices can be
// used from different goroutines freely.
type Matrix[T Scalar] struct {
	rows int
	cols []Vector[T]
}

// NewMatrix returns a rows x cols matrix whose columns are all empty.
func NewMatrix[T Scalar](rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic("sparse: negative dimension")
	}
	m := &Matrix[T]{
		rows: rows,
		cols: make([]Vector[T], cols),
	}
	for j := range m.cols {
		m.cols[j] = Vector[T]{length: rows, sorted: true}
	}
	return m
}

// NewMatrixFromVectors builds a matrix that takes ownership of the given
// columns. Every vector must have length rows.
func NewMatrixFromVectors[T Scalar](rows int, vectors []*Vector[T]) (*Matrix[T], error) {
	if rows < 0 {
		return nil, errors.NewValueError("NewMatrixFromVectors", "negative number of rows")
	}
	m := &Matrix[T]{
		rows: rows,
		cols: make([]Vector[T], len(vectors)),
	}
	for j, v := range vectors {
		if v.length != rows {
			return nil, errors.Wrapf(errors.NewDimensionError("NewMatrixFromVectors", rows, v.length, 0), "column %d", j)
		}
		m.cols[j] = *v
	}
	return m, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix[T]) Dims() (r, c int) {
	return m.rows, len(m.cols)
}

// NNZ returns the number of stored entries across all columns.
func (m *Matrix[T]) NNZ() int {
	n := 0
	for j := range m.cols {
		n += len(m.cols[j].entries)
	}
	return n
}

// Density returns NNZ / (rows*cols), or 0 for an empty matrix.
func (m *Matrix[T]) Density() float64 {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return 0
	}
	return float64(m.NNZ()) / (float64(r) * float64(c))
}

func (m *Matrix[T]) checkColumn(op string, col int) error {
	if col < 0 || col >= len(m.cols) {
		return errors.NewIndexError(op, col, len(m.cols), 1)
	}
	return nil
}

// Column returns column j. The returned vector is owned by m; mutating it
// mutates the matrix.
func (m *Matrix[T]) Column(j int) (*Vector[T], error) {
	if err := m.checkColumn("Matrix.Column", j); err != nil {
		return nil, err
	}
	return &m.cols[j], nil
}

// SetColumn replaces column j with a copy of v. The length of v must match
// the number of rows.
func (m *Matrix[T]) SetColumn(j int, v *Vector[T]) error {
	if err := m.checkColumn("Matrix.SetColumn", j); err != nil {
		return err
	}
	if v.length != m.rows {
		return errors.NewDimensionError("Matrix.SetColumn", m.rows, v.length, 0)
	}
	m.cols[j] = *v.Clone()
	return nil
}

// At returns the element at (row, col). Only col is checked: a row without an
// entry, in range or not, reads as zero.
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := m.checkColumn("Matrix.At", col); err != nil {
		var zero T
		return zero, err
	}
	return m.cols[col].At(row), nil
}

// Set assigns the element at (row, col). The row is not checked.
func (m *Matrix[T]) Set(row, col int, value T) error {
	if err := m.checkColumn("Matrix.Set", col); err != nil {
		return err
	}
	c := &m.cols[col]
	if c.length == 0 {
		c.length = m.rows
	}
	c.Set(row, value)
	return nil
}

// SortFeatures sorts every column by row index. It is idempotent and must be
// called before anything that relies on ascending row order, such as
// canonical LibSVM output.
func (m *Matrix[T]) SortFeatures() {
	parallel.ParallelizeWithThreshold(len(m.cols), sortParallelThreshold, func(start, end int) {
		for j := start; j < end; j++ {
			m.cols[j].Sort()
		}
	})
}

// IsSorted reports whether every column is known to be sorted.
func (m *Matrix[T]) IsSorted() bool {
	for j := range m.cols {
		if !m.cols[j].sorted {
			return false
		}
	}
	return true
}

// Transpose returns a new cols x rows matrix with result(j, i) = m(i, j).
// Only stored entries are copied and m is left untouched. Columns of the
// result come out sorted. An entry whose row lies outside [0, rows) makes the
// transpose fail with an IndexError.
func (m *Matrix[T]) Transpose() (*Matrix[T], error) {
	counts := make([]int, m.rows)
	for j := range m.cols {
		for _, e := range m.cols[j].entries {
			if e.Row < 0 || e.Row >= m.rows {
				return nil, errors.Wrapf(errors.NewIndexError("Matrix.Transpose", e.Row, m.rows, 0), "column %d", j)
			}
			counts[e.Row]++
		}
	}

	t := &Matrix[T]{
		rows: len(m.cols),
		cols: make([]Vector[T], m.rows),
	}
	for i := range t.cols {
		t.cols[i] = Vector[T]{
			entries: make([]Entry[T], 0, counts[i]),
			length:  t.rows,
			sorted:  true,
		}
	}
	for j := range m.cols {
		for _, e := range m.cols[j].entries {
			tc := &t.cols[e.Row]
			tc.entries = append(tc.entries, Entry[T]{Row: j, Value: e.Value})
		}
	}

	logger().Debug("transposed",
		log.OperationKey, log.OperationTranspose,
		log.RowsKey, t.rows,
		log.ColsKey, len(t.cols),
		log.NNZKey, t.NNZ(),
	)
	return t, nil
}

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := &Matrix[T]{
		rows: m.rows,
		cols: make([]Vector[T], len(m.cols)),
	}
	for j := range m.cols {
		c.cols[j] = *m.cols[j].Clone()
	}
	return c
}

// Equal reports whether a and b have the same dimensions and elements.
// Storage order and explicit zeros are ignored.
func Equal[T Scalar](a, b *Matrix[T]) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for j := range a.cols {
		if !a.cols[j].Equal(&b.cols[j]) {
			return false
		}
	}
	return true
}

// Each calls fn for every stored entry, column by column in stored order.
func (m *Matrix[T]) Each(fn func(row, col int, v T)) {
	for j := range m.cols {
		for _, e := range m.cols[j].entries {
			fn(e.Row, j, e.Value)
		}
	}
}

func logger() log.Logger {
	return log.GetLoggerWithName("sparse")
}
