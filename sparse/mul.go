package sparse

import (
	"github.com/YuminosukeSato/sparsego/pkg/errors"
)

// Mul multiplies m by the dense vector x column by column: each column is
// dotted with x, so
//
//	result[j] = Σ over stored (r, v) in column j of v * x[r]
//
// len(x) must equal the number of rows and the result has one element per
// column. Only stored entries are visited, so the cost is O(NNZ). Entries
// whose row lies outside x contribute nothing. For the row-wise product,
// multiply the transpose.
func (m *Matrix[T]) Mul(x []T) ([]T, error) {
	return mulPromote(m, x, identity[T], identity[T], "Matrix.Mul")
}

// MulReal multiplies a real matrix by a real vector of a possibly different
// element type, promoting both to float64.
func MulReal[T, U Real](m *Matrix[T], x []U) ([]float64, error) {
	return mulPromote(m, x, ToFloat64[T], ToFloat64[U], "MulReal")
}

// MulComplex multiplies m by x after promoting both element types to
// complex128. It covers complex entries against a real vector and real
// entries against a complex vector.
func MulComplex[T, U Scalar](m *Matrix[T], x []U) ([]complex128, error) {
	return mulPromote(m, x, ToComplex128[T], ToComplex128[U], "MulComplex")
}

func identity[T Scalar](v T) T { return v }

func mulPromote[T, U, R Scalar](m *Matrix[T], x []U, pt func(T) R, pu func(U) R, op string) ([]R, error) {
	if len(x) != m.rows {
		return nil, errors.NewDimensionError(op, m.rows, len(x), 0)
	}
	out := make([]R, len(m.cols))
	for j := range m.cols {
		var sum R
		for _, e := range m.cols[j].entries {
			if e.Row < 0 || e.Row >= len(x) {
				continue
			}
			sum += pt(e.Value) * pu(x[e.Row])
		}
		out[j] = sum
	}
	return out, nil
}
