package sparse

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/sparsego/pkg/errors"
)

// FromMatrix returns a sparse copy of any gonum matrix.
func FromMatrix(a mat.Matrix) *Matrix[float64] {
	return NewFromDense[float64](a)
}

// ToMatDense returns m as a *mat.Dense. An empty matrix yields an empty
// (zero value) mat.Dense since gonum does not allocate zero-sized matrices.
func ToMatDense(m *Matrix[float64]) (*mat.Dense, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}, nil
	}
	d := mat.NewDense(r, c, nil)
	if err := m.DenseInto(d); err != nil {
		return nil, err
	}
	return d, nil
}

// ToCDense returns m as a *mat.CDense.
func ToCDense(m *Matrix[complex128]) (*mat.CDense, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.CDense{}, nil
	}
	d := mat.NewCDense(r, c, nil)
	if err := m.DenseInto(d); err != nil {
		return nil, err
	}
	return d, nil
}

// MulMatVec is Mul for gonum vectors: result[j] is the dot product of
// column j with x.
func MulMatVec(m *Matrix[float64], x mat.Vector) (*mat.VecDense, error) {
	if x.Len() != m.rows {
		return nil, errors.NewDimensionError("MulMatVec", m.rows, x.Len(), 0)
	}
	if len(m.cols) == 0 {
		return &mat.VecDense{}, nil
	}
	out := mat.NewVecDense(len(m.cols), nil)
	for j := range m.cols {
		var sum float64
		for _, e := range m.cols[j].entries {
			if e.Row >= 0 && e.Row < x.Len() {
				sum += e.Value * x.AtVec(e.Row)
			}
		}
		out.SetVec(j, sum)
	}
	return out, nil
}
