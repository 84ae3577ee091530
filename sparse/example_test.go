package sparse_test

import (
	"fmt"

	"github.com/YuminosukeSato/sparsego/sparse"
)

func ExampleMatrix_Mul() {
	m := sparse.NewMatrix[float64](3, 2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(2, 0, 2)
	_ = m.Set(1, 1, 3)

	out, err := m.Mul([]float64{1, 1, 1})
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: [3 3]
}

func ExampleMulComplex() {
	m := sparse.NewMatrix[complex128](2, 1)
	_ = m.Set(1, 0, 0.5+0.75i)

	out, _ := sparse.MulComplex(m, []int32{2, 2})
	fmt.Println(out)
	// Output: [(1+1.5i)]
}
