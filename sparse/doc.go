// Package sparse provides a column-oriented sparse matrix generic over real and
// complex element types.
//
// A Matrix stores one Vector per column. Each Vector holds (row, value)
// entries in insertion order and switches to binary-search lookups once it is
// sorted:
//
//	m := sparse.NewMatrix[float64](100, 50)
//	_ = m.Set(3, 7, 1.5)
//	m.SortFeatures()
//	v, _ := m.At(3, 7)
//
// Dense data flows in through FromDense (any DenseReader, including
// *mat.Dense and *mat.CDense) and out through DenseInto or ToDense.
// Mul dots every column with a dense vector; MulReal and MulComplex do the same
// across element types by promoting to float64 or complex128.
//
// Column indices are checked and reported as *errors.IndexError. Row indices
// are not: reading a row without an entry yields zero, and Validate reports
// rows that fall outside the matrix or appear twice in a column.
//
// Matrices carry no internal locking. Use distinct instances per goroutine or
// serialize access.
package sparse
