// Package libsvm reads and writes sparse matrices in the LibSVM text format.
//
// Each line holds one column of the matrix: an optional label followed by
// "row:value" tokens with 1-based row indices.
//
//	1 1:0.5 4:2
//	0 2:-1.25
//
// Encoder and Decoder work on caller-owned streams and never close them.
// ReadFile and WriteFile own the file themselves and compress by extension
// (.gz, .zst, .lz4).
//
//	m, labels, err := libsvm.ReadFile[float64]("train.svm.gz")
//	...
//	m.SortFeatures()
//	err = libsvm.WriteFile("out.svm.zst", m, labels)
//
// Malformed input fails with *errors.FormatError naming the source, line and
// offending token; nothing is skipped.
package libsvm
