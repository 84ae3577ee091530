// Package sparsego provides generic sparse matrices for Go together with a
// LibSVM text codec.
//
// sparsego stores matrices column by column, works with any real or complex
// Go numeric type, and reads and writes the LibSVM format used by most
// sparse machine learning datasets.
//
// # Features
//
// - Generic element types: int*, uint*, float32/64, complex64/128
// - Column-oriented storage with sorted binary-search lookups
// - Transpose, dense conversion, matrix-vector multiplication with type promotion
// - gonum interop: mat.Dense, mat.CDense, mat.Vector
// - LibSVM encode/decode with labels, transparent gzip/zstd/lz4 files
// - Structured errors with stack traces and slog/zerolog logging
//
// # Installation
//
//	go get github.com/YuminosukeSato/sparsego
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/sparsego/libsvm"
//	)
//
//	func main() {
//	    m, labels, err := libsvm.ReadFile[float64]("train.svm.gz")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    rows, _ := m.Dims()
//	    x := make([]float64, rows)
//	    for i := range x {
//	        x[i] = 1
//	    }
//	    sums, err := m.Mul(x)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(len(labels), sums[:3])
//	}
//
// # Packages
//
//   - sparse: Entry, Vector and Matrix types, dense and gonum conversion, multiplication
//   - libsvm: LibSVM encoder/decoder and compressed file helpers
//   - viz: sparsity pattern ("spy") plots
//   - pkg/errors: structured error and warning types
//   - pkg/log: logger interface, slog and zerolog providers
//   - core/parallel: parallel processing utilities
//
// # Concurrency
//
// Matrices carry no internal locking. Distinct matrices may be used from
// different goroutines; a single matrix must not be mutated concurrently.
// SortFeatures parallelizes internally for wide matrices and returns only
// when every column is sorted.
package sparsego
