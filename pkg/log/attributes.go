// Package log defines standard attribute keys for sparse matrix operations.
//
// Using these keys consistently lets logs from conversion, transposition and
// LibSVM I/O be filtered and aggregated the same way. Keys follow a dotted,
// hierarchical naming convention ("matrix.rows", "libsvm.line").

package log

// Operation context.
const (
	// OperationKey names the operation being performed.
	// Standard values are the Operation* constants below.
	OperationKey = "sparse.operation"

	// ComponentKey identifies the package emitting the record.
	// Examples: "sparse", "libsvm", "viz"
	ComponentKey = "sparse.component"

	// ElementTypeKey records the Go element type of a matrix, e.g. "float64".
	ElementTypeKey = "sparse.element_type"
)

// Matrix shape.
const (
	// RowsKey is the nominal number of rows.
	RowsKey = "matrix.rows"

	// ColsKey is the number of columns (stored vectors).
	ColsKey = "matrix.cols"

	// NNZKey is the number of stored entries.
	NNZKey = "matrix.nnz"

	// DensityKey is nnz / (rows*cols).
	DensityKey = "matrix.density"
)

// LibSVM I/O context.
const (
	// SourceKey is the file or stream name being read or written.
	SourceKey = "libsvm.source"

	// LinesKey counts processed lines.
	LinesKey = "libsvm.lines"

	// LabeledKey reports whether a label column was present.
	LabeledKey = "libsvm.labeled"

	// CompressionKey is the compression codec chosen from the file extension.
	CompressionKey = "libsvm.compression"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// ErrorTypeKey categorizes the error, e.g. "FormatError".
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"
)

// Standard values for OperationKey.
const (
	OperationFromDense = "from_dense"
	OperationToDense   = "to_dense"
	OperationTranspose = "transpose"
	OperationSort      = "sort_features"
	OperationMultiply  = "multiply"
	OperationEncode    = "encode"
	OperationDecode    = "decode"
	OperationPlot      = "plot"
)
