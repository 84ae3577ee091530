package libsvm

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/YuminosukeSato/sparsego/pkg/errors"
	"github.com/YuminosukeSato/sparsego/pkg/log"
	"github.com/YuminosukeSato/sparsego/sparse"
)

// Decoder reads a sparse matrix, one column per line, from a LibSVM stream.
// The Decoder does not close the underlying reader.
type Decoder[T sparse.Scalar] struct {
	r   io.Reader
	cfg config
}

// NewDecoder returns a Decoder reading from r. When r has a Name method (as
// *os.File does) its result is used as the source name unless
// WithSourceName overrides it.
func NewDecoder[T sparse.Scalar](r io.Reader, opts ...Option) *Decoder[T] {
	cfg := newConfig(opts)
	if cfg.source == "" {
		if n, ok := r.(interface{ Name() string }); ok {
			cfg.source = n.Name()
		}
	}
	return &Decoder[T]{r: r, cfg: cfg}
}

// Decode reads the whole stream and returns the matrix. Labels, if present,
// are parsed and discarded.
func (d *Decoder[T]) Decode() (*sparse.Matrix[T], error) {
	m, _, err := d.DecodeWithLabels()
	return m, err
}

// DecodeWithLabels reads the whole stream and returns the matrix together
// with its label vector. An unlabeled stream yields an empty, non-nil label
// slice.
func (d *Decoder[T]) DecodeWithLabels() (m *sparse.Matrix[T], labels []T, err error) {
	defer errors.Recover(&err, "libsvm.Decode")
	start := time.Now()

	sc := bufio.NewScanner(d.r)
	sc.Buffer(make([]byte, 0, min(64*1024, d.cfg.maxLineSize)), d.cfg.maxLineSize)

	var (
		columns []*sparse.Vector[T]
		entries [][]sparse.Entry[T]
		labeled bool
		maxRow  = -1
		lineNo  int
	)
	labels = []T{}

	for sc.Scan() {
		lineNo++
		line := bytes.TrimSuffix(sc.Bytes(), []byte{'\r'})
		label, hasLabel, es, rowMax, err := d.parseLine(line, lineNo)
		if err != nil {
			return nil, nil, err
		}
		if lineNo == 1 {
			labeled = hasLabel
		} else if hasLabel != labeled {
			reason := "unlabeled line in a labeled file"
			if hasLabel {
				reason = "labeled line in an unlabeled file"
			}
			return nil, nil, errors.NewFormatError(d.cfg.source, lineNo, string(line), reason, nil)
		}
		if hasLabel {
			labels = append(labels, label)
		}
		entries = append(entries, es)
		maxRow = max(maxRow, rowMax)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, errors.NewFormatError(d.cfg.source, lineNo+1, "", "read failed", err)
	}

	rows := maxRow + 1
	if d.cfg.numRows >= 0 {
		if d.cfg.numRows < rows {
			return nil, nil, errors.Wrapf(
				errors.NewDimensionError("libsvm.Decode", d.cfg.numRows, rows, 0),
				"row index %d exceeds the requested number of rows", maxRow+1)
		}
		rows = d.cfg.numRows
	}

	columns = make([]*sparse.Vector[T], len(entries))
	for j, es := range entries {
		columns[j] = sparse.NewVectorFromEntries(rows, es)
	}
	m, err = sparse.NewMatrixFromVectors(rows, columns)
	if err != nil {
		return nil, nil, err
	}

	logger().Debug("decoded",
		log.OperationKey, log.OperationDecode,
		log.SourceKey, d.cfg.source,
		log.ElementTypeKey, sparse.TypeName[T](),
		log.LinesKey, lineNo,
		log.LabeledKey, labeled,
		log.RowsKey, rows,
		log.ColsKey, len(columns),
		log.NNZKey, m.NNZ(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return m, labels, nil
}

// parseLine splits one line into its optional label and its entries. rowMax
// is the largest 0-based row seen on the line, or -1.
func (d *Decoder[T]) parseLine(raw []byte, lineNo int) (label T, hasLabel bool, es []sparse.Entry[T], rowMax int, err error) {
	rowMax = -1
	line := raw
	first := true
	for len(line) > 0 {
		var field []byte
		if i := bytes.IndexByte(line, d.cfg.delimiter); i >= 0 {
			field, line = line[:i], line[i+1:]
		} else {
			field, line = line, nil
		}
		if len(field) == 0 {
			continue
		}

		colon := bytes.IndexByte(field, ':')
		if colon < 0 {
			if !first {
				return label, false, nil, -1, d.formatError(lineNo, raw, field, "missing ':' in token", nil)
			}
			first = false
			v, err := d.parseField(raw, field, lineNo)
			if err != nil {
				return label, false, nil, -1, err
			}
			label, hasLabel = v, true
			continue
		}
		first = false

		row, err := strconv.Atoi(string(field[:colon]))
		if err != nil {
			return label, false, nil, -1, d.formatError(lineNo, raw, field, "non-numeric row index", err)
		}
		if row < 1 {
			return label, false, nil, -1, d.formatError(lineNo, raw, field, "row index must be >= 1", nil)
		}
		v, err := d.parseField(raw, field[colon+1:], lineNo)
		if err != nil {
			return label, false, nil, -1, err
		}
		es = append(es, sparse.Entry[T]{Row: row - 1, Value: v})
		rowMax = max(rowMax, row-1)
	}
	return label, hasLabel, es, rowMax, nil
}

func (d *Decoder[T]) parseField(raw, field []byte, lineNo int) (T, error) {
	v, converted, err := parseValue[T](string(field))
	if err != nil {
		return v, d.formatError(lineNo, raw, field, "non-numeric value", err)
	}
	if converted {
		errors.Warn(errors.NewDataConversionWarning("float", sparse.TypeName[T](),
			"integral floating-point literal "+strconv.Quote(string(field))+" on line "+strconv.Itoa(lineNo)))
	}
	if d.cfg.finite {
		if err := checkFinite("libsvm.Decode", v, lineNo); err != nil {
			return v, d.formatError(lineNo, raw, field, "non-finite value", err)
		}
	}
	return v, nil
}

func (d *Decoder[T]) formatError(lineNo int, raw, field []byte, reason string, cause error) error {
	return errors.NewFormatError(d.cfg.source, lineNo, string(raw), reason+" "+strconv.Quote(string(field)), cause)
}

func logger() log.Logger {
	return log.GetLoggerWithName("libsvm")
}
