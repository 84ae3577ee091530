package libsvm

import (
	"bufio"
	"io"
	"strconv"
	"time"

	"github.com/YuminosukeSato/sparsego/pkg/errors"
	"github.com/YuminosukeSato/sparsego/pkg/log"
	"github.com/YuminosukeSato/sparsego/sparse"
)

// Encoder writes a sparse matrix to a LibSVM stream, one line per column.
// Entries are written in stored order; call SortFeatures first for canonical
// output. Zero values are skipped. The Encoder does not close the underlying
// writer.
type Encoder[T sparse.Scalar] struct {
	w   io.Writer
	cfg config
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder[T sparse.Scalar](w io.Writer, opts ...Option) *Encoder[T] {
	cfg := newConfig(opts)
	if cfg.source == "" {
		if n, ok := w.(interface{ Name() string }); ok {
			cfg.source = n.Name()
		}
	}
	return &Encoder[T]{w: w, cfg: cfg}
}

// Encode writes m without labels.
func (e *Encoder[T]) Encode(m *sparse.Matrix[T]) error {
	return e.encode(m, nil, false)
}

// EncodeWithLabels writes m with labels[j] as the first field of line j.
// labels must have exactly one value per column.
func (e *Encoder[T]) EncodeWithLabels(m *sparse.Matrix[T], labels []T) error {
	return e.encode(m, labels, true)
}

func (e *Encoder[T]) encode(m *sparse.Matrix[T], labels []T, labeled bool) (err error) {
	defer errors.Recover(&err, "libsvm.Encode")
	start := time.Now()

	if e.cfg.precision < -1 {
		return errors.NewValueError("libsvm.Encode", "precision must be >= -1, got "+strconv.Itoa(e.cfg.precision))
	}
	rows, cols := m.Dims()
	if labeled && len(labels) != cols {
		return errors.Wrap(errors.NewDimensionError("libsvm.Encode", cols, len(labels), 1), "label count must equal the number of columns")
	}

	bw := bufio.NewWriter(e.w)
	buf := make([]byte, 0, 256)
	warned := false
	for j := 0; j < cols; j++ {
		col, err := m.Column(j)
		if err != nil {
			return err
		}
		if !warned && !col.IsSorted() {
			errors.Warn(errors.NewUnsortedColumnWarning("libsvm.Encode", j))
			warned = true
		}

		buf = buf[:0]
		first := true
		if labeled {
			buf = appendValue(buf, labels[j], e.cfg.precision)
			first = false
		}
		for row, v := range col.All() {
			if sparse.IsZero(v) {
				continue
			}
			if row < 0 {
				return errors.Wrapf(errors.NewIndexError("libsvm.Encode", row, rows, 0), "column %d", j)
			}
			if !first {
				buf = append(buf, e.cfg.delimiter)
			}
			first = false
			buf = strconv.AppendInt(buf, int64(row)+1, 10)
			buf = append(buf, ':')
			buf = appendValue(buf, v, e.cfg.precision)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrapf(err, "libsvm: write column %d", j)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "libsvm: flush")
	}

	logger().Debug("encoded",
		log.OperationKey, log.OperationEncode,
		log.SourceKey, e.cfg.source,
		log.ElementTypeKey, sparse.TypeName[T](),
		log.LabeledKey, labeled,
		log.RowsKey, rows,
		log.ColsKey, cols,
		log.NNZKey, m.NNZ(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}
