package libsvm

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/YuminosukeSato/sparsego/pkg/errors"
	"github.com/YuminosukeSato/sparsego/pkg/log"
	"github.com/YuminosukeSato/sparsego/sparse"
)

// Compression identifies the stream compression applied to a LibSVM file.
type Compression uint8

const (
	// CompressionNone reads and writes plain text.
	CompressionNone Compression = iota
	// CompressionGzip wraps the stream in gzip (".gz").
	CompressionGzip
	// CompressionZstd wraps the stream in Zstandard (".zst").
	CompressionZstd
	// CompressionLZ4 wraps the stream in the LZ4 frame format (".lz4").
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// CompressionFromPath picks the compression from the file extension.
func CompressionFromPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// ReadFile opens path, decodes it and closes it again. Compressed files are
// detected by extension. The returned labels are empty when the file has none.
func ReadFile[T sparse.Scalar](path string, opts ...Option) (m *sparse.Matrix[T], labels []T, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "libsvm: open %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "libsvm: close %s", path)
		}
	}()

	comp := CompressionFromPath(path)
	r, closeReader, err := newReader(f, comp)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "libsvm: open %s stream for %s", comp, path)
	}
	defer closeReader()

	opts = append([]Option{WithSourceName(path)}, opts...)
	m, labels, err = NewDecoder[T](r, opts...).DecodeWithLabels()
	if err != nil {
		return nil, nil, err
	}
	rows, cols := m.Dims()
	logger().Info("read libsvm file",
		log.SourceKey, path,
		log.CompressionKey, comp.String(),
		log.RowsKey, rows,
		log.ColsKey, cols,
		log.NNZKey, m.NNZ(),
	)
	return m, labels, nil
}

// WriteFile creates (or truncates) path and encodes m into it. A nil labels
// slice writes an unlabeled file. Compression is chosen by extension.
func WriteFile[T sparse.Scalar](path string, m *sparse.Matrix[T], labels []T, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "libsvm: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "libsvm: close %s", path)
		}
	}()

	comp := CompressionFromPath(path)
	w, err := newWriter(f, comp)
	if err != nil {
		return errors.Wrapf(err, "libsvm: open %s stream for %s", comp, path)
	}

	opts = append([]Option{WithSourceName(path)}, opts...)
	enc := NewEncoder[T](w, opts...)
	if labels != nil {
		err = enc.EncodeWithLabels(m, labels)
	} else {
		err = enc.Encode(m)
	}
	if cerr := w.Close(); cerr != nil && err == nil {
		err = errors.Wrapf(cerr, "libsvm: finish %s stream for %s", comp, path)
	}
	if err != nil {
		return err
	}

	rows, cols := m.Dims()
	logger().Info("wrote libsvm file",
		log.SourceKey, path,
		log.CompressionKey, comp.String(),
		log.RowsKey, rows,
		log.ColsKey, cols,
		log.NNZKey, m.NNZ(),
	)
	return nil
}

func newReader(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func newWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}
