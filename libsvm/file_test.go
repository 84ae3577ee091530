package libsvm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/sparsego/libsvm"
	"github.com/YuminosukeSato/sparsego/pkg/errors"
	"github.com/YuminosukeSato/sparsego/sparse"
)

func TestCompressionFromPath(t *testing.T) {
	tests := []struct {
		path string
		want libsvm.Compression
	}{
		{"a.svm", libsvm.CompressionNone},
		{"a.txt", libsvm.CompressionNone},
		{"dir.gz/a", libsvm.CompressionNone},
		{"a.svm.gz", libsvm.CompressionGzip},
		{"A.SVM.GZ", libsvm.CompressionGzip},
		{"a.svm.zst", libsvm.CompressionZstd},
		{"a.zstd", libsvm.CompressionZstd},
		{"a.svm.lz4", libsvm.CompressionLZ4},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, libsvm.CompressionFromPath(tt.path))
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	m, labels := labeledFixture()
	rows, _ := m.Dims()
	dir := t.TempDir()

	for _, name := range []string{"data.svm", "data.svm.gz", "data.svm.zst", "data.svm.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, libsvm.WriteFile(path, m, labels))

			got, gotLabels, err := libsvm.ReadFile[float64](path, libsvm.WithNumRows(rows))
			require.NoError(t, err)
			assertMatrixInDelta(t, m, got, 1e-14)
			assert.Equal(t, labels, gotLabels)
		})
	}
}

func TestWriteFileCompresses(t *testing.T) {
	dir := t.TempDir()
	m := sparse.NewMatrix[int](100, 200)
	for j := 0; j < 200; j++ {
		require.NoError(t, m.Set(j%100, j, j+1))
	}

	plain := filepath.Join(dir, "m.svm")
	gz := filepath.Join(dir, "m.svm.gz")
	require.NoError(t, libsvm.WriteFile(plain, m, nil))
	require.NoError(t, libsvm.WriteFile(gz, m, nil))

	raw, err := os.ReadFile(gz)
	require.NoError(t, err)
	require.Greater(t, len(raw), 2)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2], "gzip magic")

	pst, err := os.Stat(plain)
	require.NoError(t, err)
	assert.Less(t, int64(len(raw)), pst.Size())

	got, labels, err := libsvm.ReadFile[int](gz)
	require.NoError(t, err)
	assert.Empty(t, labels)
	assert.True(t, sparse.Equal(m, got))
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := libsvm.ReadFile[float64](filepath.Join(dir, "missing.svm"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.svm")
	require.NoError(t, os.WriteFile(bad, []byte("1:1\n2:x\n"), 0o600))
	_, _, err = libsvm.ReadFile[float64](bad)
	var fe *errors.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, bad, fe.File)
	assert.Equal(t, 2, fe.Line)
	assert.Equal(t, "2:x", fe.Content)

	notGzip := filepath.Join(dir, "plain.svm.gz")
	require.NoError(t, os.WriteFile(notGzip, []byte("1:1\n"), 0o600))
	_, _, err = libsvm.ReadFile[float64](notGzip)
	assert.Error(t, err)
}

func TestDecoderUsesFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "named.svm")
	require.NoError(t, os.WriteFile(path, []byte("1:q\n"), 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = libsvm.NewDecoder[float64](f).Decode()
	var fe *errors.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, path, fe.File)
}

func TestWriteFileLabelMismatchLeavesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.svm.zst")
	m := sparse.NewMatrix[float64](2, 2)
	err := libsvm.WriteFile(path, m, []float64{1})
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}
