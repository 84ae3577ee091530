package viz_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/sparsego/sparse"
	"github.com/YuminosukeSato/sparsego/viz"
)

func diagonal(n int) *sparse.Matrix[float64] {
	m := sparse.NewMatrix[float64](n, n)
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, float64(i+1))
	}
	return m
}

func TestSpyAxes(t *testing.T) {
	m := sparse.NewMatrix[int](4, 6)
	require.NoError(t, m.Set(3, 5, 1))

	p, err := viz.Spy(m, "pattern", viz.WithColor(color.RGBA{R: 255, A: 255}), viz.WithMarkerRadius(vg.Points(2)))
	require.NoError(t, err)
	assert.Equal(t, "pattern", p.Title.Text)
	assert.Equal(t, 5.5, p.X.Max)
	assert.Equal(t, 3.5, p.Y.Max)
	assert.IsType(t, plot.InvertedScale{}, p.Y.Scale)
}

func TestSaveSpy(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"diag.png", "diag.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, viz.SaveSpy(diagonal(20), "diagonal", path, 4*vg.Inch, 4*vg.Inch))

		st, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, st.Size())
	}
}

func TestSpyEmptyMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, viz.SaveSpy(sparse.NewMatrix[complex128](3, 3), "empty", path, 2*vg.Inch, 2*vg.Inch))
}

func TestSaveSpyUnknownFormat(t *testing.T) {
	err := viz.SaveSpy(diagonal(2), "x", filepath.Join(t.TempDir(), "out.unknown"), vg.Inch, vg.Inch)
	assert.Error(t, err)
}
