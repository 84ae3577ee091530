// Package viz renders sparsity patterns of sparse matrices with gonum/plot.
package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/sparsego/pkg/errors"
	"github.com/YuminosukeSato/sparsego/pkg/log"
	"github.com/YuminosukeSato/sparsego/sparse"
)

// Option configures a spy plot.
type Option func(*style)

type style struct {
	radius vg.Length
	color  color.Color
}

// WithMarkerRadius sets the radius of the square drawn for each entry.
func WithMarkerRadius(r vg.Length) Option {
	return func(s *style) { s.radius = r }
}

// WithColor sets the marker color.
func WithColor(c color.Color) Option {
	return func(s *style) { s.color = c }
}

// Spy returns a plot with one marker per nonzero entry of m. Columns run
// along X and rows along Y, with row 0 at the top.
func Spy[T sparse.Scalar](m *sparse.Matrix[T], title string, opts ...Option) (*plot.Plot, error) {
	st := style{radius: vg.Points(1), color: color.Black}
	for _, opt := range opts {
		opt(&st)
	}

	rows, cols := m.Dims()
	pts := make(plotter.XYs, 0, m.NNZ())
	m.Each(func(row, col int, v T) {
		if sparse.IsZero(v) || row < 0 || row >= rows {
			return
		}
		pts = append(pts, plotter.XY{X: float64(col), Y: float64(row)})
	})

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.X.Min, p.X.Max = -0.5, float64(cols)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(rows)-0.5

	if len(pts) > 0 {
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, errors.Wrap(err, "viz: scatter")
		}
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Radius = st.radius
		s.GlyphStyle.Color = st.color
		p.Add(s)
	}

	log.GetLoggerWithName("viz").Debug("spy plot",
		log.OperationKey, log.OperationPlot,
		log.RowsKey, rows,
		log.ColsKey, cols,
		log.NNZKey, len(pts),
		log.DensityKey, m.Density(),
	)
	return p, nil
}

// SaveSpy renders Spy(m, title) to path. The image format follows the file
// extension (png, svg, pdf, ...).
func SaveSpy[T sparse.Scalar](m *sparse.Matrix[T], title, path string, width, height vg.Length, opts ...Option) error {
	p, err := Spy(m, title, opts...)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return errors.Wrapf(err, "viz: save %s", path)
	}
	return nil
}
