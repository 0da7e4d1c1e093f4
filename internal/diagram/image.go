package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/paddlecraft/gohull/internal/geometry"
	"github.com/paddlecraft/gohull/internal/stability"
	"github.com/paddlecraft/gohull/internal/waterline"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportSectionDiagram exports one station cross-section to an image
// file: hull outline, waterline and shaded submerged area.
func ExportSectionDiagram(p *geometry.Profile, w waterline.Waterline, filename string) error {
	pts := p.Points()
	if len(pts) < 2 {
		return fmt.Errorf("diagram: profile at %.3f has too few points", p.Station())
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Section at x = %.3f m", p.Station())
	pl.X.Label.Text = "y (m)"
	pl.Y.Label.Text = "z (m)"

	// Shade the submerged part of the closed section.
	sub := w.ClipBelow(pts)
	if len(sub) >= 3 {
		wet := make(plotter.XYs, len(sub))
		for i, q := range sub {
			wet[i] = plotter.XY{X: q.Y, Y: q.Z}
		}
		poly, err := plotter.NewPolygon(wet)
		if err != nil {
			return err
		}
		poly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
		poly.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		pl.Add(poly)
	}

	// Waterline across the full beam plus a margin.
	yMin, yMax := p.YRange()
	margin := 0.1 * (yMax - yMin)
	wl, err := plotter.NewLine(plotter.XYs{
		{X: yMin - margin, Y: w.ZAt(p.Station(), yMin-margin)},
		{X: yMax + margin, Y: w.ZAt(p.Station(), yMax+margin)},
	})
	if err != nil {
		return err
	}
	wl.LineStyle.Width = vg.Points(1.5)
	wl.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	wl.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	pl.Add(wl)

	// Outline last so the hull draws over the fill.
	outline := make(plotter.XYs, len(pts))
	for i, q := range pts {
		outline[i] = plotter.XY{X: q.Y, Y: q.Z}
	}
	hullLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	hullLine.LineStyle.Width = vg.Points(2)
	hullLine.LineStyle.Color = color.Black
	pl.Add(hullLine)

	return savePlot(pl, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportGZCurve exports a righting arm curve with a zero reference
// line. When metrics are given, the peak and the vanishing angle are
// marked.
func ExportGZCurve(c *stability.GZCurve, m *stability.Metrics, filename string) error {
	if c == nil || len(c.Angles) == 0 {
		return fmt.Errorf("diagram: empty righting arm curve")
	}

	pl := plot.New()
	pl.Title.Text = "Righting Arm Curve"
	pl.X.Label.Text = "Heel (deg)"
	pl.Y.Label.Text = "GZ (m)"

	zero, err := plotter.NewLine(plotter.XYs{
		{X: c.Angles[0], Y: 0},
		{X: c.Angles[len(c.Angles)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	pl.Add(zero)

	xy := make(plotter.XYs, len(c.Angles))
	for i := range c.Angles {
		xy[i] = plotter.XY{X: c.Angles[i], Y: c.Values[i]}
	}
	line, err := plotter.NewLine(xy)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	pl.Add(line)

	if m != nil {
		marks := plotter.XYs{{X: m.MaxGZAngle, Y: m.MaxGZ}}
		texts := []string{fmt.Sprintf("max %.3f m", m.MaxGZ)}
		if m.HasVanishing {
			marks = append(marks, plotter.XY{X: m.VanishingAngle, Y: 0})
			texts = append(texts, fmt.Sprintf("vanishing %.1f deg", m.VanishingAngle))
		}

		pts, err := plotter.NewScatter(marks)
		if err != nil {
			return err
		}
		pts.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		pts.GlyphStyle.Radius = vg.Points(4)
		pts.GlyphStyle.Shape = draw.CircleGlyph{}
		pl.Add(pts)

		lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: marks, Labels: texts})
		if err != nil {
			return err
		}
		pl.Add(lbl)
	}

	return savePlot(pl, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportAreaCurve exports the sectional area curve, filled down to the
// zero baseline.
func ExportAreaCurve(secs []waterline.CrossSectionProperties, filename string) error {
	if len(secs) < 2 {
		return fmt.Errorf("diagram: need at least two sections")
	}

	pl := plot.New()
	pl.Title.Text = "Sectional Area Curve"
	pl.X.Label.Text = "Station (m)"
	pl.Y.Label.Text = "Area (m^2)"

	xy := make(plotter.XYs, len(secs))
	for i, s := range secs {
		xy[i] = plotter.XY{X: s.Station, Y: s.Area}
	}

	fill := make(plotter.XYs, 0, len(secs)+2)
	fill = append(fill, plotter.XY{X: secs[0].Station, Y: 0})
	fill = append(fill, xy...)
	fill = append(fill, plotter.XY{X: secs[len(secs)-1].Station, Y: 0})
	poly, err := plotter.NewPolygon(fill)
	if err != nil {
		return err
	}
	poly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	poly.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	pl.Add(poly)

	line, err := plotter.NewLine(xy)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	pl.Add(line)

	return savePlot(pl, 8*vg.Inch, 5*vg.Inch, filename)
}

// savePlot writes the plot in the format implied by the file
// extension. Unknown extensions fall back to PNG.
func savePlot(pl *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return pl.Save(width, height, filename)
	default:
		return pl.Save(width, height, filename+".png")
	}
}
