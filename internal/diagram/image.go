package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gobeam/internal/fea"
)

// ExportAll writes shear.png, moment.png and deflection.png for the
// analysis result into dir, creating it if needed.
func ExportAll(res *fea.Result, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	exports := []struct {
		file, title, yLabel string
		value               func(fea.Sample) float64
	}{
		{"shear.png", "Shear Force Diagram", "Shear (kN)",
			func(s fea.Sample) float64 { return s.Shear }},
		{"moment.png", "Bending Moment Diagram", "Moment (kN-m)",
			func(s fea.Sample) float64 { return s.Moment }},
		{"deflection.png", "Deflection Curve", "Deflection (mm)",
			func(s fea.Sample) float64 { return s.Deflection }},
	}

	for _, e := range exports {
		path := filepath.Join(dir, e.file)
		if err := exportSeries(res.Samples, e.value, e.title, e.yLabel, path); err != nil {
			return fmt.Errorf("exporting %s: %w", e.file, err)
		}
	}
	return nil
}

// exportSeries plots one response quantity along the beam axis and
// saves it as a PNG.
func exportSeries(samples []fea.Sample, value func(fea.Sample) float64, title, yLabel, filename string) error {
	if len(samples) == 0 {
		return fmt.Errorf("no samples to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position (mm)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i] = plotter.XY{X: s.X, Y: value(s)}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	// Zero axis for reference.
	zero := plotter.XYs{{X: samples[0].X, Y: 0}, {X: samples[len(samples)-1].X, Y: 0}}
	zeroLine, err := plotter.NewLine(zero)
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Black
	p.Add(zeroLine)

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
