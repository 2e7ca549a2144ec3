package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Formats accepted by Export
var Formats = []string{"png", "svg", "pdf"}

var (
	curveColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	areaColor   = color.RGBA{R: 100, G: 149, B: 237, A: 64}
	zeroColor   = color.Gray{Y: 64}
	markerColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// newPlot builds the chart for a diagram: the curve, the shaded area
// between the curve and zero, a zero reference line, a grid and, if set,
// the marker
func newPlot(d Diagram) (*plot.Plot, error) {
	pts := d.Scaled()
	if len(pts) < 2 {
		return nil, fmt.Errorf("diagram %q has %d samples, need at least 2", d.Title, len(pts))
	}

	p := plot.New()
	p.Title.Text = d.Title
	p.X.Label.Text = d.X.Title()
	p.Y.Label.Text = d.Y.Title()

	// Deflection is positive downward, so flip the axis rather than the data
	if d.Inverted {
		p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	}

	p.Add(plotter.NewGrid())

	curve := make(plotter.XYs, len(pts))
	area := make(plotter.XYs, 0, len(pts)+2)
	area = append(area, plotter.XY{X: pts[0].X, Y: 0})
	for i, pt := range pts {
		curve[i] = plotter.XY{X: pt.X, Y: pt.Y}
		area = append(area, curve[i])
	}
	area = append(area, plotter.XY{X: pts[len(pts)-1].X, Y: 0})

	fill, err := plotter.NewPolygon(area)
	if err != nil {
		return nil, err
	}
	fill.Color = areaColor
	fill.LineStyle.Width = 0
	p.Add(fill)

	zero, err := plotter.NewLine(plotter.XYs{
		{X: pts[0].X, Y: 0},
		{X: pts[len(pts)-1].X, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = zeroColor
	p.Add(zero)

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(3)
	line.LineStyle.Color = curveColor
	p.Add(line)

	if m, ok := d.ScaledMarker(); ok {
		marker, err := plotter.NewScatter(plotter.XYs{{X: m.X, Y: m.Y}})
		if err != nil {
			return nil, err
		}
		marker.GlyphStyle.Color = markerColor
		marker.GlyphStyle.Radius = vg.Points(5)
		marker.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(marker)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: m.X, Y: m.Y}},
			Labels: []string{fmt.Sprintf("  %.3f %s", m.Y, d.Y.Unit)},
		})
		if err != nil {
			return nil, err
		}
		p.Add(lbl)
	}

	return p, nil
}

// Export writes a diagram to an image file. The format follows the file
// extension (png, svg or pdf); any other extension gets ".png" appended.
func Export(d Diagram, filename string) (string, error) {
	p, err := newPlot(d)
	if err != nil {
		return "", err
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !isFormat(ext) {
		filename += ".png"
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	width := 11 * vg.Inch
	height := 5 * vg.Inch
	if err := p.Save(width, height, filename); err != nil {
		return "", fmt.Errorf("save %s: %w", filename, err)
	}
	return filename, nil
}

// ExportAll writes every diagram into dir as <prefix>-<kind>.<format> and
// returns the written paths
func ExportAll(ds []Diagram, dir, prefix, format string) ([]string, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if !isFormat(format) {
		return nil, fmt.Errorf("unsupported image format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	if prefix == "" {
		prefix = "beam"
	}

	paths := make([]string, 0, len(ds))
	for _, d := range ds {
		name := filepath.Join(dir, fmt.Sprintf("%s-%s.%s", prefix, d.Kind, format))
		path, err := Export(d, name)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func isFormat(ext string) bool {
	for _, f := range Formats {
		if ext == f {
			return true
		}
	}
	return false
}
