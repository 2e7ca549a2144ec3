package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/ssbeam/internal/beam"
	"github.com/alexiusacademia/ssbeam/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	steel      = beam.Spec{Length: 4, Modulus: 200e9, Inertia: 8e-6}
	pointCase  = beam.PointCase{Spec: steel, Load: beam.PointLoad{Magnitude: 10000, Position: 1}}
	udlCase    = beam.UDLCase{Spec: beam.Spec{Length: 6, Modulus: 30e9, Inertia: 0.02}, Load: beam.UDLLoad{Intensity: 5000}}
	midspanPtC = beam.PointCase{Spec: steel, Load: beam.PointLoad{Magnitude: 10000, Position: 2}}
)

func TestSample(t *testing.T) {
	pts := Sample(func(x float64) float64 { return 2 * x }, 4, DefaultSamples)
	require.Len(t, pts, 400)
	assert.Equal(t, 0.0, pts[0].X)
	assert.InDelta(t, 4.0, pts[399].X, 1e-12)

	step := 4.0 / 399
	for i := 1; i < len(pts); i++ {
		assert.InDelta(t, step, pts[i].X-pts[i-1].X, 1e-12)
		assert.Equal(t, 2*pts[i].X, pts[i].Y)
	}
}

func TestSampleRestartable(t *testing.T) {
	a := Sample(pointCase.Deflection, 4, 400)
	b := Sample(pointCase.Deflection, 4, 400)
	assert.Equal(t, a, b)
}

func TestSampleMinimum(t *testing.T) {
	pts := Sample(func(float64) float64 { return 1 }, 3, 0)
	require.Len(t, pts, 2)
	assert.Equal(t, Point{X: 0, Y: 1}, pts[0])
	assert.Equal(t, Point{X: 3, Y: 1}, pts[1])
}

func TestShearDiagramStep(t *testing.T) {
	d := Shear(pointCase, DefaultSamples, units.Metre)
	r1 := pointCase.Reactions().Left
	for _, p := range d.Points {
		if p.X < 1 {
			assert.Equal(t, r1, p.Y)
		} else {
			assert.Equal(t, r1-10000, p.Y)
		}
	}
	assert.Equal(t, ShearKind, d.Kind)
	assert.Equal(t, "Shear Force (N)", d.Y.Title())
	assert.Nil(t, d.Marker)
	assert.False(t, d.Inverted)
}

func TestMomentDiagram(t *testing.T) {
	d := Moment(udlCase, 401, units.Metre)
	assert.Equal(t, "Bending Moment Diagram - UDL", d.Title)
	assert.InDelta(t, udlCase.MaxMoment(), d.Points[200].Y, 1e-6)
}

func TestDeflectionDiagram(t *testing.T) {
	d := Deflection(midspanPtC, DefaultSamples, units.Millimetre)
	assert.True(t, d.Inverted)
	assert.Equal(t, "Beam Length (mm)", d.X.Title())
	assert.Equal(t, "Deflection (mm)", d.Y.Title())

	require.NotNil(t, d.Marker)
	m, ok := d.ScaledMarker()
	require.True(t, ok)
	assert.InDelta(t, 2000, m.X, 1e-9)
	assert.InDelta(t, midspanPtC.MaxDeflection()*1000, m.Y, 1e-12)

	scaled := d.Scaled()
	assert.InDelta(t, 4000, scaled[len(scaled)-1].X, 1e-9)
	assert.InDelta(t, d.Points[100].Y*1000, scaled[100].Y, 1e-15)

	u := Deflection(udlCase, DefaultSamples, units.Metre)
	assert.Nil(t, u.Marker)
	_, ok = u.ScaledMarker()
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	ds := All(udlCase, 50, units.Centimetre)
	require.Len(t, ds, 3)
	assert.Equal(t, []Kind{ShearKind, MomentKind, DeflectionKind}, []Kind{ds[0].Kind, ds[1].Kind, ds[2].Kind})
	for _, d := range ds {
		assert.Len(t, d.Points, 50)
		assert.InDelta(t, 100, d.X.Scale, 1e-12)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "shear", ShearKind.String())
	assert.Equal(t, "moment", MomentKind.String())
	assert.Equal(t, "deflection", DeflectionKind.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestRender(t *testing.T) {
	out := Render(Deflection(pointCase, DefaultSamples, units.Metre), 8, 40)
	assert.Contains(t, out, "DEFLECTION CURVE")
	assert.Contains(t, out, "downward shown below axis")
	assert.Contains(t, out, "Load at 1 m")

	out = Render(Shear(udlCase, DefaultSamples, units.Metre), 0, 0)
	assert.Contains(t, out, "Shear Force (N)")
	assert.NotContains(t, out, "Load at")

	assert.Empty(t, Render(Diagram{}, 5, 5))
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("RESULT", []string{"δ = 8.333 mm", "R1 = 5000 N"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 2+1+2+1, "borders, title, separator and one line per entry")
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "box lines must line up: %q", l)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	path, err := Export(Deflection(pointCase, 100, units.Metre), filepath.Join(dir, "defl.svg"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "defl.svg"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	path, err = Export(Shear(udlCase, 100, units.Metre), filepath.Join(dir, "nested", "shear"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "shear.png"), path)
	assert.FileExists(t, path)

	_, err = Export(Diagram{Title: "empty"}, filepath.Join(dir, "x.png"))
	assert.Error(t, err)
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	paths, err := ExportAll(All(udlCase, 50, units.Metre), dir, "", "PNG")
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "beam-shear.png"), paths[0])
	assert.Equal(t, filepath.Join(dir, "beam-deflection.png"), paths[2])
	for _, p := range paths {
		assert.FileExists(t, p)
	}

	_, err = ExportAll(nil, dir, "x", "gif")
	assert.ErrorContains(t, err, "unsupported image format")
}
