package diagram

import (
	"fmt"

	"github.com/alexiusacademia/ssbeam/internal/beam"
	"github.com/alexiusacademia/ssbeam/internal/units"
	"gonum.org/v1/gonum/floats"
)

// DefaultSamples is the number of points taken along the span
const DefaultSamples = 400

// Point is a single (position, value) sample
type Point struct {
	X float64
	Y float64
}

// Kind identifies which internal quantity a diagram shows
type Kind int

const (
	ShearKind Kind = iota
	MomentKind
	DeflectionKind
)

func (k Kind) String() string {
	switch k {
	case ShearKind:
		return "shear"
	case MomentKind:
		return "moment"
	case DeflectionKind:
		return "deflection"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Axis describes how one axis is presented
type Axis struct {
	Label string  // e.g. "Beam Length"
	Unit  string  // e.g. "mm"
	Scale float64 // SI value × Scale = displayed value
}

// Title is the axis caption, e.g. "Beam Length (mm)"
func (a Axis) Title() string {
	return fmt.Sprintf("%s (%s)", a.Label, a.Unit)
}

// Diagram is a sampled curve plus the metadata a renderer needs
type Diagram struct {
	Kind  Kind
	Title string
	X     Axis
	Y     Axis

	// Samples in SI units, ordered by X over [0, L]
	Points []Point

	// Inverted asks the renderer to draw positive values below the axis
	Inverted bool

	// Marker is an optional highlighted sample (SI), such as the
	// deflection under a point load
	Marker *Point
}

// Scaled returns the samples converted to display units
func (d Diagram) Scaled() []Point {
	out := make([]Point, len(d.Points))
	for i, p := range d.Points {
		out[i] = Point{X: p.X * d.X.Scale, Y: p.Y * d.Y.Scale}
	}
	return out
}

// ScaledMarker returns the marker in display units
func (d Diagram) ScaledMarker() (Point, bool) {
	if d.Marker == nil {
		return Point{}, false
	}
	return Point{X: d.Marker.X * d.X.Scale, Y: d.Marker.Y * d.Y.Scale}, true
}

// Sample evaluates fn at n evenly spaced positions over [0, length],
// both ends included. Fewer than two samples is treated as two.
func Sample(fn func(x float64) float64, length float64, n int) []Point {
	if n < 2 {
		n = 2
	}
	xs := floats.Span(make([]float64, n), 0, length)
	pts := make([]Point, n)
	for i, x := range xs {
		pts[i] = Point{X: x, Y: fn(x)}
	}
	return pts
}

func lengthAxis(lu units.Length) Axis {
	return Axis{Label: "Beam Length", Unit: lu.String(), Scale: lu.FromSI(1)}
}

// Shear samples the shear force diagram
func Shear(c beam.LoadCase, n int, lu units.Length) Diagram {
	return Diagram{
		Kind:   ShearKind,
		Title:  "Shear Force Diagram - " + c.Name(),
		X:      lengthAxis(lu),
		Y:      Axis{Label: "Shear Force", Unit: "N", Scale: 1},
		Points: Sample(c.Shear, c.Beam().Length, n),
	}
}

// Moment samples the bending moment diagram
func Moment(c beam.LoadCase, n int, lu units.Length) Diagram {
	return Diagram{
		Kind:   MomentKind,
		Title:  "Bending Moment Diagram - " + c.Name(),
		X:      lengthAxis(lu),
		Y:      Axis{Label: "Moment", Unit: "Nm", Scale: 1},
		Points: Sample(c.Moment, c.Beam().Length, n),
	}
}

// Deflection samples the elastic curve in millimetres, drawn with
// downward deflection below the axis. Point loads get a marker under the
// load.
func Deflection(c beam.LoadCase, n int, lu units.Length) Diagram {
	d := Diagram{
		Kind:     DeflectionKind,
		Title:    "Deflection Curve - Simply Supported Beam (" + c.Name() + ")",
		X:        lengthAxis(lu),
		Y:        Axis{Label: "Deflection", Unit: units.Millimetre.String(), Scale: units.Millimetre.FromSI(1)},
		Points:   Sample(c.Deflection, c.Beam().Length, n),
		Inverted: true,
	}
	if a, ok := c.LoadPoint(); ok {
		d.Marker = &Point{X: a, Y: c.Deflection(a)}
	}
	return d
}

// All returns the shear, moment and deflection diagrams in that order
func All(c beam.LoadCase, n int, lu units.Length) []Diagram {
	return []Diagram{
		Shear(c, n, lu),
		Moment(c, n, lu),
		Deflection(c, n, lu),
	}
}
