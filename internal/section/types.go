package section

import (
	"fmt"
	"math"
)

// Section is a beam cross-section defined by the vertices of a simple
// polygon. Coordinates are in mm in a local system where:
// - Y-axis points upward (bending about the horizontal axis)
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Vertices of the outline, counter-clockwise preferred. Clockwise
	// outlines give the same properties.
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Second moments of area about the centroidal axes
	Ixx float64 // about the horizontal axis, governs vertical bending (mm⁴)
	Iyy float64 // about the vertical axis (mm⁴)
}

// SectionModuli returns the elastic section moduli Ixx/y for the extreme
// fibres (mm³)
func (p *Properties) SectionModuli() (top, bottom float64) {
	if ct := p.MaxY - p.CentroidY; ct > 0 {
		top = p.Ixx / ct
	}
	if cb := p.CentroidY - p.MinY; cb > 0 {
		bottom = p.Ixx / cb
	}
	return top, bottom
}

// Rectangle builds a solid rectangular section of width b and height h (mm)
func Rectangle(b, h float64) *Section {
	return &Section{
		Name: fmt.Sprintf("Rectangle %gx%g", b, h),
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: b, Y: 0},
			{X: b, Y: h},
			{X: 0, Y: h},
		},
	}
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	for i, v := range s.Vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return &ValidationError{msg: fmt.Sprintf("vertex %d has a non-finite coordinate", i+1)}
		}
	}
	if area, _, _ := s.calculateAreaAndCentroid(); !(area > 0) {
		return &ValidationError{"section outline encloses no area"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
