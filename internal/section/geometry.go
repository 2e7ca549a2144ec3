package section

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/alexiusacademia/ssbeam/internal/units"
)

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var section Section
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, fmt.Errorf("parse section %s: %w", filepath, err)
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *Properties {
	props := &Properties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area and centroid using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY = s.calculateAreaAndCentroid()

	// Shift to the centroid with the parallel axis theorem
	ix, iy := s.calculateOriginInertia()
	props.Ixx = ix - props.Area*props.CentroidY*props.CentroidY
	props.Iyy = iy - props.Area*props.CentroidX*props.CentroidX

	return props
}

// InertiaSI returns Ixx in m⁴, ready to be used as a beam's I
func (p *Properties) InertiaSI() float64 {
	return units.Millimetre4.ToSI(p.Ixx)
}

// calculateAreaAndCentroid uses the shoelace formula
func (s *Section) calculateAreaAndCentroid() (area, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// calculateOriginInertia returns the second moments of area about the
// origin's x and y axes, positive regardless of vertex order
func (s *Section) calculateOriginInertia() (ix, iy float64) {
	n := len(s.Vertices)
	var signedArea float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := s.Vertices[i], s.Vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		signedArea += cross
		ix += cross * (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y)
		iy += cross * (vi.X*vi.X + vi.X*vj.X + vj.X*vj.X)
	}

	ix /= 12
	iy /= 12
	if signedArea < 0 {
		ix, iy = -ix, -iy
	}
	return ix, iy
}
