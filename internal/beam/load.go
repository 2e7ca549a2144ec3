package beam

import "fmt"

// PointLoad is a single concentrated load
type PointLoad struct {
	Magnitude float64 // P - positive acts downward, negative upward (N)
	Position  float64 // a - distance from the left support (m)
}

// Validate checks that the load lies strictly between the supports of a
// beam of the given length
func (p PointLoad) Validate(length float64) error {
	if !finite(p.Magnitude) {
		return &ValidationError{msg: fmt.Sprintf("load magnitude must be a finite number, got %g N", p.Magnitude)}
	}
	if !(p.Position > 0 && p.Position < length) {
		return &ValidationError{msg: fmt.Sprintf("invalid load position %g m: load must lie between 0 and the beam length (%g m)", p.Position, length)}
	}
	return nil
}

// UDLLoad is a uniformly distributed load acting over the full span
type UDLLoad struct {
	Intensity float64 // w (N/m)
}

func (u UDLLoad) Validate() error {
	if !positive(u.Intensity) {
		return &ValidationError{msg: fmt.Sprintf("load intensity must be positive, got %g N/m", u.Intensity)}
	}
	return nil
}

// Reactions are the vertical support reactions
type Reactions struct {
	Left  float64 // R1 (N)
	Right float64 // R2 (N)
}

// Total is R1 + R2, which equals the total applied load
func (r Reactions) Total() float64 {
	return r.Left + r.Right
}

// LoadCase is a beam carrying one specific load. Positions x are measured
// from the left support and must lie in [0, L].
type LoadCase interface {
	// Name is a short label such as "Point Load" or "UDL"
	Name() string
	Beam() Spec
	// TotalLoad is the resultant of the applied load (N)
	TotalLoad() float64
	Reactions() Reactions

	// Shear force V(x) (N)
	Shear(x float64) float64
	// Bending moment M(x) (N·m)
	Moment(x float64) float64
	// Deflection y(x), positive downward for a positive load (m)
	Deflection(x float64) float64

	// MaxDeflection is the reported design deflection (m) and
	// MaxDeflectionAt its position (m)
	MaxDeflection() float64
	MaxDeflectionAt() float64
	// MaxMoment is the moment of largest magnitude (N·m) at MaxMomentAt (m)
	MaxMoment() float64
	MaxMomentAt() float64
	// MaxShear is the largest shear magnitude (N)
	MaxShear() float64

	// LoadPoint returns the position of a concentrated load, if any
	LoadPoint() (x float64, ok bool)
}
