package beam

import "math"

var _ LoadCase = UDLCase{}

// UDLCase is a simply supported beam with a full-span uniform load
type UDLCase struct {
	Spec Spec
	Load UDLLoad
}

// NewUDLCase validates the beam and load and binds them together
func NewUDLCase(spec Spec, load UDLLoad) (UDLCase, error) {
	if err := spec.Validate(); err != nil {
		return UDLCase{}, err
	}
	if err := load.Validate(); err != nil {
		return UDLCase{}, err
	}
	return UDLCase{Spec: spec, Load: load}, nil
}

func (c UDLCase) Name() string       { return "UDL" }
func (c UDLCase) Beam() Spec         { return c.Spec }
func (c UDLCase) TotalLoad() float64 { return c.Load.Intensity * c.Spec.Length }

func (c UDLCase) LoadPoint() (float64, bool) {
	return 0, false
}

// Reactions are w·L/2 at each support by symmetry
func (c UDLCase) Reactions() Reactions {
	r := c.TotalLoad() / 2
	return Reactions{Left: r, Right: r}
}

// Shear V(x) = R1 − w·x
func (c UDLCase) Shear(x float64) float64 {
	return c.Reactions().Left - c.Load.Intensity*x
}

// Moment M(x) = R1·x − w·x²/2
func (c UDLCase) Moment(x float64) float64 {
	return c.Reactions().Left*x - c.Load.Intensity*x*x/2
}

// Deflection y(x) = w·x·(L³ − 2·L·x² + x³)/(24·E·I)
func (c UDLCase) Deflection(x float64) float64 {
	L, w := c.Spec.Length, c.Load.Intensity
	return w * x * (L*L*L - 2*L*x*x + x*x*x) / (24 * c.Spec.Rigidity())
}

// MaxDeflection is 5·w·L⁴/(384·E·I) at midspan
func (c UDLCase) MaxDeflection() float64 {
	L := c.Spec.Length
	return 5 * c.Load.Intensity * math.Pow(L, 4) / (384 * c.Spec.Rigidity())
}

func (c UDLCase) MaxDeflectionAt() float64 {
	return c.Spec.Length / 2
}

// MaxMoment is w·L²/8 at midspan
func (c UDLCase) MaxMoment() float64 {
	L := c.Spec.Length
	return c.Load.Intensity * L * L / 8
}

func (c UDLCase) MaxMomentAt() float64 {
	return c.Spec.Length / 2
}

func (c UDLCase) MaxShear() float64 {
	return math.Abs(c.Reactions().Left)
}
