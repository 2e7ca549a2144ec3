package beam

import "math"

var _ LoadCase = PointCase{}

// PointCase is a simply supported beam with a single point load
type PointCase struct {
	Spec Spec
	Load PointLoad
}

// NewPointCase validates the beam and load and binds them together
func NewPointCase(spec Spec, load PointLoad) (PointCase, error) {
	if err := spec.Validate(); err != nil {
		return PointCase{}, err
	}
	if err := load.Validate(spec.Length); err != nil {
		return PointCase{}, err
	}
	return PointCase{Spec: spec, Load: load}, nil
}

func (c PointCase) Name() string       { return "Point Load" }
func (c PointCase) Beam() Spec         { return c.Spec }
func (c PointCase) TotalLoad() float64 { return c.Load.Magnitude }

func (c PointCase) LoadPoint() (float64, bool) {
	return c.Load.Position, true
}

// b is the distance from the load to the right support
func (c PointCase) b() float64 {
	return c.Spec.Length - c.Load.Position
}

// Reactions from ΣM = 0 about each support:
// R1 = P·b/L, R2 = P·a/L
func (c PointCase) Reactions() Reactions {
	L, P, a := c.Spec.Length, c.Load.Magnitude, c.Load.Position
	return Reactions{
		Left:  P * (L - a) / L,
		Right: P * a / L,
	}
}

// Shear jumps by -P at the load. The sample at x = a belongs to the right
// segment.
func (c PointCase) Shear(x float64) float64 {
	r1 := c.Reactions().Left
	if x < c.Load.Position {
		return r1
	}
	return r1 - c.Load.Magnitude
}

func (c PointCase) Moment(x float64) float64 {
	r1 := c.Reactions().Left
	a := c.Load.Position
	if x < a {
		return r1 * x
	}
	return r1*x - c.Load.Magnitude*(x-a)
}

// Deflection of the elastic curve:
//
//	x < a:  y = P·b·x/(6·L·E·I) · (L² − b² − x²)
//	x ≥ a:  y = P·a·(L−x)/(6·L·E·I) · (L² − a² − (L−x)²)
func (c PointCase) Deflection(x float64) float64 {
	L, P, a := c.Spec.Length, c.Load.Magnitude, c.Load.Position
	b := c.b()
	k := P / (6 * L * c.Spec.Rigidity())
	if x < a {
		return k * b * x * (L*L - b*b - x*x)
	}
	u := L - x
	return k * a * u * (L*L - a*a - u*u)
}

// MaxDeflection is the deflection under the load,
// δ = P·a·b·(L² − a² − b²)/(6·E·I·L).
//
// This is the figure reported for design. It equals the true maximum only
// when the load is at midspan; see PeakDeflection for the extremum of the
// curve.
func (c PointCase) MaxDeflection() float64 {
	L, P, a := c.Spec.Length, c.Load.Magnitude, c.Load.Position
	b := c.b()
	return P * a * b * (L*L - a*a - b*b) / (6 * c.Spec.Rigidity() * L)
}

func (c PointCase) MaxDeflectionAt() float64 {
	return c.Load.Position
}

// PeakDeflection returns the position and value of the extremum of the
// elastic curve. It lies in the longer segment, at
// x = √((L² − b²)/3) from the left support when a ≥ b.
func (c PointCase) PeakDeflection() (x, y float64) {
	L, a := c.Spec.Length, c.Load.Position
	b := c.b()
	if a >= b {
		x = math.Sqrt((L*L - b*b) / 3)
	} else {
		x = L - math.Sqrt((L*L-a*a)/3)
	}
	return x, c.Deflection(x)
}

// MaxMoment is P·a·b/L under the load
func (c PointCase) MaxMoment() float64 {
	return c.Load.Magnitude * c.Load.Position * c.b() / c.Spec.Length
}

func (c PointCase) MaxMomentAt() float64 {
	return c.Load.Position
}

func (c PointCase) MaxShear() float64 {
	r := c.Reactions()
	return math.Max(math.Abs(r.Left), math.Abs(r.Right))
}
