package beam

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steel: L=4 m, E=200 GPa, I=8e-6 m⁴
var steel = Spec{Length: 4, Modulus: 200e9, Inertia: 8e-6}

// concrete: L=6 m, E=30 GPa, I=0.02 m⁴
var concrete = Spec{Length: 6, Modulus: 30e9, Inertia: 0.02}

func TestSpecValidate(t *testing.T) {
	require.NoError(t, steel.Validate())

	tests := []struct {
		name string
		spec Spec
	}{
		{"zero length", Spec{Length: 0, Modulus: 1, Inertia: 1}},
		{"negative modulus", Spec{Length: 1, Modulus: -1, Inertia: 1}},
		{"zero inertia", Spec{Length: 1, Modulus: 1, Inertia: 0}},
		{"NaN length", Spec{Length: math.NaN(), Modulus: 1, Inertia: 1}},
		{"infinite modulus", Spec{Length: 1, Modulus: math.Inf(1), Inertia: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			require.Error(t, err)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestSpecWarnings(t *testing.T) {
	assert.Empty(t, steel.Warnings())

	tiny := Spec{Length: 4, Modulus: 200e9, Inertia: 8e-12}
	require.NoError(t, tiny.Validate(), "a tiny inertia is a warning, not a rejection")
	assert.Len(t, tiny.Warnings(), 1)
}

func TestPointLoadValidate(t *testing.T) {
	assert.NoError(t, PointLoad{Magnitude: 1, Position: 2}.Validate(4))
	assert.NoError(t, PointLoad{Magnitude: -1, Position: 0.001}.Validate(4))
	assert.Error(t, PointLoad{Magnitude: 1, Position: 0}.Validate(4))
	assert.Error(t, PointLoad{Magnitude: 1, Position: 4}.Validate(4))
	assert.Error(t, PointLoad{Magnitude: 1, Position: 5}.Validate(4))
	assert.Error(t, PointLoad{Magnitude: math.NaN(), Position: 2}.Validate(4))
}

func TestUDLLoadValidate(t *testing.T) {
	assert.NoError(t, UDLLoad{Intensity: 5000}.Validate())
	assert.Error(t, UDLLoad{Intensity: 0}.Validate())
	assert.Error(t, UDLLoad{Intensity: -5}.Validate())
}

func TestNewPointCase(t *testing.T) {
	_, err := NewPointCase(steel, PointLoad{Magnitude: 10000, Position: 4.5})
	assert.Error(t, err)

	_, err = NewPointCase(Spec{}, PointLoad{Magnitude: 10000, Position: 2})
	assert.Error(t, err)

	c, err := NewPointCase(steel, PointLoad{Magnitude: 10000, Position: 2})
	require.NoError(t, err)
	assert.Equal(t, steel, c.Beam())
}

func TestNewUDLCase(t *testing.T) {
	_, err := NewUDLCase(concrete, UDLLoad{})
	assert.Error(t, err)

	c, err := NewUDLCase(concrete, UDLLoad{Intensity: 5000})
	require.NoError(t, err)
	assert.Equal(t, "UDL", c.Name())
}

func TestPointReactionsBalance(t *testing.T) {
	for _, L := range []float64{0.5, 3, 7.25, 40} {
		for _, frac := range []float64{0.01, 0.2, 0.5, 0.77, 0.99} {
			for _, P := range []float64{-12000, 1, 10000, 3.5e6} {
				c := PointCase{
					Spec: Spec{Length: L, Modulus: 200e9, Inertia: 1e-5},
					Load: PointLoad{Magnitude: P, Position: frac * L},
				}
				r := c.Reactions()
				assert.InDelta(t, P, r.Total(), 1e-9*math.Max(1, math.Abs(P)))
				assert.InDelta(t, P, c.TotalLoad(), 0)
			}
		}
	}
}

func TestUDLReactionsBalance(t *testing.T) {
	for _, L := range []float64{0.5, 6, 25} {
		for _, w := range []float64{1, 5000, 2.5e5} {
			c := UDLCase{Spec: Spec{Length: L, Modulus: 30e9, Inertia: 0.02}, Load: UDLLoad{Intensity: w}}
			r := c.Reactions()
			assert.InDelta(t, w*L, r.Total(), 1e-9*w*L)
			assert.Equal(t, r.Left, r.Right)
		}
	}
}

func TestPointShearStep(t *testing.T) {
	c := PointCase{Spec: steel, Load: PointLoad{Magnitude: 9000, Position: 1}}
	r1 := c.Reactions().Left
	assert.InDelta(t, 6750, r1, 1e-9)

	for i := 0; i <= 400; i++ {
		x := steel.Length * float64(i) / 400
		if x < 1 {
			assert.Equal(t, r1, c.Shear(x), "x=%g", x)
		} else {
			assert.Equal(t, r1-9000, c.Shear(x), "x=%g", x)
		}
	}
	assert.Equal(t, r1-9000, c.Shear(1), "the load point belongs to the right segment")
	assert.InDelta(t, 6750, c.MaxShear(), 1e-9)
}

func TestPointMomentContinuous(t *testing.T) {
	for _, a := range []float64{0.3, 1, 2, 3.7} {
		c := PointCase{Spec: steel, Load: PointLoad{Magnitude: 10000, Position: a}}
		left := c.Moment(math.Nextafter(a, 0))
		right := c.Moment(a)
		assert.InDelta(t, left, right, 1e-6, "a=%g", a)
		assert.InDelta(t, c.MaxMoment(), right, 1e-9)
	}

	c := PointCase{Spec: steel, Load: PointLoad{Magnitude: 10000, Position: 1}}
	assert.InDelta(t, 0, c.Moment(0), 1e-12)
	assert.InDelta(t, 0, c.Moment(steel.Length), 1e-9)
	assert.InDelta(t, 10000*1*3/4.0, c.MaxMoment(), 1e-9)
	assert.Equal(t, 1.0, c.MaxMomentAt())
}

func TestPointDeflectionMatchesScalar(t *testing.T) {
	for _, a := range []float64{0.25, 1, 2, 2.9, 3.75} {
		c := PointCase{Spec: steel, Load: PointLoad{Magnitude: 10000, Position: a}}
		assert.InDelta(t, c.MaxDeflection(), c.Deflection(a), 1e-15, "a=%g", a)
		assert.Equal(t, a, c.MaxDeflectionAt())
		// the curve is continuous at the load
		assert.InDelta(t, c.Deflection(math.Nextafter(a, 0)), c.Deflection(a), 1e-12)
	}
}

func TestPointDeflectionSupports(t *testing.T) {
	c := PointCase{Spec: steel, Load: PointLoad{Magnitude: 10000, Position: 1.3}}
	assert.InDelta(t, 0, c.Deflection(0), 1e-18)
	assert.InDelta(t, 0, c.Deflection(steel.Length), 1e-18)
}

func TestPointLoadSteelScenario(t *testing.T) {
	c, err := NewPointCase(steel, PointLoad{Magnitude: 10000, Position: 2})
	require.NoError(t, err)

	r := c.Reactions()
	assert.InDelta(t, 5000, r.Left, 1e-9)
	assert.InDelta(t, 5000, r.Right, 1e-9)

	// midspan load: P·L³/(48·E·I)
	want := 10000 * math.Pow(4, 3) / (48 * 200e9 * 8e-6)
	assert.InDelta(t, want, c.MaxDeflection(), 1e-12)
	assert.Equal(t, "0.008333", fmt.Sprintf("%.6f", c.MaxDeflection()))
}

func TestPointPeakDeflection(t *testing.T) {
	t.Run("midspan", func(t *testing.T) {
		c := PointCase{Spec: steel, Load: PointLoad{Magnitude: 10000, Position: 2}}
		x, y := c.PeakDeflection()
		assert.InDelta(t, 2, x, 1e-12)
		assert.InDelta(t, c.MaxDeflection(), y, 1e-15)
	})

	t.Run("load right of midspan", func(t *testing.T) {
		c := PointCase{Spec: steel, Load: PointLoad{Magnitude: 10000, Position: 3}}
		x, y := c.PeakDeflection()
		L, b := 4.0, 1.0
		wantX := math.Sqrt((L*L - b*b) / 3)
		wantY := 10000 * b * math.Pow(L*L-b*b, 1.5) / (9 * math.Sqrt(3) * L * 200e9 * 8e-6)
		assert.InDelta(t, wantX, x, 1e-12)
		assert.InDelta(t, wantY, y, 1e-12)
		assert.Greater(t, y, c.MaxDeflection(), "the load-point figure understates the true peak")
	})

	t.Run("load left of midspan mirrors", func(t *testing.T) {
		right := PointCase{Spec: steel, Load: PointLoad{Magnitude: 10000, Position: 3}}
		left := PointCase{Spec: steel, Load: PointLoad{Magnitude: 10000, Position: 1}}
		xr, yr := right.PeakDeflection()
		xl, yl := left.PeakDeflection()
		assert.InDelta(t, steel.Length-xr, xl, 1e-12)
		assert.InDelta(t, yr, yl, 1e-15)
	})

	t.Run("peak is the maximum of the sampled curve", func(t *testing.T) {
		c := PointCase{Spec: steel, Load: PointLoad{Magnitude: 10000, Position: 0.6}}
		_, peak := c.PeakDeflection()
		for i := 0; i <= 1000; i++ {
			x := steel.Length * float64(i) / 1000
			assert.LessOrEqual(t, c.Deflection(x), peak+1e-15)
		}
	})
}

func TestUpwardPointLoad(t *testing.T) {
	c := PointCase{Spec: steel, Load: PointLoad{Magnitude: -10000, Position: 2}}
	assert.InDelta(t, -5000, c.Reactions().Left, 1e-9)
	assert.Less(t, c.MaxDeflection(), 0.0)
	assert.InDelta(t, 5000, c.MaxShear(), 1e-9)
}

func TestUDLShearAndMoment(t *testing.T) {
	c := UDLCase{Spec: concrete, Load: UDLLoad{Intensity: 5000}}
	assert.InDelta(t, 15000, c.Shear(0), 1e-9)
	assert.InDelta(t, 0, c.Shear(3), 1e-9)
	assert.InDelta(t, -15000, c.Shear(6), 1e-9)

	assert.InDelta(t, 0, c.Moment(0), 1e-9)
	assert.InDelta(t, 0, c.Moment(6), 1e-9)
	assert.InDelta(t, 5000*36/8.0, c.Moment(3), 1e-9)
	assert.InDelta(t, c.Moment(3), c.MaxMoment(), 1e-9)
	assert.Equal(t, 3.0, c.MaxMomentAt())
	assert.InDelta(t, 15000, c.MaxShear(), 1e-9)
}

func TestUDLDeflectionSymmetric(t *testing.T) {
	c := UDLCase{Spec: concrete, Load: UDLLoad{Intensity: 5000}}
	for i := 0; i <= 200; i++ {
		x := concrete.Length * float64(i) / 200
		assert.InDelta(t, c.Deflection(x), c.Deflection(concrete.Length-x), 1e-15, "x=%g", x)
	}
}

func TestUDLConcreteScenario(t *testing.T) {
	c, err := NewUDLCase(concrete, UDLLoad{Intensity: 5000})
	require.NoError(t, err)

	r := c.Reactions()
	assert.InDelta(t, 15000, r.Left, 1e-9)
	assert.InDelta(t, 15000, r.Right, 1e-9)

	want := 5 * 5000 * math.Pow(6, 4) / (384 * 30e9 * 0.02)
	assert.InDelta(t, want, c.MaxDeflection(), 1e-15)
	assert.InDelta(t, 1.40625e-4, c.MaxDeflection(), 1e-15)
	assert.InDelta(t, c.MaxDeflection(), c.Deflection(c.MaxDeflectionAt()), 1e-15)

	_, ok := c.LoadPoint()
	assert.False(t, ok)
}

func TestLookupMaterial(t *testing.T) {
	m, err := LookupMaterial(" Steel ")
	require.NoError(t, err)
	assert.Equal(t, 200e9, m.Modulus)

	m, err = LookupMaterial("aluminum")
	require.NoError(t, err)
	assert.Equal(t, "Aluminium", m.Name)

	_, err = LookupMaterial("unobtainium")
	assert.ErrorContains(t, err, "aluminium, concrete, steel, timber")
}
