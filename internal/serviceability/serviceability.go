// Package serviceability classifies a computed deflection against the
// L/250 limit commonly used for beams.
package serviceability

import (
	"fmt"
	"math"
)

const (
	// LimitRatio is the span-to-deflection ratio of the allowable limit
	LimitRatio = 250.0

	// NegligibleDeflection is the magnitude below which a deflection is
	// reported as negligible (mm)
	NegligibleDeflection = 0.001
)

// Status is the outcome of a serviceability check
type Status int

const (
	WithinLimits Status = iota
	Negligible
	ExceedsLimit
)

func (s Status) String() string {
	switch s {
	case Negligible:
		return "negligible"
	case ExceedsLimit:
		return "exceeds limit"
	default:
		return "within limits"
	}
}

// Result holds the outcome of a check
type Result struct {
	Status       Status
	DeflectionMM float64 // δ as supplied (mm)
	LimitMM      float64 // L/250 (mm)
	Message      string  // empty when within limits
}

// OK reports whether the deflection does not exceed the limit
func (r Result) OK() bool {
	return r.Status != ExceedsLimit
}

// Utilization is |δ| / limit
func (r Result) Utilization() float64 {
	if r.LimitMM == 0 {
		return 0
	}
	return math.Abs(r.DeflectionMM) / r.LimitMM
}

// Allowable returns the L/250 deflection limit for a span in mm
func Allowable(spanMM float64) float64 {
	return spanMM / LimitRatio
}

// Check classifies a deflection for a span, both in mm. The negligibility
// test runs first, so a tiny deflection on a short span is never reported
// as exceeding the limit.
func Check(deflectionMM, spanMM float64) Result {
	r := Result{
		DeflectionMM: deflectionMM,
		LimitMM:      Allowable(spanMM),
	}
	mag := math.Abs(deflectionMM)
	switch {
	case mag < NegligibleDeflection:
		r.Status = Negligible
		r.Message = "Maximum Deflection is negligible under the given loading conditions."
	case mag > r.LimitMM:
		r.Status = ExceedsLimit
		r.Message = fmt.Sprintf("WARNING: Deflection %.3f mm exceeds typical serviceability limits (L/%.0f = %.3f mm). Beam may not be suitable for structural use.",
			mag, LimitRatio, r.LimitMM)
	default:
		r.Status = WithinLimits
	}
	return r
}
