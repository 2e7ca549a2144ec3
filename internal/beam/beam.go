// Package beam holds the closed-form mechanics of a simply supported beam
// under a single point load or a full-span uniformly distributed load.
//
// Everything here works in SI base units (m, Pa, m⁴, N, N/m). The
// functions are total over validated input; call Validate before building
// a load case.
package beam

import (
	"fmt"
	"math"
)

// MinSaneInertia is the second moment of area below which the input most
// likely used the wrong unit (m⁴ typed where mm⁴ was meant).
const MinSaneInertia = 1e-10 // m⁴

// Spec describes the beam itself
type Spec struct {
	Length  float64 // L - span between supports (m)
	Modulus float64 // E - Young's modulus (Pa)
	Inertia float64 // I - second moment of area (m⁴)
}

// Validate checks that every property is strictly positive and finite
func (s Spec) Validate() error {
	if !positive(s.Length) {
		return &ValidationError{msg: fmt.Sprintf("beam length must be positive, got %g m", s.Length)}
	}
	if !positive(s.Modulus) {
		return &ValidationError{msg: fmt.Sprintf("Young's modulus must be positive, got %g Pa", s.Modulus)}
	}
	if !positive(s.Inertia) {
		return &ValidationError{msg: fmt.Sprintf("moment of inertia must be positive, got %g m⁴", s.Inertia)}
	}
	return nil
}

// Warnings returns advisory messages that do not block the analysis
func (s Spec) Warnings() []string {
	var warnings []string
	if s.Inertia < MinSaneInertia {
		warnings = append(warnings, "Moment of Inertia is extremely small, check units.")
	}
	return warnings
}

// Rigidity returns the flexural rigidity E·I (N·m²)
func (s Spec) Rigidity() float64 {
	return s.Modulus * s.Inertia
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidationError reports input that violates a precondition of the
// mechanics functions
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
