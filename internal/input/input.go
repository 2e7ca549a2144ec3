// Package input turns raw user input (values plus unit tags, from flags or
// a JSON file) into a validated problem in SI units.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/ssbeam/internal/beam"
	"github.com/alexiusacademia/ssbeam/internal/section"
	"github.com/alexiusacademia/ssbeam/internal/units"
)

var (
	// ErrUnknownLoadType is returned for a load type other than point or udl
	ErrUnknownLoadType = errors.New("unknown load type")

	// ErrConflict is returned when two alternative inputs are both given
	ErrConflict = errors.New("conflicting input")
)

// LoadType selects the load case. The zero value is unset and rejected.
type LoadType int

const (
	PointLoad LoadType = iota + 1
	UDL
)

func (t LoadType) String() string {
	switch t {
	case PointLoad:
		return "point"
	case UDL:
		return "udl"
	}
	return "unset"
}

// UnmarshalText accepts "point" or "udl" in any case
func (t *LoadType) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "point", "point-load", "p":
		*t = PointLoad
	case "udl", "uniform", "distributed", "w":
		*t = UDL
	default:
		return fmt.Errorf("%w %q (want point or udl)", ErrUnknownLoadType, string(b))
	}
	return nil
}

// Load is the raw description of the applied load
type Load struct {
	Type LoadType `json:"type"`

	// Point load
	Magnitude     float64      `json:"magnitude,omitempty"` // negative acts upward
	MagnitudeUnit units.Force  `json:"magnitude_unit,omitempty"`
	Position      float64      `json:"position,omitempty"` // from the left support
	PositionUnit  *units.Length `json:"position_unit,omitempty"` // nil follows the length unit

	// Uniformly distributed load
	Intensity     float64        `json:"intensity,omitempty"`
	IntensityUnit units.LineLoad `json:"intensity_unit,omitempty"`
}

// Raw is the unvalidated input of one analysis
type Raw struct {
	Name string `json:"name,omitempty"`

	Length     float64      `json:"length"`
	LengthUnit units.Length `json:"length_unit,omitempty"`

	// Either Modulus or Material
	Modulus     float64       `json:"modulus,omitempty"`
	ModulusUnit units.Modulus `json:"modulus_unit,omitempty"`
	Material    string        `json:"material,omitempty"`

	// Either Inertia or Section (vertices in mm)
	Inertia     float64          `json:"inertia,omitempty"`
	InertiaUnit units.Inertia    `json:"inertia_unit,omitempty"`
	Section     *section.Section `json:"section,omitempty"`

	Load Load `json:"load"`
}

// Problem is a validated analysis ready for the mechanics engine
type Problem struct {
	Name string
	Case beam.LoadCase

	// DisplayLength is the unit positions are presented in, the one the
	// beam length was given in
	DisplayLength units.Length

	// Material is set when the modulus came from a preset
	Material string

	// Section is set when the inertia came from a cross-section
	Section *section.Properties

	// Warnings are advisory and do not block the analysis
	Warnings []string
}

// Beam returns the beam of the problem's load case
func (p Problem) Beam() beam.Spec {
	return p.Case.Beam()
}

// Resolve converts the raw input to SI and validates it. Nothing is
// returned on failure.
func (r Raw) Resolve() (Problem, error) {
	p := Problem{Name: r.Name, DisplayLength: r.LengthUnit}

	modulus, err := r.modulus(&p)
	if err != nil {
		return Problem{}, err
	}
	inertia, err := r.inertia(&p)
	if err != nil {
		return Problem{}, err
	}

	spec := beam.Spec{
		Length:  r.LengthUnit.ToSI(r.Length),
		Modulus: modulus,
		Inertia: inertia,
	}

	switch r.Load.Type {
	case PointLoad:
		load := beam.PointLoad{
			Magnitude: r.Load.MagnitudeUnit.ToSI(r.Load.Magnitude),
			Position:  r.positionUnit().ToSI(r.Load.Position),
		}
		c, err := beam.NewPointCase(spec, load)
		if err != nil {
			return Problem{}, err
		}
		p.Case = c
	case UDL:
		load := beam.UDLLoad{Intensity: r.Load.IntensityUnit.ToSI(r.Load.Intensity)}
		c, err := beam.NewUDLCase(spec, load)
		if err != nil {
			return Problem{}, err
		}
		p.Case = c
	default:
		return Problem{}, fmt.Errorf("%w: select point or udl", ErrUnknownLoadType)
	}

	p.Warnings = spec.Warnings()
	return p, nil
}

func (r Raw) positionUnit() units.Length {
	if r.Load.PositionUnit != nil {
		return *r.Load.PositionUnit
	}
	return r.LengthUnit
}

func (r Raw) modulus(p *Problem) (float64, error) {
	if r.Material == "" {
		return r.ModulusUnit.ToSI(r.Modulus), nil
	}
	if r.Modulus != 0 {
		return 0, fmt.Errorf("%w: give either a modulus or a material, not both", ErrConflict)
	}
	m, err := beam.LookupMaterial(r.Material)
	if err != nil {
		return 0, err
	}
	p.Material = m.Name
	return m.Modulus, nil
}

func (r Raw) inertia(p *Problem) (float64, error) {
	if r.Section == nil {
		return r.InertiaUnit.ToSI(r.Inertia), nil
	}
	if r.Inertia != 0 {
		return 0, fmt.Errorf("%w: give either an inertia or a section, not both", ErrConflict)
	}
	if err := r.Section.Validate(); err != nil {
		return 0, fmt.Errorf("section: %w", err)
	}
	p.Section = r.Section.CalculateProperties()
	return p.Section.InertiaSI(), nil
}

// LoadFile reads a JSON problem file. Unknown keys are rejected so that a
// misspelt field is not silently ignored.
func LoadFile(path string) (Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Raw{}, err
	}
	return Decode(data)
}

// Decode parses a JSON problem
func Decode(data []byte) (Raw, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var r Raw
	if err := dec.Decode(&r); err != nil {
		return Raw{}, fmt.Errorf("parse input: %w", err)
	}
	return r, nil
}
