// Package units normalizes user-facing unit tags to SI base units.
//
// Every unit family is a closed enumeration whose values carry their own
// conversion factor, so converting a value can never fail. Only parsing a
// text tag can fail, and that happens at the input boundary.
package units

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/unit"
)

// ErrUnknownUnit is returned when a text tag does not name a supported unit.
var ErrUnknownUnit = errors.New("unknown unit")

// entry describes one member of a unit family
type entry struct {
	tag     string   // canonical tag, used for display
	aliases []string // extra accepted spellings
	factor  float64  // multiply by this to get SI
}

func (e entry) matches(s string) bool {
	if strings.EqualFold(s, e.tag) {
		return true
	}
	for _, a := range e.aliases {
		if strings.EqualFold(s, a) {
			return true
		}
	}
	return false
}

func parse[T ~int](family, s string, table []entry) (T, error) {
	s = strings.TrimSpace(s)
	for i, e := range table {
		if e.matches(s) {
			return T(i), nil
		}
	}
	tags := make([]string, len(table))
	for i, e := range table {
		tags[i] = e.tag
	}
	return 0, fmt.Errorf("%w %q for %s (want one of %s)", ErrUnknownUnit, s, family, strings.Join(tags, ", "))
}

// Length is a length unit. The zero value is metres.
type Length int

const (
	Metre Length = iota
	Millimetre
	Centimetre
)

var lengthTable = []entry{
	Metre:      {tag: "m", aliases: []string{"meter", "metre"}, factor: float64(unit.Metre)},
	Millimetre: {tag: "mm", aliases: []string{"millimeter", "millimetre"}, factor: float64(unit.Milli * unit.Metre)},
	Centimetre: {tag: "cm", aliases: []string{"centimeter", "centimetre"}, factor: float64(unit.Centi * unit.Metre)},
}

// ParseLength parses a length tag such as "mm".
func ParseLength(s string) (Length, error) { return parse[Length]("length", s, lengthTable) }

// ToSI converts v expressed in u to metres.
func (u Length) ToSI(v float64) float64 { return v * lengthTable[u].factor }

// FromSI converts v metres to u.
func (u Length) FromSI(v float64) float64 { return v / lengthTable[u].factor }

func (u Length) String() string { return lengthTable[u].tag }

// Set implements pflag.Value.
func (u *Length) Set(s string) error {
	v, err := ParseLength(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Type implements pflag.Value.
func (u *Length) Type() string { return "length-unit" }

// UnmarshalText lets a Length be decoded from a JSON string.
func (u *Length) UnmarshalText(b []byte) error { return u.Set(string(b)) }

// Modulus is an elastic modulus unit. The zero value is gigapascals.
type Modulus int

const (
	Gigapascal Modulus = iota
	Megapascal
)

var modulusTable = []entry{
	Gigapascal: {tag: "GPa", factor: float64(unit.Giga * unit.Pascal)},
	Megapascal: {tag: "MPa", aliases: []string{"N/mm2", "N/mm^2"}, factor: float64(unit.Mega * unit.Pascal)},
}

// ParseModulus parses a modulus tag such as "GPa".
func ParseModulus(s string) (Modulus, error) { return parse[Modulus]("modulus", s, modulusTable) }

// ToSI converts v expressed in u to pascals.
func (u Modulus) ToSI(v float64) float64 { return v * modulusTable[u].factor }

// FromSI converts v pascals to u.
func (u Modulus) FromSI(v float64) float64 { return v / modulusTable[u].factor }

func (u Modulus) String() string { return modulusTable[u].tag }

func (u *Modulus) Set(s string) error {
	v, err := ParseModulus(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u *Modulus) Type() string { return "modulus-unit" }

func (u *Modulus) UnmarshalText(b []byte) error { return u.Set(string(b)) }

// Inertia is a second-moment-of-area unit. The zero value is mm⁴.
type Inertia int

const (
	Millimetre4 Inertia = iota
	Metre4
)

var inertiaTable = []entry{
	Millimetre4: {tag: "mm4", aliases: []string{"mm^4", "mm⁴"}, factor: unit.Milli * unit.Milli * unit.Milli * unit.Milli},
	Metre4:      {tag: "m4", aliases: []string{"m^4", "m⁴"}, factor: 1},
}

// ParseInertia parses an inertia tag such as "mm4".
func ParseInertia(s string) (Inertia, error) { return parse[Inertia]("inertia", s, inertiaTable) }

// ToSI converts v expressed in u to m⁴.
func (u Inertia) ToSI(v float64) float64 { return v * inertiaTable[u].factor }

// FromSI converts v m⁴ to u.
func (u Inertia) FromSI(v float64) float64 { return v / inertiaTable[u].factor }

func (u Inertia) String() string { return inertiaTable[u].tag }

func (u *Inertia) Set(s string) error {
	v, err := ParseInertia(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u *Inertia) Type() string { return "inertia-unit" }

func (u *Inertia) UnmarshalText(b []byte) error { return u.Set(string(b)) }

// Force is a concentrated load unit. The zero value is newtons.
type Force int

const (
	Newton Force = iota
	Kilonewton
)

var forceTable = []entry{
	Newton:     {tag: "N", factor: float64(unit.Newton)},
	Kilonewton: {tag: "kN", factor: float64(unit.Kilo * unit.Newton)},
}

// ParseForce parses a force tag such as "kN".
func ParseForce(s string) (Force, error) { return parse[Force]("force", s, forceTable) }

// ToSI converts v expressed in u to newtons.
func (u Force) ToSI(v float64) float64 { return v * forceTable[u].factor }

// FromSI converts v newtons to u.
func (u Force) FromSI(v float64) float64 { return v / forceTable[u].factor }

func (u Force) String() string { return forceTable[u].tag }

func (u *Force) Set(s string) error {
	v, err := ParseForce(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u *Force) Type() string { return "force-unit" }

func (u *Force) UnmarshalText(b []byte) error { return u.Set(string(b)) }

// LineLoad is a distributed load intensity unit. The zero value is N/m.
type LineLoad int

const (
	NewtonPerMetre LineLoad = iota
	KilonewtonPerMetre
)

var lineLoadTable = []entry{
	NewtonPerMetre:     {tag: "N/m", factor: float64(unit.Newton) / float64(unit.Metre)},
	KilonewtonPerMetre: {tag: "kN/m", aliases: []string{"N/mm"}, factor: float64(unit.Kilo*unit.Newton) / float64(unit.Metre)},
}

// ParseLineLoad parses an intensity tag such as "kN/m".
func ParseLineLoad(s string) (LineLoad, error) { return parse[LineLoad]("distributed load", s, lineLoadTable) }

// ToSI converts v expressed in u to N/m.
func (u LineLoad) ToSI(v float64) float64 { return v * lineLoadTable[u].factor }

// FromSI converts v N/m to u.
func (u LineLoad) FromSI(v float64) float64 { return v / lineLoadTable[u].factor }

func (u LineLoad) String() string { return lineLoadTable[u].tag }

func (u *LineLoad) Set(s string) error {
	v, err := ParseLineLoad(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u *LineLoad) Type() string { return "load-unit" }

func (u *LineLoad) UnmarshalText(b []byte) error { return u.Set(string(b)) }
