package beam

import (
	"fmt"
	"sort"
	"strings"
)

// Typical moduli of elasticity for common structural materials (MPa)
const (
	Es = 200000.0 // Structural steel
	Ec = 30000.0  // Normal-weight concrete, f'c ≈ 40 MPa
	Et = 11000.0  // Structural timber, parallel to grain
	Ea = 69000.0  // Aluminium alloy
)

// Material is a named modulus preset
type Material struct {
	Name    string
	Modulus float64 // Pa
}

var materials = map[string]Material{
	"steel":     {Name: "Steel", Modulus: Es * 1e6},
	"concrete":  {Name: "Concrete", Modulus: Ec * 1e6},
	"timber":    {Name: "Timber", Modulus: Et * 1e6},
	"aluminium": {Name: "Aluminium", Modulus: Ea * 1e6},
}

// LookupMaterial finds a preset by name (case-insensitive). "aluminum" is
// accepted as well.
func LookupMaterial(name string) (Material, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "aluminum" {
		key = "aluminium"
	}
	m, ok := materials[key]
	if !ok {
		return Material{}, fmt.Errorf("unknown material %q (want one of %s)", name, strings.Join(MaterialNames(), ", "))
	}
	return m, nil
}

// MaterialNames lists the preset keys in alphabetical order
func MaterialNames() []string {
	names := make([]string, 0, len(materials))
	for k := range materials {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
