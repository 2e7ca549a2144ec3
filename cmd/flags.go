package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/ssbeam/internal/beam"
	"github.com/alexiusacademia/ssbeam/internal/input"
	"github.com/alexiusacademia/ssbeam/internal/section"
	"github.com/alexiusacademia/ssbeam/internal/units"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*units.Length)(nil)
	_ pflag.Value = (*units.Modulus)(nil)
	_ pflag.Value = (*units.Inertia)(nil)
	_ pflag.Value = (*units.Force)(nil)
	_ pflag.Value = (*units.LineLoad)(nil)
)

// beamFlags are the span, stiffness and section inputs shared by the
// point and udl commands
type beamFlags struct {
	name string

	length     float64
	lengthUnit units.Length

	modulus     float64
	modulusUnit units.Modulus
	material    string

	inertia     float64
	inertiaUnit units.Inertia
	sectionFile string
}

func (b *beamFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()

	// Geometry
	fs.Float64VarP(&b.length, "length", "L", 0, "Beam span [required]")
	fs.Var(&b.lengthUnit, "length-unit", "Span unit: m, mm, cm")

	// Stiffness
	fs.Float64VarP(&b.modulus, "modulus", "E", 0, "Young's modulus E")
	fs.Var(&b.modulusUnit, "modulus-unit", "Modulus unit: GPa, MPa")
	fs.StringVarP(&b.material, "material", "m", "", "Material preset instead of --modulus: "+strings.Join(beam.MaterialNames(), ", "))
	fs.Float64VarP(&b.inertia, "inertia", "I", 0, "Second moment of area I")
	fs.Var(&b.inertiaUnit, "inertia-unit", "Inertia unit: mm4, m4")
	fs.StringVar(&b.sectionFile, "section", "", "Cross-section JSON file instead of --inertia")

	fs.StringVar(&b.name, "name", "", "Title shown in the report")

	cmd.MarkFlagRequired("length")
	cmd.MarkFlagsOneRequired("modulus", "material")
	cmd.MarkFlagsMutuallyExclusive("modulus", "material")
	cmd.MarkFlagsOneRequired("inertia", "section")
	cmd.MarkFlagsMutuallyExclusive("inertia", "section")
}

// raw collects the flag values into an unvalidated problem
func (b *beamFlags) raw() (input.Raw, error) {
	r := input.Raw{
		Name:        b.name,
		Length:      b.length,
		LengthUnit:  b.lengthUnit,
		Modulus:     b.modulus,
		ModulusUnit: b.modulusUnit,
		Material:    b.material,
		Inertia:     b.inertia,
		InertiaUnit: b.inertiaUnit,
	}
	if b.sectionFile != "" {
		s, err := section.LoadFromFile(b.sectionFile)
		if err != nil {
			return input.Raw{}, fmt.Errorf("load section: %w", err)
		}
		r.Section = s
	}
	return r, nil
}

// outputFlags control diagrams and image export. Zero values fall back
// to the configuration.
type outputFlags struct {
	diagram bool
	dir     string
	format  string
	samples int
}

func (o *outputFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVar(&o.diagram, "diagram", false, "Show ASCII shear, moment and deflection diagrams")
	fs.StringVarP(&o.dir, "output", "o", "", "Export diagrams as images into this directory")
	fs.StringVar(&o.format, "format", "", "Image format: png, svg, pdf (default from config)")
	fs.IntVar(&o.samples, "samples", 0, "Points per diagram (default from config)")
}

// resolve merges the flags over cfg
func (o *outputFlags) resolve() (samples int, dir, format string, err error) {
	samples, dir, format = cfg.Samples, cfg.OutputDir, cfg.PlotFormat
	if o.samples != 0 {
		if o.samples < 2 {
			return 0, "", "", fmt.Errorf("--samples must be at least 2, got %d", o.samples)
		}
		samples = o.samples
	}
	if o.dir != "" {
		dir = o.dir
	}
	if o.format != "" {
		format = strings.ToLower(o.format)
		if !isImageFormat(format) {
			return 0, "", "", fmt.Errorf("--format: unsupported image format %q", o.format)
		}
	}
	return samples, dir, format, nil
}
