package cmd

import (
	"github.com/alexiusacademia/ssbeam/internal/input"
	"github.com/alexiusacademia/ssbeam/internal/units"
	"github.com/spf13/cobra"
)

var (
	udlBeam   beamFlags
	udlOutput outputFlags

	udlIntensity     float64
	udlIntensityUnit units.LineLoad
)

var analyzeUDLCmd = &cobra.Command{
	Use:   "udl",
	Short: "Analyze a beam under a uniformly distributed load",
	Long: `Analyze a simply supported beam carrying a uniformly distributed
load w over the full span.

Maximum deflection 5·w·L⁴/(384·E·I) occurs at midspan.

Examples:
  # 6 m timber joist, I = 5e7 mm⁴, 2 kN/m
  ssbeam analyze udl --length 6 --material timber --inertia 5e7 --intensity 2 --intensity-unit kN/m

  # Modulus in MPa, inertia in m⁴, with diagrams
  ssbeam analyze udl -L 5 -E 200000 --modulus-unit MPa -I 8e-6 --inertia-unit m4 -w 5000 --diagram`,
	RunE: runAnalyzeUDL,
}

func init() {
	analyzeCmd.AddCommand(analyzeUDLCmd)

	udlBeam.register(analyzeUDLCmd)

	analyzeUDLCmd.Flags().Float64VarP(&udlIntensity, "intensity", "w", 0, "Load per unit length, positive downward [required]")
	analyzeUDLCmd.Flags().Var(&udlIntensityUnit, "intensity-unit", "Intensity unit: N/m, kN/m")

	udlOutput.register(analyzeUDLCmd)

	analyzeUDLCmd.MarkFlagRequired("intensity")
}

func runAnalyzeUDL(cmd *cobra.Command, args []string) error {
	raw, err := udlBeam.raw()
	if err != nil {
		return err
	}
	raw.Load = input.Load{
		Type:          input.UDL,
		Intensity:     udlIntensity,
		IntensityUnit: udlIntensityUnit,
	}

	p, err := raw.Resolve()
	if err != nil {
		return err
	}
	return present(cmd, p, &udlOutput)
}
