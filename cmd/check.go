package cmd

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/ssbeam/internal/report"
	"github.com/alexiusacademia/ssbeam/internal/serviceability"
	"github.com/alexiusacademia/ssbeam/internal/units"
	"github.com/spf13/cobra"
)

var (
	checkDeflection float64
	checkSpan       float64
	checkSpanUnit   = units.Millimetre
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a known deflection against the L/250 limit",
	Long: `Classify a deflection computed elsewhere against the L/250
serviceability limit.

Deflections below 0.001 mm are reported as negligible. A deflection
above the limit is a warning, not an error.

Examples:
  # 25 mm on a 5 m span
  ssbeam check --deflection 25 --span 5000

  # Span in metres
  ssbeam check -d 12 -s 6 --span-unit m`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Float64VarP(&checkDeflection, "deflection", "d", 0, "Deflection (mm) [required]")
	checkCmd.Flags().Float64VarP(&checkSpan, "span", "s", 0, "Beam span [required]")
	checkCmd.Flags().Var(&checkSpanUnit, "span-unit", "Span unit: m, mm, cm")

	checkCmd.MarkFlagRequired("deflection")
	checkCmd.MarkFlagRequired("span")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if !(checkSpan > 0) || math.IsInf(checkSpan, 0) {
		return fmt.Errorf("span must be a positive finite number, got %g", checkSpan)
	}
	if math.IsNaN(checkDeflection) || math.IsInf(checkDeflection, 0) {
		return fmt.Errorf("deflection must be finite, got %g", checkDeflection)
	}

	spanMM := units.Millimetre.FromSI(checkSpanUnit.ToSI(checkSpan))
	result := serviceability.Check(checkDeflection, spanMM)
	logger.Debug("serviceability check",
		"deflection_mm", checkDeflection,
		"span_mm", spanMM,
		"status", result.Status,
	)

	report.WriteCheck(cmd.OutOrStdout(), result, spanMM)
	return nil
}
