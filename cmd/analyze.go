package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexiusacademia/ssbeam/internal/diagram"
	"github.com/alexiusacademia/ssbeam/internal/input"
	"github.com/alexiusacademia/ssbeam/internal/report"
	"github.com/alexiusacademia/ssbeam/internal/serviceability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a simply supported beam",
	Long: `Compute reactions, shear, moment and deflection of a simply
supported beam and check the deflection against L/250.

Subcommands:
  point  - Single concentrated load at a distance a from the left support
  udl    - Uniformly distributed load over the full span
  file   - Problem read from a JSON file

Units are chosen per quantity with the --*-unit flags. Results are
reported in N, Nm and m, with deflection also in mm.`,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// present prints the report for p and renders or exports its diagrams
func present(cmd *cobra.Command, p input.Problem, o *outputFlags) error {
	samples, dir, format, err := o.resolve()
	if err != nil {
		return err
	}

	spec := p.Beam()
	logger.Debug("resolved input",
		"case", p.Case.Name(),
		"length_m", spec.Length,
		"modulus_pa", spec.Modulus,
		"inertia_m4", spec.Inertia,
		"total_load_n", p.Case.TotalLoad(),
	)
	for _, w := range p.Warnings {
		logger.Warn(w, "inertia_m4", spec.Inertia)
	}

	check := report.Check(p)
	out := cmd.OutOrStdout()
	report.Write(out, p, check)

	if check.Status == serviceability.ExceedsLimit {
		logger.Warn("deflection exceeds serviceability limit",
			"deflection_mm", check.DeflectionMM,
			"limit_mm", check.LimitMM,
		)
	}

	if !o.diagram && dir == "" {
		return nil
	}

	ds := diagram.All(p.Case, samples, p.DisplayLength)
	logger.Debug("sampled diagrams", "count", len(ds), "samples", samples)

	if o.diagram {
		for _, d := range ds {
			fmt.Fprintln(out, diagram.Render(d, 0, 0))
		}
	}

	if dir != "" {
		prefix := strings.ReplaceAll(strings.ToLower(p.Case.Name()), " ", "-")
		files, err := diagram.ExportAll(ds, dir, prefix, format)
		if err != nil {
			return fmt.Errorf("export diagrams: %w", err)
		}
		for _, f := range files {
			logger.Info("diagram exported", "file", f)
			fmt.Fprintf(out, "  Diagram saved: %s\n", f)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func isImageFormat(f string) bool {
	return slices.Contains(diagram.Formats, f)
}
