package cmd

import (
	"fmt"

	"github.com/alexiusacademia/ssbeam/internal/input"
	"github.com/spf13/cobra"
)

var (
	analyzeFile   string
	analyzeOutput outputFlags
)

var analyzeFileCmd = &cobra.Command{
	Use:   "file",
	Short: "Analyze a beam problem defined in a JSON file",
	Long: `Analyze a simply supported beam described in a JSON file.

Either "modulus" or "material" and either "inertia" or "section" must be
given. Unit fields default to m, GPa, mm4, N and N/m, except
"position_unit", which defaults to "length_unit".

Example JSON file structure:
{
  "name": "Floor joist J1",
  "length": 4000,
  "length_unit": "mm",
  "material": "steel",
  "inertia": 8e6,
  "inertia_unit": "mm4",
  "load": {
    "type": "point",
    "magnitude": 10,
    "magnitude_unit": "kN",
    "position": 1500,
    "position_unit": "mm"
  }
}

A cross-section may replace "inertia":
  "section": {"vertices": [{"x": 0, "y": 0}, {"x": 100, "y": 0},
                           {"x": 100, "y": 200}, {"x": 0, "y": 200}]}

Example:
  ssbeam analyze file -f joist.json --diagram`,
	RunE: runAnalyzeFile,
}

func init() {
	analyzeCmd.AddCommand(analyzeFileCmd)

	analyzeFileCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to problem JSON file [required]")
	analyzeOutput.register(analyzeFileCmd)

	analyzeFileCmd.MarkFlagRequired("file")
}

func runAnalyzeFile(cmd *cobra.Command, args []string) error {
	raw, err := input.LoadFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("load %s: %w", analyzeFile, err)
	}
	logger.Debug("problem file read", "file", analyzeFile, "load_type", raw.Load.Type)

	p, err := raw.Resolve()
	if err != nil {
		return fmt.Errorf("%s: %w", analyzeFile, err)
	}
	return present(cmd, p, &analyzeOutput)
}
