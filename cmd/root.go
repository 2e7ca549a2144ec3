package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/ssbeam/internal/config"
	"github.com/alexiusacademia/ssbeam/internal/logging"
	"github.com/alexiusacademia/ssbeam/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	envFile  string
	logLevel string
	noColor  bool

	// Resolved before any subcommand runs
	cfg    = config.Default()
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "ssbeam",
	Short: "Simply Supported Beam Analysis Tool",
	Long: `ssbeam - Simply Supported Beam Analyzer

A CLI tool for the elastic analysis of simply supported beams
under a single point load or a full-span uniformly distributed load.

This tool computes:
  - Support reactions
  - Shear force and bending moment diagrams
  - Elastic deflection curve and maximum deflection
  - Serviceability check against the L/250 limit
  - Second moment of area of polygonal cross-sections

Inputs may be given in mixed units; results are reported in SI.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   ssbeam v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Simply Supported Beam Analyzer                          ║")
		fmt.Fprintf(out, "  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for the elastic analysis of simply supported beams.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Point load and uniformly distributed load cases")
		fmt.Fprintln(out, "    • Reactions, shear, moment and deflection")
		fmt.Fprintln(out, "    • L/250 serviceability check")
		fmt.Fprintln(out, "    • Terminal diagrams and PNG/SVG/PDF export")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'ssbeam --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Read default settings from this .env file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default warn)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log output")
}

// setup resolves configuration and the logger. Flags win over the
// environment, which wins over the .env file.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		level, err := config.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		c.LogLevel = level
	}
	if noColor {
		c.NoColor = true
	}

	cfg = c
	logger = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.NoColor)
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		"env_file", envFile,
		"samples", cfg.Samples,
		"plot_format", cfg.PlotFormat,
		"output_dir", cfg.OutputDir,
	)
	return nil
}
