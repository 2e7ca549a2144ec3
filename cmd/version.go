package cmd

import (
	"fmt"

	"github.com/alexiusacademia/ssbeam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ssbeam",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.Info())
		fmt.Fprintln(out, "Simply Supported Beam Analysis Tool")
		fmt.Fprintln(out, "Elastic (Euler-Bernoulli) beam theory, L/250 serviceability check")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
