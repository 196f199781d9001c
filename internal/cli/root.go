// Package cli implements the runcalc command-line interface using Cobra.
// Each calculator mode has a subcommand; with no subcommand the terminal UI starts.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "runcalc",
	Short: "runcalc - pace, race time and VDOT calculator",
	Long: `runcalc relates running pace, finish time and fitness (VDOT).

Run without a subcommand to open the interactive calculator, or use
times, pace and vdot for one-off calculations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
