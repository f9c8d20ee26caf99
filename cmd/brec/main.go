package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"brec/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "brec",
	Short:         "Binary record descriptor decoration toolchain",
	Long:          `brec decorates binary record field descriptors with syntax highlighting for error backtraces`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	// Version for the automatic --version flag
	rootCmd.Version = version.Version

	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(decorateCmd)
	rootCmd.AddCommand(versionCmd)

	// Global flags
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the stream it applies to.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
