package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"brec/internal/diagfmt"
	"brec/internal/driver"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] fixture.brec.toml",
	Short: "Decorate one descriptor fixture",
	Long:  `Highlight computes syntax coloring for every field in a descriptor fixture and renders the decorated source`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	highlightCmd.Flags().Uint16("width", 0, "maximum rendered line width (0 = unlimited)")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	fixturePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	width, err := cmd.Flags().GetUint16("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	result, err := driver.DecorateFile(fixturePath, driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Timings:        timings,
	})
	if err != nil {
		return fmt.Errorf("decoration failed: %w", err)
	}

	// Diagnostics go to stderr so piped output stays clean
	if result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{
			Color:        useColor(cmd, os.Stderr),
			Context:      2,
			ShowSnippets: true,
			ShowNotes:    true,
		}
		if result.FileSet != nil {
			if err := diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts); err != nil {
				return err
			}
		} else {
			for _, d := range result.Bag.Items() {
				fmt.Fprintf(os.Stderr, "%s [%s]: %s\n", d.Severity, d.Code.ID(), d.Message)
			}
		}
	}

	if timings && result.Timing != nil {
		printTimings(os.Stderr, result)
	}

	if result.FileSet == nil {
		return fmt.Errorf("no decoration produced for %s", fixturePath)
	}

	switch format {
	case "pretty":
		return renderHighlightPretty(cmd, result, width)
	case "json":
		return renderHighlightJSON(result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderHighlightPretty(cmd *cobra.Command, result *driver.Result, width uint16) error {
	opts := diagfmt.PrettyOpts{
		Color: useColor(cmd, os.Stdout),
		Width: width,
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	for _, fr := range result.Fields {
		if !quiet {
			if _, err := fmt.Fprintf(os.Stdout, "field %s:\n", fr.Name); err != nil {
				return err
			}
		}
		if err := diagfmt.Snippet(os.Stdout, result.FileSet, result.FileID, fr.Syntax, opts); err != nil {
			return err
		}
	}
	return nil
}

func renderHighlightJSON(result *driver.Result) error {
	output := diagfmt.SyntaxOutput{File: result.SourcePath}
	for _, fr := range result.Fields {
		output.Fields = append(output.Fields, diagfmt.BuildFieldSyntax(fr.Name, fr.Syntax))
	}
	return diagfmt.SyntaxJSON(os.Stdout, output)
}

func printTimings(w *os.File, result *driver.Result) {
	fmt.Fprintf(w, "%s:\n", result.FixturePath)
	for _, p := range result.Timing.Phases {
		fmt.Fprintf(w, "  %-10s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(w, "  // %s", p.Note)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  %-10s %7.2f ms\n", "total", result.Timing.TotalMS)
}
