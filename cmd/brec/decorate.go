package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"brec/internal/diagfmt"
	"brec/internal/driver"
	"brec/internal/ui"
)

var decorateCmd = &cobra.Command{
	Use:   "decorate [flags] dir",
	Short: "Decorate every descriptor fixture under a directory",
	Long:  `Decorate walks a directory for *.brec.toml fixtures and computes syntax coloring for all of them in parallel`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDecorate,
}

func init() {
	decorateCmd.Flags().Int("jobs", 0, "worker parallelism (0 = number of CPUs)")
	decorateCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	decorateCmd.Flags().Bool("cache", false, "reuse results for unchanged fixtures")
	decorateCmd.Flags().String("cache-dir", "", "cache directory (default: XDG cache)")
	decorateCmd.Flags().Bool("drop-cache", false, "wipe the cache before running")
	decorateCmd.Flags().Bool("ui", false, "show interactive progress (requires a terminal)")
}

func runDecorate(cmd *cobra.Command, args []string) error {
	dir := args[0]

	jobs, _ := cmd.Flags().GetInt("jobs")
	format, _ := cmd.Flags().GetString("format")
	useCache, _ := cmd.Flags().GetBool("cache")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	dropCache, _ := cmd.Flags().GetBool("drop-cache")
	showUI, _ := cmd.Flags().GetBool("ui")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	var cache *driver.DiskCache
	if useCache || dropCache {
		var err error
		if cacheDir != "" {
			cache, err = driver.OpenDiskCacheAt(cacheDir)
		} else {
			cache, err = driver.OpenDiskCache("brec")
		}
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}
	if dropCache {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop cache: %w", err)
		}
		if !useCache {
			cache = nil
		}
	}

	opts := driver.DirOptions{
		Options: driver.Options{
			MaxDiagnostics: maxDiagnostics,
			Cache:          cache,
			Timings:        timings,
		},
		Jobs: jobs,
	}

	var results []*driver.Result
	var err error
	if showUI && isTerminal(os.Stdout) {
		results, err = runDecorateWithUI(cmd, dir, opts)
	} else {
		results, err = driver.DecorateDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return fmt.Errorf("decoration failed: %w", err)
	}
	if results == nil {
		if !quiet {
			fmt.Fprintf(os.Stderr, "no %s fixtures under %s\n", driver.FixtureSuffix, dir)
		}
		return nil
	}

	failed := 0
	for _, res := range results {
		if res.Bag.HasWarnings() && res.FileSet != nil {
			popts := diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				Context:   2,
				ShowNotes: true,
			}
			if err := diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, popts); err != nil {
				return err
			}
		}
		if res.Bag.HasErrors() {
			failed++
		}
		if timings && res.Timing != nil {
			printTimings(os.Stderr, res)
		}
	}

	switch format {
	case "pretty":
		if err := renderDecoratePretty(cmd, results, quiet); err != nil {
			return err
		}
	case "json":
		if err := renderDecorateJSON(results); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fixtures had problems", failed, len(results))
	}
	return nil
}

// runDecorateWithUI drives the batch behind a live progress display.
func runDecorateWithUI(cmd *cobra.Command, dir string, opts driver.DirOptions) ([]*driver.Result, error) {
	fixtures, err := driver.ListFixtures(dir)
	if err != nil {
		return nil, err
	}
	if len(fixtures) == 0 {
		return nil, nil
	}

	events := make(chan driver.Event, len(fixtures))
	opts.Events = events

	type outcome struct {
		results []*driver.Result
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		results, err := driver.DecorateDir(cmd.Context(), dir, opts)
		close(events)
		done <- outcome{results, err}
	}()

	model := ui.NewProgressModel("decorating "+dir, fixtures, events)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return nil, err
	}

	out := <-done
	return out.results, out.err
}

func renderDecoratePretty(cmd *cobra.Command, results []*driver.Result, quiet bool) error {
	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
	for _, res := range results {
		if res.FileSet == nil {
			continue
		}
		if !quiet {
			if _, err := fmt.Fprintf(os.Stdout, "%s:\n", res.SourcePath); err != nil {
				return err
			}
		}
		for _, fr := range res.Fields {
			if !quiet {
				if _, err := fmt.Fprintf(os.Stdout, "field %s:\n", fr.Name); err != nil {
					return err
				}
			}
			if err := diagfmt.Snippet(os.Stdout, res.FileSet, res.FileID, fr.Syntax, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderDecorateJSON(results []*driver.Result) error {
	outputs := make([]diagfmt.SyntaxOutput, 0, len(results))
	for _, res := range results {
		output := diagfmt.SyntaxOutput{File: res.SourcePath}
		for _, fr := range res.Fields {
			output.Fields = append(output.Fields, diagfmt.BuildFieldSyntax(fr.Name, fr.Syntax))
		}
		outputs = append(outputs, output)
	}
	return diagfmt.SyntaxJSONList(os.Stdout, outputs)
}
