package main

import (
	"fmt"
	"os"

	"github.com/matsen/conceptmap/internal/config"
	"github.com/matsen/conceptmap/internal/dataset"
	"github.com/matsen/conceptmap/internal/graph"
	"github.com/matsen/conceptmap/internal/viz"
	"github.com/spf13/cobra"
)

var renderData string
var renderYear int
var renderOutput string
var renderOffline bool
var renderExclude string

func init() {
	renderCmd.Flags().StringVar(&renderData, "data", "", "Path to the concept table (CSV or SQLite)")
	renderCmd.Flags().IntVar(&renderYear, "year", 0, "Year to render (default: configured default_year, else latest year in the data)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().BoolVar(&renderOffline, "offline", false, "Bundle vis-network inline for offline use")
	renderCmd.Flags().StringVar(&renderExclude, "exclude", "", "Drop primary records whose name contains this substring")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the concept graph for a year",
	Long: `Render an interactive HTML visualization of the concept graph
for one year of the table.

Primary nodes come from full records in the year's partition; their size
scales with works count against the global maximum across all years.
Related concepts that have no record of their own appear as small gray
satellite nodes.

Examples:
  # Render the latest year to stdout
  cmap render > graph.html

  # Render a specific year to a file
  cmap render --year 2020 --output graph.html

  # Suppress an overly connected hub node
  cmap render --exclude "Artificial Intelligence" -o graph.html

  # Generate offline-capable HTML
  cmap render --offline --output graph.html`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	table := mustLoadTable(renderData)

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	year := pickYear(renderYear, cfg.DefaultYear, table)
	minYear, maxYear := cfg.YearBounds()
	if err := validateYear(year, minYear, maxYear); err != nil {
		return err
	}

	opts := graph.DefaultOptions(year, table.MaxWorksCount())
	opts.ExcludeNameSubstring = renderExclude

	g, warnings := graph.Build(table.Records, opts)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}
	if g.IsEmpty() {
		fmt.Fprintf(os.Stderr, "no records for %d; writing empty-state page\n", year)
	}

	html, err := viz.GenerateHTML(g, viz.Options{
		Year:    year,
		Offline: renderOffline,
		Config:  viz.DefaultConfig(),
	})
	if err != nil {
		return fmt.Errorf("generating HTML: %w", err)
	}

	if renderOutput == "" {
		fmt.Print(html)
		return nil
	}

	if err := os.WriteFile(renderOutput, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if humanOutput {
		outputHuman("Visualization written to %s\n", renderOutput)
	} else {
		outputJSON(StatusResponse{Status: "written", Path: renderOutput})
	}
	return nil
}

// pickYear resolves the year to render: explicit flag, then configured
// default, then the latest year present in the data.
func pickYear(flagYear, configYear int, table *dataset.Table) int {
	if flagYear != 0 {
		return flagYear
	}
	if configYear != 0 {
		return configYear
	}
	if years := table.Years(); len(years) > 0 {
		return years[len(years)-1]
	}
	return 0
}

// validateYear checks the year against the configured selector bounds.
func validateYear(year, minYear, maxYear int) error {
	if year < minYear || year > maxYear {
		return fmt.Errorf("year %d is outside the supported range %d-%d", year, minYear, maxYear)
	}
	return nil
}
