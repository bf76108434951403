// Package main provides the cmap CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/conceptmap/internal/config"
	"github.com/matsen/conceptmap/internal/dataset"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cmap",
	Short: "Yearly AI concept graph visualization CLI",
	Long: `cmap renders yearly AI-concept statistics as an interactive graph.

It loads a table of concept records (CSV or SQLite snapshot), builds a
node/edge graph for a selected year, and writes a self-contained HTML
page driven by a force-layout widget. Node sizes are normalized against
the global maximum works count so they stay comparable across years.

All commands output JSON by default for scripting; pass --human for
readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// resolveDataPath returns the data file path from flag, environment, or
// global config, in that order of precedence.
func resolveDataPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	_ = godotenv.Load()
	if env := os.Getenv("CONCEPTMAP_DATA"); env != "" {
		return env, nil
	}

	if path := config.GetDataPath(); path != "" {
		return path, nil
	}

	return "", errors.New("no data file configured")
}

// mustLoadTable resolves the data path and loads the table, exits on error.
func mustLoadTable(flagValue string) *dataset.Table {
	path, err := resolveDataPath(flagValue)
	if err != nil {
		fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
		os.Exit(ExitConfigError)
	}

	table, err := dataset.Load(path)
	if err != nil {
		if errors.Is(err, dataset.ErrSourceUnavailable) {
			exitWithError(ExitConfigError, "data file not found: %s\n\nCheck the path, or run 'cmap config set data_path PATH'.", path)
		}
		exitWithError(ExitError, "loading data: %v", err)
	}
	return table
}
