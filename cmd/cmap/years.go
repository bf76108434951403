package main

import (
	"github.com/spf13/cobra"
)

var yearsData string

func init() {
	yearsCmd.Flags().StringVar(&yearsData, "data", "", "Path to the concept table (CSV or SQLite)")
	rootCmd.AddCommand(yearsCmd)
}

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List the years present in the data",
	Long: `List the distinct years in the concept table with record counts.

Examples:
  cmap years
  cmap years --human`,
	RunE: runYears,
}

func runYears(cmd *cobra.Command, args []string) error {
	table := mustLoadTable(yearsData)

	counts := table.YearCounts()
	summaries := make([]YearSummary, 0, len(counts))
	for _, y := range table.Years() {
		summaries = append(summaries, YearSummary{Year: y, Records: counts[y]})
	}

	if humanOutput {
		for _, s := range summaries {
			outputHuman("%d  %d records\n", s.Year, s.Records)
		}
		return nil
	}
	return outputJSON(summaries)
}
