package main

import (
	"os"

	"github.com/spf13/cobra"
)

var checkData string

func init() {
	checkCmd.Flags().StringVar(&checkData, "data", "", "Path to the concept table (CSV or SQLite)")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report data-quality problems in the concept table",
	Long: `Load the concept table and report rows or related-concept entries
that were skipped as malformed. Skipped entries never fail a render;
this command surfaces them so the source data can be fixed.

Exits with a data error code when any problems exist.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	table := mustLoadTable(checkData)

	warnings := table.Warnings()
	messages := make([]string, 0, len(warnings))
	for _, w := range warnings {
		messages = append(messages, w.Error())
	}

	response := CheckResponse{
		Records:  len(table.Records),
		Years:    len(table.Years()),
		Warnings: messages,
	}

	if humanOutput {
		outputHuman("%d records across %d years\n", response.Records, response.Years)
		for _, m := range messages {
			outputHuman("  warning: %s\n", m)
		}
		if len(messages) == 0 {
			outputHuman("no data-quality problems found\n")
		}
	} else {
		if err := outputJSON(response); err != nil {
			return err
		}
	}

	if len(warnings) > 0 {
		os.Exit(ExitDataError)
	}
	return nil
}
