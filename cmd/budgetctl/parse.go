package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"budgethero/internal/importer"

	"github.com/spf13/cobra"
)

type parseFunc func(r io.Reader, opts ...importer.Option) (*importer.ParseResult, error)

func init() {
	parseCSVCmd := &cobra.Command{
		Use:   "parse-csv <file>",
		Short: "Parse a bank CSV export and print the rows it yields",
		Long: `Runs the CSV importer without touching the database. Skipped rows are
listed with their line number and reason.

Examples:
  budgetctl parse-csv ~/Downloads/checking.csv
  budgetctl parse-csv statement.csv --max-rows 500 --summary`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], importer.ParseCSV)
		},
	}

	parseOFXCmd := &cobra.Command{
		Use:   "parse-ofx <file>",
		Short: "Parse an OFX or QFX statement and print the rows it yields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], importer.ParseOFX)
		},
	}

	for _, c := range []*cobra.Command{parseCSVCmd, parseOFXCmd} {
		c.Flags().Int("max-rows", 0, "maximum number of data rows (0 for no limit)")
		c.Flags().Bool("summary", false, "print counts only")
		rootCmd.AddCommand(c)
	}
}

func runParse(cmd *cobra.Command, path string, parse parseFunc) error {
	maxRows, _ := cmd.Flags().GetInt("max-rows")
	summary, _ := cmd.Flags().GetBool("summary")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	result, err := parse(f, importer.WithMaxRows(maxRows))
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	if summary {
		fmt.Fprintf(out, "rows:     %d\n", result.TotalRows)
		fmt.Fprintf(out, "parsed:   %d\n", len(result.Transactions))
		fmt.Fprintf(out, "skipped:  %d\n", len(result.Skipped))
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
