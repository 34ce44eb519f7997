package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"budgethero/internal/app"
	"budgethero/internal/classification"
	"budgethero/internal/config"

	"github.com/spf13/cobra"
)

func init() {
	classifyCmd := &cobra.Command{
		Use:   "classify <description>",
		Short: "Classify a transaction description with the configured rules",
		Long: `Runs the category classifier offline, without user overrides.

Examples:
  budgetctl classify "STARBUCKS STORE 1234"
  budgetctl classify "POS 4411 AMZN MKTP" --merchant Amazon
  budgetctl classify "UBER TRIP" --rules ./rules.yaml --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}
	classifyCmd.Flags().StringP("merchant", "m", "", "merchant name")
	classifyCmd.Flags().String("rules", "", "rule file (overrides CLASSIFIER_RULES_FILE)")
	classifyCmd.Flags().Bool("json", false, "print the result as JSON")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	merchant, _ := cmd.Flags().GetString("merchant")
	rules, _ := cmd.Flags().GetString("rules")
	asJSON, _ := cmd.Flags().GetBool("json")

	if rules == "" {
		rules = os.Getenv("CLASSIFIER_RULES_FILE")
	}
	classifier, err := app.LoadClassifier(config.ClassifierConfig{RulesFile: rules})
	if err != nil {
		return err
	}

	description := strings.Join(args, " ")
	result := classifier.Classify(description, merchant)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(out, "category:    %s\n", result.Category)
	fmt.Fprintf(out, "confidence:  %.2f\n", result.Confidence)
	fmt.Fprintf(out, "source:      %s\n", result.Source)
	if result.MatchedPattern != "" {
		fmt.Fprintf(out, "pattern:     %s\n", result.MatchedPattern)
	}
	if classification.NeedsUserReview(result.Confidence, 0, "") {
		fmt.Fprintln(out, "review:      yes")
	}
	return nil
}
