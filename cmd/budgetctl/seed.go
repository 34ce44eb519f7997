package main

import (
	"fmt"

	"budgethero/internal/classification"
	"budgethero/internal/config"

	"github.com/spf13/cobra"
)

func init() {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the global recurring merchants from YAML",
		Long: `Creates or refreshes the shared recurring merchant records. Records are
matched on normalized name, so re-running the seed is safe.

The file defaults to RECURRENCE_SEED_FILE (db/seeds/recurring_merchants.yaml).`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}
	seedCmd.Flags().StringP("file", "f", "", "seed file (overrides RECURRENCE_SEED_FILE)")
	seedCmd.Flags().Bool("dry-run", false, "validate the file without writing")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg := config.Load()
	if path == "" {
		path = cfg.Recurrence.SeedFile
	}

	merchants, err := classification.LoadRecurringSeeds(path)
	if err != nil {
		return err
	}
	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%d merchants valid\n", len(merchants))
		return nil
	}

	env, err := openEnv(cfg)
	if err != nil {
		return err
	}

	created, updated, err := env.svc.Recurring.SeedGlobalMerchants(merchants)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %s: %d created, %d updated\n", path, created, updated)
	return nil
}
