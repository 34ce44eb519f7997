package main

import (
	"fmt"
	"time"

	"budgethero/internal/config"

	"github.com/spf13/cobra"
)

const defaultAuditRetention = 90 * 24 * time.Hour

func init() {
	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "Maintain the correction and import audit trail",
	}

	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete audit entries older than the retention window",
		Long: `Deletes audit entries created before now minus --older-than.
Durations use Go syntax, for example 720h for thirty days.`,
		Args: cobra.NoArgs,
		RunE: runAuditPrune,
	}
	pruneCmd.Flags().Duration("older-than", defaultAuditRetention, "retention window")

	auditCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(auditCmd)
}

func runAuditPrune(cmd *cobra.Command, _ []string) error {
	retention, err := cmd.Flags().GetDuration("older-than")
	if err != nil {
		return err
	}
	if retention <= 0 {
		return fmt.Errorf("--older-than must be positive, got %s", retention)
	}

	env, err := openEnv(config.Load())
	if err != nil {
		return err
	}

	deleted, err := env.svc.Audit.PruneOlderThan(retention)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "pruned %d audit entries older than %s\n", deleted, retention)
	return nil
}
