package main

import (
	"errors"

	"budgethero/internal/app"
	"budgethero/internal/config"
	"budgethero/internal/events"

	"github.com/spf13/cobra"
)

func init() {
	workerCmd := &cobra.Command{
		Use:   "worker",
		Short: "Consume import.completed events and run recurring detection",
		Long: `Connects to the AMQP broker and, for every completed import, runs
recurring merchant auto-detection over the user's history. When new
merchants are found the imported batch is reclassified.

Requires AMQP_ENABLED=true and a reachable database.`,
		Args: cobra.NoArgs,
		RunE: runWorker,
	}
	workerCmd.Flags().Int("lookback-days", app.DefaultFollowUpLookbackDays, "history scanned by auto-detection")

	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, _ []string) error {
	lookback, _ := cmd.Flags().GetInt("lookback-days")

	cfg := config.Load()
	if !cfg.AMQP.Enabled {
		return errors.New("AMQP is disabled; set AMQP_ENABLED=true")
	}

	e, err := openEnv(cfg)
	if err != nil {
		return err
	}

	client, err := events.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue, e.logger)
	if err != nil {
		return err
	}
	defer client.Close()

	e.logger.Info("worker started", "queue", cfg.AMQP.Queue, "lookback_days", lookback)

	err = client.ConsumeImportCompleted(cmd.Context(), app.ImportFollowUp(e.svc, lookback, e.logger))
	if cmd.Context().Err() != nil {
		e.logger.Info("worker stopped")
		return nil
	}
	return err
}
