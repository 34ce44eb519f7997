package main

import (
	"database/sql"
	"fmt"
	"strconv"

	"budgethero/internal/config"
	"budgethero/internal/database"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func init() {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back SQL migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withRunner(func(cmd *cobra.Command, runner *database.MigrationRunner, _ []string) error {
			if err := runner.Up(); err != nil {
				return err
			}
			return printVersion(cmd, runner)
		}),
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: withRunner(func(cmd *cobra.Command, runner *database.MigrationRunner, _ []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			if err := runner.Down(steps); err != nil {
				return err
			}
			return printVersion(cmd, runner)
		}),
	}
	downCmd.Flags().Int("steps", 1, "number of migrations to roll back")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the applied migration version",
		Args:  cobra.NoArgs,
		RunE: withRunner(func(cmd *cobra.Command, runner *database.MigrationRunner, _ []string) error {
			return printVersion(cmd, runner)
		}),
	}

	forceCmd := &cobra.Command{
		Use:   "force <version>",
		Short: "Record a version without running migrations, clearing a dirty state",
		Args:  cobra.ExactArgs(1),
		RunE: withRunner(func(cmd *cobra.Command, runner *database.MigrationRunner, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			if err := runner.Force(version); err != nil {
				return err
			}
			return printVersion(cmd, runner)
		}),
	}

	migrateCmd.AddCommand(upCmd, downCmd, versionCmd, forceCmd)
	rootCmd.AddCommand(migrateCmd)
}

type runnerFunc func(cmd *cobra.Command, runner *database.MigrationRunner, args []string) error

// withRunner opens a plain database/sql connection through lib/pq, waits for
// the server and hands a migration runner to fn
func withRunner(fn runnerFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		runner := database.NewMigrationRunner(db, cfg.Database.MigrationsPath)
		if err := runner.WaitForDatabase(cmd.Context()); err != nil {
			return err
		}
		return fn(cmd, runner, args)
	}
}

func printVersion(cmd *cobra.Command, runner *database.MigrationRunner) error {
	version, dirty, err := runner.Version()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "version: %d dirty: %t\n", version, dirty)
	return nil
}
