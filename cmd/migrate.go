package main

import (
	"fmt"

	"developer-service/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the given number of migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(func(dsn string) error {
				return database.MigrateDown(dsn, steps)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(database.MigrateUp)
		},
	}

	cmd.AddCommand(up, down)
	return cmd
}

func runMigration(fn func(dsn string) error) error {
	cfg := loadConfig()

	if err := fn(database.DSN(cfg.DB)); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
