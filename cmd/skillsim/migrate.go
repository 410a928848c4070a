package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/udisondev/skillgrowth/internal/db"
)

func migrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := a.cfg.Database.DSN()
			if err := db.RunMigrations(cmd.Context(), dsn); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			v, err := db.MigrationVersion(cmd.Context(), dsn)
			if err != nil {
				return err
			}
			slog.Info("database migrations applied", "version", v)
			return nil
		},
	}
}
