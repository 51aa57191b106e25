package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/bookshelf-server/database"
	"github.com/dtroode/bookshelf-server/internal/config"
	"github.com/dtroode/bookshelf-server/internal/storage/sqlite"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Apply pending schema migrations for the configured STORAGE_MODE.
Only the postgres and sqlite modes have a schema.`,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	switch cfg.Storage.Mode {
	case config.StorageModePostgres:
		cmd.Println("Running postgres migrations...")
		if err := database.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("failed to run postgres migrations: %w", err)
		}
	case config.StorageModeSQLite:
		cmd.Println("Running sqlite migrations...")
		db, err := sqlite.Open(ctx, cfg.Storage.FilePath)
		if err != nil {
			return fmt.Errorf("failed to run sqlite migrations: %w", err)
		}
		defer db.Close()
	default:
		cmd.Printf("Storage mode %q has no schema, nothing to migrate\n", cfg.Storage.Mode)
		return nil
	}

	cmd.Println("Migrations completed successfully")
	return nil
}
