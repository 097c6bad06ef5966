package main

import (
	"context"
	"os"

	"github.com/amishk599/jobpulse/internal/model"
	"github.com/amishk599/jobpulse/internal/store"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [db-path]",
	Short: "Copy the job data into a SQLite snapshot",
	Long: "Loads the job data and stores it in a SQLite file (default jobs.db). " +
		"Pass the snapshot back with --data jobs.db to load from it.",
	Args: cobra.MaximumNArgs(1),
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dbPath := "jobs.db"
	if len(args) == 1 {
		dbPath = args[0]
	}

	table, err := loadTable(cmd.Context(), cfg.DataPath)
	if err != nil {
		logger.Error("failed to load job data", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}

	if err := writeSnapshot(cmd.Context(), table, dbPath); err != nil {
		logger.Error("snapshot failed", "path", dbPath, "error", err)
		os.Exit(1)
	}
	logger.Info("snapshot written", "path", dbPath, "rows", table.Len(), "columns", len(table.Columns))
	return nil
}

// writeSnapshot replaces the snapshot stored at dbPath with table.
func writeSnapshot(ctx context.Context, table *model.Table, dbPath string) error {
	sqlStore, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	defer sqlStore.Close()

	return sqlStore.SaveTable(ctx, table)
}
