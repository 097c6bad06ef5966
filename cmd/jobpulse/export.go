package main

import (
	"os"

	"github.com/amishk599/jobpulse/internal/dataset"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the job table as CSV",
	Long:  "Writes the full job table in the input CSV layout. Use -o - for stdout.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file (default: insights.export_name from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	table, err := loadTable(cmd.Context(), cfg.DataPath)
	if err != nil {
		logger.Error("failed to load job data", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}

	out := exportOut
	if out == "" {
		out = cfg.Insights.ExportName
	}
	if out == "-" {
		return dataset.WriteCSV(cmd.OutOrStdout(), table)
	}

	if err := dataset.ExportFile(out, table); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	logger.Info("exported job data", "path", out, "rows", table.Len(), "columns", len(table.Columns))
	return nil
}
