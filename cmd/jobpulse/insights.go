package main

import (
	"log/slog"
	"os"

	"github.com/amishk599/jobpulse/internal/config"
	"github.com/amishk599/jobpulse/internal/insights"
	"github.com/amishk599/jobpulse/internal/model"
	"github.com/amishk599/jobpulse/internal/report"
	"github.com/amishk599/jobpulse/internal/tui"
	"github.com/spf13/cobra"
)

var (
	insPlain   bool
	insNoTable bool
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show job market metrics and charts",
	Long: "Opens the insights dashboard: headline metrics, job counts by seniority, " +
		"employment type, function, industry, top companies and locations, and the raw table. " +
		"Press e in the dashboard to export the table as CSV.",
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().BoolVar(&insPlain, "plain", false, "print the dashboard instead of opening the TUI")
	insightsCmd.Flags().BoolVar(&insNoTable, "no-table", false, "omit the raw table from --plain output")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if !insPlain {
		return runInsightsTUI(cfg, logger)
	}

	table, err := loadTable(cmd.Context(), cfg.DataPath)
	if err != nil {
		logger.Error("failed to load job data", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}

	d, err := insights.Build(table, cfg.Insights.TopN)
	if err != nil {
		logger.Error("failed to build insights", "error", err)
		os.Exit(1)
	}

	var raw *model.Table
	if !insNoTable {
		raw = table
	}
	return report.PrintDashboard(cmd.OutOrStdout(), d, raw)
}

func runInsightsTUI(cfg *config.Config, logger *slog.Logger) error {
	table, err := loadTableWithSpinner(cfg.DataPath)
	if err != nil {
		logger.Error("failed to load job data", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}

	d, err := insights.Build(table, cfg.Insights.TopN)
	if err != nil {
		logger.Error("failed to build insights", "error", err)
		os.Exit(1)
	}
	return tui.RunInsightsTUI(table, d, cfg.Insights.ExportName)
}
