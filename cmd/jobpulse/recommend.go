package main

import (
	"log/slog"
	"os"

	"github.com/amishk599/jobpulse/internal/config"
	"github.com/amishk599/jobpulse/internal/filter"
	"github.com/amishk599/jobpulse/internal/model"
	"github.com/amishk599/jobpulse/internal/recommend"
	"github.com/amishk599/jobpulse/internal/report"
	"github.com/amishk599/jobpulse/internal/tui"
	"github.com/spf13/cobra"
)

var (
	recSkills     string
	recLocation   string
	recFunction   string
	recPlain      bool
	recLogResults bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Find jobs matching your skills, location and job function",
	Long: "Opens the interactive recommendation form. With --plain, or when any of " +
		"--skills/--location/--function is given, prints the first matches and exits.",
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recSkills, "skills", "", "comma-separated skills, e.g. \"Python, React\"")
	recommendCmd.Flags().StringVar(&recLocation, "location", "", "preferred location (optional)")
	recommendCmd.Flags().StringVar(&recFunction, "function", "", "preferred job function (optional)")
	recommendCmd.Flags().BoolVar(&recPlain, "plain", false, "print results instead of opening the TUI")
	recommendCmd.Flags().BoolVar(&recLogResults, "log-results", false, "emit results as structured log lines (implies --plain)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	criteria := filter.Criteria{Skills: recSkills, Location: recLocation, Function: recFunction}
	if !recPlain && !recLogResults && criteria == (filter.Criteria{}) {
		return runRecommendTUI(cfg, logger)
	}

	table, err := loadTable(cmd.Context(), cfg.DataPath)
	if err != nil {
		logger.Error("failed to load job data", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}
	logger.Debug("job data loaded", "path", cfg.DataPath, "rows", table.Len(), "columns", len(table.Columns))

	var rep model.Reporter = report.NewTableReporter(cmd.OutOrStdout())
	if recLogResults {
		rep = report.NewLogReporter(logger)
	}

	r := recommend.NewRecommender(table, cfg.Recommend.Limit, rep, logger)
	if _, err := r.Recommend(cmd.Context(), criteria); err != nil {
		logger.Error("recommendation failed", "error", err)
		os.Exit(1)
	}
	return nil
}

func runRecommendTUI(cfg *config.Config, logger *slog.Logger) error {
	table, err := loadTableWithSpinner(cfg.DataPath)
	if err != nil {
		logger.Error("failed to load job data", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}

	r := recommend.NewRecommender(table, cfg.Recommend.Limit, report.NewNopReporter(), silentLogger())
	return tui.RunRecommendTUI(r)
}
