package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/amishk599/jobpulse/internal/config"
	"github.com/amishk599/jobpulse/internal/dataset"
	"github.com/amishk599/jobpulse/internal/model"
	"github.com/amishk599/jobpulse/internal/store"
	"github.com/amishk599/jobpulse/internal/tui"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	dataPath string
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:   "jobpulse",
	Short: "Job recommendations and market insights from a job postings file",
	Long: "jobpulse loads a CSV of job postings and either recommends jobs by skills, " +
		"location and function, or shows aggregate market insights with a CSV export.",
	// With no subcommand, ask which view to open.
	RunE:         runPicker,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBPULSE_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "job data file, .csv or a .db snapshot (overrides data_path)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBPULSE_CONFIG env var > "./config.yaml".
// Only the implicit ./config.yaml may be absent, in which case defaults apply.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	switch {
	case path != "":
		cfg, err = config.Load(path)
	case os.Getenv("JOBPULSE_CONFIG") != "":
		cfg, err = config.Load(os.Getenv("JOBPULSE_CONFIG"))
	default:
		cfg, err = config.LoadOrDefault("config.yaml")
	}
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	return cfg, nil
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// silentLogger is used while a TUI owns the terminal; any log output before
// the alt-screen starts corrupts the display.
func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openSource picks the table source from the file extension: SQLite
// snapshots for .db/.sqlite/.sqlite3, CSV for everything else.
func openSource(path string) (model.TableSource, func() error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		if _, err := os.Stat(path); err != nil {
			return nil, nil, fmt.Errorf("opening snapshot: %w", err)
		}
		s, err := store.NewSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return dataset.NewCSVSource(path), func() error { return nil }, nil
	}
}

// loadTable reads the configured data file in full.
func loadTable(ctx context.Context, path string) (*model.Table, error) {
	src, closeFn, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return src.LoadTable(ctx)
}

// loadTableWithSpinner is loadTable behind the inline loader TUI.
func loadTableWithSpinner(path string) (*model.Table, error) {
	return tui.RunLoader(path, func(ctx context.Context) (*model.Table, error) {
		return loadTable(ctx, path)
	})
}

func runPicker(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	view, err := tui.RunViewPicker()
	if err != nil {
		return fmt.Errorf("picker: %w", err)
	}

	switch view {
	case tui.ViewRecommend:
		return runRecommendTUI(cfg, logger)
	case tui.ViewInsights:
		return runInsightsTUI(cfg, logger)
	default:
		return nil
	}
}
