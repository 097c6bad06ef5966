package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/amishk599/jobpulse/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve recommendations, insights and the CSV export over HTTP",
	Long:  "Loads the job data once and serves it read-only; blocks until SIGINT/SIGTERM.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	table, err := loadTable(ctx, cfg.DataPath)
	if err != nil {
		logger.Error("failed to load job data", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}
	logger.Info("job data loaded", "path", cfg.DataPath, "rows", table.Len())

	h := server.NewJobsHandler(table, cfg.Recommend.Limit, cfg.Insights.TopN, cfg.Insights.ExportName, logger)
	srv, err := server.NewServer(cfg.Server.Addr, cfg.Server.ReadTimeout, h, logger)
	if err != nil {
		logger.Error("failed to build server", "error", err)
		os.Exit(1)
	}

	if err := srv.Run(ctx, cfg.Server.ShutdownTimeout); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
