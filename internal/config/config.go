package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for jobpulse.
type Config struct {
	DataPath  string
	Server    ServerConfig
	Recommend RecommendConfig
	Insights  InsightsConfig
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// RecommendConfig controls the recommendation view.
type RecommendConfig struct {
	Limit int // rows shown per query
}

// InsightsConfig controls the dashboard view.
type InsightsConfig struct {
	TopN       int    // bars shown for company and location charts
	ExportName string // file name offered for the CSV download
}

const (
	defaultDataPath        = "job_data.csv"
	defaultAddr            = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultLimit           = 10
	defaultTopN            = 10
	defaultExportName      = "job_market_insights.csv"
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	DataPath  string             `yaml:"data_path"`
	Server    rawServerConfig    `yaml:"server"`
	Recommend rawRecommendConfig `yaml:"recommend"`
	Insights  rawInsightsConfig  `yaml:"insights"`
}

type rawServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type rawRecommendConfig struct {
	Limit *int `yaml:"limit"`
}

type rawInsightsConfig struct {
	TopN       *int   `yaml:"top_n"`
	ExportName string `yaml:"export_name"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		DataPath: defaultDataPath,
		Server: ServerConfig{
			Addr:            defaultAddr,
			ReadTimeout:     defaultReadTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Recommend: RecommendConfig{Limit: defaultLimit},
		Insights:  InsightsConfig{TopN: defaultTopN, ExportName: defaultExportName},
	}
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
// Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.DataPath != "" {
		cfg.DataPath = raw.DataPath
	}
	if raw.Server.Addr != "" {
		cfg.Server.Addr = raw.Server.Addr
	}
	if raw.Server.ReadTimeout != "" {
		cfg.Server.ReadTimeout, err = time.ParseDuration(raw.Server.ReadTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse server.read_timeout %q: %w", raw.Server.ReadTimeout, err)
		}
	}
	if raw.Server.ShutdownTimeout != "" {
		cfg.Server.ShutdownTimeout, err = time.ParseDuration(raw.Server.ShutdownTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse server.shutdown_timeout %q: %w", raw.Server.ShutdownTimeout, err)
		}
	}
	if raw.Recommend.Limit != nil {
		cfg.Recommend.Limit = *raw.Recommend.Limit
	}
	if raw.Insights.TopN != nil {
		cfg.Insights.TopN = *raw.Insights.TopN
	}
	if raw.Insights.ExportName != "" {
		cfg.Insights.ExportName = raw.Insights.ExportName
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func validate(cfg *Config) error {
	if cfg.DataPath == "" {
		return fmt.Errorf("data_path must not be empty")
	}
	if cfg.Recommend.Limit <= 0 {
		return fmt.Errorf("recommend.limit must be positive, got %d", cfg.Recommend.Limit)
	}
	if cfg.Insights.TopN <= 0 {
		return fmt.Errorf("insights.top_n must be positive, got %d", cfg.Insights.TopN)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %v", cfg.Server.ShutdownTimeout)
	}
	return nil
}
