package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
data_path: data/postings.csv
server:
  addr: "127.0.0.1:9000"
  read_timeout: 3s
recommend:
  limit: 5
insights:
  top_n: 7
  export_name: out.csv
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPath != "data/postings.csv" {
		t.Errorf("DataPath = %q", cfg.DataPath)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Server.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want default", cfg.Server.ShutdownTimeout)
	}
	if cfg.Recommend.Limit != 5 {
		t.Errorf("Recommend.Limit = %d, want 5", cfg.Recommend.Limit)
	}
	if cfg.Insights.TopN != 7 || cfg.Insights.ExportName != "out.csv" {
		t.Errorf("Insights = %+v", cfg.Insights)
	}
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(empty) = %+v, want defaults", cfg)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("JOBPULSE_TEST_DATA", "/tmp/jobs.csv")
	cfg, err := Load(writeConfig(t, "data_path: ${JOBPULSE_TEST_DATA}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPath != "/tmp/jobs.csv" {
		t.Errorf("DataPath = %q, want /tmp/jobs.csv", cfg.DataPath)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.DataPath != defaultDataPath {
		t.Errorf("DataPath = %q, want %q", cfg.DataPath, defaultDataPath)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "data_path: [broken"))
	if err == nil {
		t.Fatal("Load: expected error for invalid YAML")
	}
}

func TestLoad_ZeroLimit(t *testing.T) {
	_, err := Load(writeConfig(t, "recommend:\n  limit: 0\n"))
	if err == nil {
		t.Fatal("Load: expected validation error for zero limit")
	}
}

func TestLoad_BadDuration(t *testing.T) {
	_, err := Load(writeConfig(t, "server:\n  read_timeout: soon\n"))
	if err == nil {
		t.Fatal("Load: expected error for unparseable read_timeout")
	}
}
