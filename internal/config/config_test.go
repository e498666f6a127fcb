package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/dashboard"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/source"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":8050" {
		t.Errorf("default addr = %q, want %q", cfg.Server.Addr, ":8050")
	}
	if cfg.Dataset.Backend != source.BackendFile {
		t.Errorf("default backend = %q, want file", cfg.Dataset.Backend)
	}
	if cfg.Dataset.Path != "spacex_launch_dash.csv" {
		t.Errorf("default path = %q", cfg.Dataset.Path)
	}
	if cfg.Dashboard.Title != dashboard.DefaultTitle {
		t.Errorf("default title = %q", cfg.Dashboard.Title)
	}
	if cfg.Record.File != "" {
		t.Errorf("recording should be off by default, got %q", cfg.Record.File)
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }},
		{"unknown backend", func(c *Config) { c.Dataset.Backend = "ftp" }},
		{"http without url", func(c *Config) { c.Dataset.Backend = source.BackendHTTP }},
		{"redis without key", func(c *Config) { c.Dataset.Backend = source.BackendRedis; c.Dataset.Redis.Key = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadFile_JSON(t *testing.T) {
	content := `{
  "server": {"addr": ":9090", "shutdown_timeout": "10s"},
  "dataset": {"backend": "http", "url": "https://example.com/launches.csv", "timeout": "1m"},
  "log": {"level": "debug", "development": true}
}`
	path := filepath.Join(t.TempDir(), "launchdash.json")
	os.WriteFile(path, []byte(content), 0o644)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q, want %q", cfg.Server.Addr, ":9090")
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Dataset.Backend != source.BackendHTTP || cfg.Dataset.URL != "https://example.com/launches.csv" {
		t.Errorf("dataset = %+v", cfg.Dataset)
	}
	if cfg.Dataset.Timeout != time.Minute {
		t.Errorf("dataset timeout = %v, want 1m", cfg.Dataset.Timeout)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.Development {
		t.Errorf("log = %+v", cfg.Log)
	}
	// Unset fields keep defaults.
	if cfg.Dashboard.Title != dashboard.DefaultTitle {
		t.Errorf("title = %q, want default", cfg.Dashboard.Title)
	}
	if cfg.Dataset.Redis.Port != 6379 {
		t.Errorf("redis port = %d, want default 6379", cfg.Dataset.Redis.Port)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	content := `dataset:
  backend: redis
  redis:
    host: cache.internal
    port: 6380
    db: 2
    key: launches
    dial_timeout: 2s
dashboard:
  title: Launch Board
record:
  file: interactions.json
`
	path := filepath.Join(t.TempDir(), "launchdash.yaml")
	os.WriteFile(path, []byte(content), 0o644)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	r := cfg.Dataset.Redis
	if cfg.Dataset.Backend != source.BackendRedis || r.Host != "cache.internal" || r.Port != 6380 || r.DB != 2 || r.Key != "launches" {
		t.Errorf("redis = %+v", r)
	}
	if r.DialTimeout != 2*time.Second {
		t.Errorf("dial timeout = %v, want 2s", r.DialTimeout)
	}
	if cfg.Dashboard.Title != "Launch Board" {
		t.Errorf("title = %q", cfg.Dashboard.Title)
	}
	if cfg.Record.File != "interactions.json" {
		t.Errorf("record file = %q", cfg.Record.File)
	}
	if cfg.Server.Addr != ":8050" {
		t.Errorf("addr = %q, want default", cfg.Server.Addr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should be valid, got %v", err)
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	if _, err := LoadFile("/nonexistent/launchdash.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFile_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{invalid"), 0o644)
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadFile_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte(`{"server": {"shutdown_timeout": "soon"}}`), 0o644)
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestWriteExample(t *testing.T) {
	for _, name := range []string{"launchdash.json", "launchdash.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := WriteExample(path); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadFile(path)
			if err != nil {
				t.Fatalf("example config should be loadable: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("example config should be valid: %v", err)
			}
			if cfg.Dataset.Redis.Key != "launchdash:dataset" {
				t.Errorf("redis key = %q", cfg.Dataset.Redis.Key)
			}
		})
	}
}
