package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/dashboard"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/logging"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/source"
)

// Config is the top-level configuration for a launchdash process.
type Config struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	Dataset   source.Config   `json:"dataset" yaml:"dataset"`
	Dashboard DashboardConfig `json:"dashboard" yaml:"dashboard"`
	Log       LogConfig       `json:"log" yaml:"log"`
	Record    RecordConfig    `json:"record" yaml:"record"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `json:"addr" yaml:"addr"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// DashboardConfig holds page settings.
type DashboardConfig struct {
	Title string `json:"title" yaml:"title"`
}

// LogConfig selects the log level and encoder.
type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development" yaml:"development"`
}

// RecordConfig enables interaction recording. Interactions are exported to
// File on shutdown; an empty File disables recording.
type RecordConfig struct {
	File string `json:"file" yaml:"file"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8050",
			ShutdownTimeout: 5 * time.Second,
		},
		Dataset: source.Default(),
		Dashboard: DashboardConfig{
			Title: dashboard.DefaultTitle,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the config is valid.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if err := c.Dataset.Validate(); err != nil {
		return err
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("unknown log level %q, must be one of: debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// LoadFile reads a JSON or YAML config file (picked by extension) and
// merges it with defaults. Fields not specified in the file keep their
// default values.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	var raw rawConfig
	if isYAML(path) {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	if err := raw.merge(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// rawConfig is the file representation with string durations.
type rawConfig struct {
	Server struct {
		Addr            string `json:"addr" yaml:"addr"`
		ShutdownTimeout string `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`
	Dataset struct {
		Backend string `json:"backend" yaml:"backend"`
		Path    string `json:"path" yaml:"path"`
		URL     string `json:"url" yaml:"url"`
		Timeout string `json:"timeout" yaml:"timeout"`
		Redis   struct {
			Host        string `json:"host" yaml:"host"`
			Port        int    `json:"port" yaml:"port"`
			Password    string `json:"password" yaml:"password"`
			DB          int    `json:"db" yaml:"db"`
			Key         string `json:"key" yaml:"key"`
			MaxRetries  int    `json:"max_retries" yaml:"max_retries"`
			DialTimeout string `json:"dial_timeout" yaml:"dial_timeout"`
		} `json:"redis" yaml:"redis"`
	} `json:"dataset" yaml:"dataset"`
	Dashboard struct {
		Title string `json:"title" yaml:"title"`
	} `json:"dashboard" yaml:"dashboard"`
	Log struct {
		Level       string `json:"level" yaml:"level"`
		Development *bool  `json:"development" yaml:"development"`
	} `json:"log" yaml:"log"`
	Record struct {
		File string `json:"file" yaml:"file"`
	} `json:"record" yaml:"record"`
}

func (raw *rawConfig) merge(cfg *Config) error {
	if raw.Server.Addr != "" {
		cfg.Server.Addr = raw.Server.Addr
	}
	if err := mergeDuration(&cfg.Server.ShutdownTimeout, raw.Server.ShutdownTimeout, "server.shutdown_timeout"); err != nil {
		return err
	}

	ds := &cfg.Dataset
	if raw.Dataset.Backend != "" {
		ds.Backend = raw.Dataset.Backend
	}
	if raw.Dataset.Path != "" {
		ds.Path = raw.Dataset.Path
	}
	if raw.Dataset.URL != "" {
		ds.URL = raw.Dataset.URL
	}
	if err := mergeDuration(&ds.Timeout, raw.Dataset.Timeout, "dataset.timeout"); err != nil {
		return err
	}

	rr := raw.Dataset.Redis
	if rr.Host != "" {
		ds.Redis.Host = rr.Host
	}
	if rr.Port > 0 {
		ds.Redis.Port = rr.Port
	}
	if rr.Password != "" {
		ds.Redis.Password = rr.Password
	}
	if rr.DB > 0 {
		ds.Redis.DB = rr.DB
	}
	if rr.Key != "" {
		ds.Redis.Key = rr.Key
	}
	if rr.MaxRetries > 0 {
		ds.Redis.MaxRetries = rr.MaxRetries
	}
	if err := mergeDuration(&ds.Redis.DialTimeout, rr.DialTimeout, "dataset.redis.dial_timeout"); err != nil {
		return err
	}

	if raw.Dashboard.Title != "" {
		cfg.Dashboard.Title = raw.Dashboard.Title
	}
	if raw.Log.Level != "" {
		cfg.Log.Level = raw.Log.Level
	}
	if raw.Log.Development != nil {
		cfg.Log.Development = *raw.Log.Development
	}
	if raw.Record.File != "" {
		cfg.Record.File = raw.Record.File
	}
	return nil
}

func mergeDuration(dst *time.Duration, raw, field string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", field, err)
	}
	*dst = d
	return nil
}

const exampleJSON = `{
  "server": {
    "addr": ":8050",
    "shutdown_timeout": "5s"
  },
  "dataset": {
    "backend": "file",
    "path": "spacex_launch_dash.csv",
    "timeout": "30s",
    "redis": {
      "host": "localhost",
      "port": 6379,
      "db": 0,
      "key": "launchdash:dataset",
      "max_retries": 3,
      "dial_timeout": "5s"
    }
  },
  "dashboard": {
    "title": "SpaceX Launch Records Dashboard"
  },
  "log": {
    "level": "info",
    "development": false
  },
  "record": {
    "file": ""
  }
}
`

const exampleYAML = `server:
  addr: ":8050"
  shutdown_timeout: 5s
dataset:
  backend: file            # file, http or redis
  path: spacex_launch_dash.csv
  timeout: 30s
  redis:
    host: localhost
    port: 6379
    db: 0
    key: launchdash:dataset
    max_retries: 3
    dial_timeout: 5s
dashboard:
  title: SpaceX Launch Records Dashboard
log:
  level: info
  development: false
record:
  file: ""
`

// WriteExample writes an example config file to the given path, as YAML
// when the extension asks for it and JSON otherwise.
func WriteExample(path string) error {
	example := exampleJSON
	if isYAML(path) {
		example = exampleYAML
	}
	return os.WriteFile(path, []byte(example), 0o644)
}
