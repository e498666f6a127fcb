// Package source fetches the launch CSV from a file, an HTTP endpoint or a
// Redis key and parses it into a dataset.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/launch"
)

// Supported backends.
const (
	BackendFile  = "file"
	BackendHTTP  = "http"
	BackendRedis = "redis"
)

const (
	DefaultPath    = "spacex_launch_dash.csv"
	defaultTimeout = 30 * time.Second
)

// Config selects where the dataset is read from.
type Config struct {
	Backend string        `json:"backend" yaml:"backend"`
	Path    string        `json:"path,omitempty" yaml:"path,omitempty"`
	URL     string        `json:"url,omitempty" yaml:"url,omitempty"`
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Redis   RedisConfig   `json:"redis" yaml:"redis"`
}

// Default returns a file source reading spacex_launch_dash.csv.
func Default() Config {
	return Config{
		Backend: BackendFile,
		Path:    DefaultPath,
		Timeout: defaultTimeout,
		Redis:   DefaultRedis(),
	}
}

// Validate checks the settings the selected backend needs.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile:
		if c.Path == "" {
			return errors.New("dataset path is required for the file backend")
		}
	case BackendHTTP:
		if !strings.HasPrefix(c.URL, "http://") && !strings.HasPrefix(c.URL, "https://") {
			return fmt.Errorf("dataset url must be http(s), got %q", c.URL)
		}
	case BackendRedis:
		if _, err := normalizeRedisConfig(&c.Redis); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	default:
		return fmt.Errorf("unknown dataset backend %q, must be one of: file, http, redis", c.Backend)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("dataset timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// Describe returns a short human-readable location for logs.
func (c Config) Describe() string {
	switch c.Backend {
	case BackendHTTP:
		return c.URL
	case BackendRedis:
		return fmt.Sprintf("redis://%s:%d/%d#%s", c.Redis.Host, c.Redis.Port, c.Redis.DB, c.Redis.Key)
	default:
		return c.Path
	}
}

// Read returns the raw CSV bytes from the configured backend.
func Read(ctx context.Context, cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch cfg.Backend {
	case BackendHTTP:
		return readURL(ctx, cfg.URL)
	case BackendRedis:
		return readRedis(ctx, &cfg.Redis)
	default:
		return os.ReadFile(cfg.Path)
	}
}

// Load reads and parses the dataset. Skipped rows are reported to warn.
func Load(ctx context.Context, cfg Config, warn launch.WarnFunc) (*launch.Dataset, error) {
	raw, err := Read(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("load data source: %w", err)
	}
	ds, err := launch.ReadCSV(bytes.NewReader(raw), warn)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", cfg.Describe(), err)
	}
	return ds, nil
}

func readURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
