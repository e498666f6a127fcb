package config

import internalconfig "github.com/Chamz87/IBM-Capstone-SCE/internal/config"

// Config is the top-level configuration for a launchdash process.
type Config = internalconfig.Config

// ServerConfig holds HTTP server settings.
type ServerConfig = internalconfig.ServerConfig

// DashboardConfig holds page settings.
type DashboardConfig = internalconfig.DashboardConfig

// LogConfig selects the log level and encoder.
type LogConfig = internalconfig.LogConfig

// RecordConfig enables interaction recording.
type RecordConfig = internalconfig.RecordConfig

// Default returns a Config with sensible defaults.
func Default() Config {
	return internalconfig.Default()
}

// LoadFile reads a JSON or YAML config file and merges it with defaults.
func LoadFile(path string) (Config, error) {
	return internalconfig.LoadFile(path)
}

// WriteExample writes an example config file to the given path.
func WriteExample(path string) error {
	return internalconfig.WriteExample(path)
}
