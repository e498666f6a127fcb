package cli

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/config"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/launch"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/logging"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/source"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configFile string
	logLevel   string
	devLog     bool
}

func (o *rootOptions) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.configFile, "config", "", "path to a JSON or YAML config file")
	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&o.devLog, "dev-log", false, "human-readable console logs")
}

// load returns the config file merged over defaults, with explicitly set
// persistent flags applied on top.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		if cfg, err = config.LoadFile(o.configFile); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if cmd.Flags().Changed("dev-log") {
		cfg.Log.Development = o.devLog
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log.Level, cfg.Log.Development)
}

// datasetOptions select where the launch CSV is read from.
type datasetOptions struct {
	backend          string
	path             string
	url              string
	timeout          time.Duration
	redisHost        string
	redisPort        int
	redisPassword    string
	redisDB          int
	redisKey         string
	redisMaxRetries  int
	redisDialTimeout time.Duration
}

func (o *datasetOptions) addFlags(cmd *cobra.Command) {
	d := source.Default()
	cmd.Flags().StringVar(&o.backend, "source", d.Backend, "dataset backend (file, http, redis)")
	cmd.Flags().StringVar(&o.path, "data", d.Path, "path to the launch CSV (file backend)")
	cmd.Flags().StringVar(&o.url, "data-url", "", "URL of the launch CSV (http backend)")
	cmd.Flags().DurationVar(&o.timeout, "data-timeout", d.Timeout, "timeout for fetching the dataset")
	o.addRedisFlags(cmd)
}

func (o *datasetOptions) addRedisFlags(cmd *cobra.Command) {
	r := source.DefaultRedis()
	cmd.Flags().StringVar(&o.redisHost, "redis-host", r.Host, "redis host (or host:port)")
	cmd.Flags().IntVar(&o.redisPort, "redis-port", r.Port, "redis port")
	cmd.Flags().StringVar(&o.redisPassword, "redis-password", "", "redis password")
	cmd.Flags().IntVar(&o.redisDB, "redis-db", r.DB, "redis database index")
	cmd.Flags().StringVar(&o.redisKey, "redis-key", r.Key, "redis key holding the launch CSV")
	cmd.Flags().IntVar(&o.redisMaxRetries, "redis-max-retries", r.MaxRetries, "redis max retries")
	cmd.Flags().DurationVar(&o.redisDialTimeout, "redis-dial-timeout", r.DialTimeout, "redis dial timeout")
}

// applyConfigIfUnset copies config values into every flag the user did not set.
func (o *datasetOptions) applyConfigIfUnset(cmd *cobra.Command, cfg source.Config) {
	set := func(name string, apply func()) {
		if f := cmd.Flags().Lookup(name); f != nil && !f.Changed {
			apply()
		}
	}
	set("source", func() { o.backend = cfg.Backend })
	set("data", func() { o.path = cfg.Path })
	set("data-url", func() { o.url = cfg.URL })
	set("data-timeout", func() { o.timeout = cfg.Timeout })
	set("redis-host", func() { o.redisHost = cfg.Redis.Host })
	set("redis-port", func() { o.redisPort = cfg.Redis.Port })
	set("redis-password", func() { o.redisPassword = cfg.Redis.Password })
	set("redis-db", func() { o.redisDB = cfg.Redis.DB })
	set("redis-key", func() { o.redisKey = cfg.Redis.Key })
	set("redis-max-retries", func() { o.redisMaxRetries = cfg.Redis.MaxRetries })
	set("redis-dial-timeout", func() { o.redisDialTimeout = cfg.Redis.DialTimeout })
}

func (o *datasetOptions) normalize() error {
	host, port, err := normalizeRedisHostPort(o.redisHost, o.redisPort)
	if err != nil {
		return err
	}
	o.redisHost = host
	o.redisPort = port
	return nil
}

func (o *datasetOptions) toConfig() source.Config {
	return source.Config{
		Backend: o.backend,
		Path:    o.path,
		URL:     o.url,
		Timeout: o.timeout,
		Redis:   o.redisConfig(),
	}
}

func (o *datasetOptions) redisConfig() source.RedisConfig {
	return source.RedisConfig{
		Host:        o.redisHost,
		Port:        o.redisPort,
		Password:    o.redisPassword,
		DB:          o.redisDB,
		Key:         o.redisKey,
		MaxRetries:  o.redisMaxRetries,
		DialTimeout: o.redisDialTimeout,
	}
}

// resolve merges flags over cfg and returns the validated dataset source.
func (o *datasetOptions) resolve(cmd *cobra.Command, cfg source.Config) (source.Config, error) {
	o.applyConfigIfUnset(cmd, cfg)
	if o.backend == source.BackendRedis {
		if err := o.normalize(); err != nil {
			return source.Config{}, err
		}
	}
	sc := o.toConfig()
	if err := sc.Validate(); err != nil {
		return source.Config{}, err
	}
	return sc, nil
}

func normalizeRedisHostPort(host string, port int) (string, int, error) {
	if strings.Contains(host, ":") {
		h, p, err := net.SplitHostPort(host)
		if err != nil {
			return "", 0, fmt.Errorf("invalid --redis-host value %q: %w", host, err)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", 0, fmt.Errorf("invalid redis port in --redis-host %q: %w", host, err)
		}
		host = h
		port = n
	}

	if host == "" {
		return "", 0, fmt.Errorf("redis host cannot be empty")
	}
	if port <= 0 {
		return "", 0, fmt.Errorf("redis port must be positive, got %d", port)
	}

	return host, port, nil
}

// loadDataset reads and parses the dataset, logging every skipped row.
func loadDataset(ctx context.Context, sc source.Config, logger *zap.Logger) (*launch.Dataset, error) {
	logger.Info("loading dataset", zap.String("backend", sc.Backend), zap.String("location", sc.Describe()))
	ds, err := source.Load(ctx, sc, func(line int, err error) {
		logger.Warn("skipping row", zap.Int("line", line), zap.Error(err))
	})
	if err != nil {
		return nil, err
	}
	lo, hi := ds.PayloadBounds()
	logger.Info("dataset loaded",
		zap.Int("records", ds.Len()),
		zap.Int("sites", len(ds.Sites())-1),
		zap.Float64("payload_min", lo),
		zap.Float64("payload_max", hi),
	)
	return ds, nil
}
