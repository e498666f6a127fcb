package source

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisMaxRetries  = 3
	defaultRedisDialTimeout = 5 * time.Second
	DefaultRedisKey         = "launchdash:dataset"
)

// RedisConfig locates the key holding the launch CSV.
type RedisConfig struct {
	Host        string        `json:"host" yaml:"host"`
	Port        int           `json:"port" yaml:"port"`
	Password    string        `json:"password,omitempty" yaml:"password,omitempty"`
	DB          int           `json:"db" yaml:"db"`
	Key         string        `json:"key" yaml:"key"`
	MaxRetries  int           `json:"max_retries" yaml:"max_retries"`
	DialTimeout time.Duration `json:"dial_timeout" yaml:"dial_timeout"`
}

// DefaultRedis returns settings for a local Redis.
func DefaultRedis() RedisConfig {
	return RedisConfig{
		Host:        "localhost",
		Port:        6379,
		Key:         DefaultRedisKey,
		MaxRetries:  defaultRedisMaxRetries,
		DialTimeout: defaultRedisDialTimeout,
	}
}

// Publish stores data under the configured key, replacing any previous
// dataset. It does not expire.
func Publish(ctx context.Context, cfg *RedisConfig, data []byte) error {
	conf, err := normalizeRedisConfig(cfg)
	if err != nil {
		return err
	}
	client := newRedisClient(conf)
	defer client.Close()

	if err := pingWithRetry(ctx, client, conf.MaxRetries); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	if err := client.Set(ctx, conf.Key, data, 0).Err(); err != nil {
		return fmt.Errorf("writing %s: %w", conf.Key, err)
	}
	return nil
}

func readRedis(ctx context.Context, cfg *RedisConfig) ([]byte, error) {
	conf, err := normalizeRedisConfig(cfg)
	if err != nil {
		return nil, err
	}
	client := newRedisClient(conf)
	defer client.Close()

	if err := pingWithRetry(ctx, client, conf.MaxRetries); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	data, err := client.Get(ctx, conf.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("dataset key %q not found", conf.Key)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", conf.Key, err)
	}
	return data, nil
}

func pingWithRetry(ctx context.Context, client *redis.Client, maxRetries int) error {
	attempts := maxRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	backoff := 100 * time.Millisecond
	var lastErr error
	for i := 0; i < attempts; i++ {
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return lastErr
}

func normalizeRedisConfig(cfg *RedisConfig) (*RedisConfig, error) {
	if cfg == nil {
		return nil, errors.New("redis config is required")
	}

	conf := *cfg
	if conf.MaxRetries <= 0 {
		conf.MaxRetries = defaultRedisMaxRetries
	}
	if conf.DialTimeout <= 0 {
		conf.DialTimeout = defaultRedisDialTimeout
	}
	if conf.Host == "" {
		return nil, errors.New("host is required")
	}
	if conf.Port <= 0 {
		return nil, fmt.Errorf("port must be positive, got %d", conf.Port)
	}
	if conf.DB < 0 {
		return nil, fmt.Errorf("db must not be negative, got %d", conf.DB)
	}
	if conf.Key == "" {
		return nil, errors.New("key is required")
	}
	return &conf, nil
}

func newRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Password:    cfg.Password,
		DB:          cfg.DB,
		MaxRetries:  cfg.MaxRetries,
		DialTimeout: cfg.DialTimeout,
	})
}
