package source

import (
	"context"
	"strings"
	"testing"
)

func TestRedis_PublishThenLoad(t *testing.T) {
	rc, cleanup := newRedisConfigForTest(t)
	defer cleanup()

	ctx := context.Background()
	if err := Publish(ctx, &rc, []byte(testCSV)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	cfg := Default()
	cfg.Backend = BackendRedis
	cfg.Redis = rc

	ds, err := Load(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ds.Len())
	}
}

func TestRedis_MissingKey(t *testing.T) {
	rc, cleanup := newRedisConfigForTest(t)
	defer cleanup()

	rc.Key = "launchdash:test:absent"
	cfg := Default()
	cfg.Backend = BackendRedis
	cfg.Redis = rc

	_, err := Load(context.Background(), cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %v, want key not found", err)
	}
}

func TestRedis_PublishOverwrites(t *testing.T) {
	rc, cleanup := newRedisConfigForTest(t)
	defer cleanup()

	ctx := context.Background()
	if err := Publish(ctx, &rc, []byte(testCSV)); err != nil {
		t.Fatal(err)
	}
	short := "Launch Site,class,Payload Mass (kg),Booster Version Category\nKSC,1,100,FT\n"
	if err := Publish(ctx, &rc, []byte(short)); err != nil {
		t.Fatal(err)
	}

	raw, err := readRedis(ctx, &rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != short {
		t.Errorf("stored dataset = %q, want the second publish", raw)
	}
}

func TestNormalizeRedisConfig_Defaults(t *testing.T) {
	conf, err := normalizeRedisConfig(&RedisConfig{Host: "localhost", Port: 6379, Key: "k"})
	if err != nil {
		t.Fatal(err)
	}
	if conf.MaxRetries != defaultRedisMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", conf.MaxRetries, defaultRedisMaxRetries)
	}
	if conf.DialTimeout != defaultRedisDialTimeout {
		t.Errorf("DialTimeout = %v, want %v", conf.DialTimeout, defaultRedisDialTimeout)
	}

	if _, err := normalizeRedisConfig(nil); err == nil {
		t.Error("nil config should be an error")
	}
}
