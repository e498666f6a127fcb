package config

import (
	"path/filepath"
	"testing"
)

func TestDefault_ServesLocalCSV(t *testing.T) {
	cfg := Default()
	if cfg.Dataset.Backend != "file" || cfg.Dataset.Path != "spacex_launch_dash.csv" {
		t.Errorf("dataset = %+v, want the local launch CSV", cfg.Dataset)
	}
	if cfg.Server.Addr != ":8050" {
		t.Errorf("addr = %q, want :8050", cfg.Server.Addr)
	}
	if cfg.Dashboard.Title != "SpaceX Launch Records Dashboard" {
		t.Errorf("title = %q", cfg.Dashboard.Title)
	}
}

func TestWriteExample_LoadsAsDefault(t *testing.T) {
	for _, name := range []string{"launchdash.yaml", "launchdash.json"} {
		path := filepath.Join(t.TempDir(), name)
		if err := WriteExample(path); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if cfg.Dataset != Default().Dataset || cfg.Server != Default().Server {
			t.Errorf("%s: loaded %+v, want defaults", name, cfg)
		}
	}
}
