package logging

import "testing"

func TestNew(t *testing.T) {
	for _, dev := range []bool{false, true} {
		log, err := New("debug", dev)
		if err != nil {
			t.Fatalf("New(debug, %v) error = %v", dev, err)
		}
		if !log.Core().Enabled(-1) {
			t.Errorf("development=%v: debug should be enabled", dev)
		}
		_ = log.Sync()
	}
}

func TestNew_Level(t *testing.T) {
	log, err := New("warn", false)
	if err != nil {
		t.Fatal(err)
	}
	if log.Core().Enabled(0) {
		t.Error("info should be disabled at warn level")
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New("loud", false); err == nil {
		t.Error("unknown level should be an error")
	}
	if ValidLevel("loud") {
		t.Error("ValidLevel(loud) = true")
	}
	if !ValidLevel("error") {
		t.Error("ValidLevel(error) = false")
	}
}

func TestValidLevel_OnlyOperationalLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = false", level)
		}
	}
	for _, level := range []string{"dpanic", "panic", "fatal", "trace"} {
		if ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = true", level)
		}
		if _, err := New(level, false); err == nil {
			t.Errorf("New(%q) should fail", level)
		}
	}
}
