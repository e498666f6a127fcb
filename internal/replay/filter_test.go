package replay

import (
	"testing"
	"time"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/recorder"
)

func TestFilter_Empty(t *testing.T) {
	f := &Filter{}
	if !f.Match(recorder.Interaction{Site: "KSC", Timestamp: epoch}) {
		t.Error("empty filter should match everything")
	}
}

func TestFilter_Sessions(t *testing.T) {
	f := &Filter{Sessions: []string{"a", "b"}}
	if !f.Match(recorder.Interaction{Session: "a"}) {
		t.Error("session a should match")
	}
	if f.Match(recorder.Interaction{Session: "c"}) {
		t.Error("session c should not match")
	}
}

func TestFilter_Sites(t *testing.T) {
	f := &Filter{Sites: []string{"All Sites"}}
	if !f.Match(recorder.Interaction{Site: "All Sites"}) {
		t.Error("All Sites should match")
	}
	if f.Match(recorder.Interaction{Site: "KSC LC-39A"}) {
		t.Error("KSC LC-39A should not match")
	}
}

func TestFilter_TimeBounds(t *testing.T) {
	f := &Filter{After: epoch, Before: epoch.Add(time.Minute)}

	tests := []struct {
		at   time.Time
		want bool
	}{
		{epoch, false},
		{epoch.Add(time.Second), true},
		{epoch.Add(time.Minute), false},
		{epoch.Add(2 * time.Minute), false},
	}
	for _, tt := range tests {
		if got := f.Match(recorder.Interaction{Timestamp: tt.at}); got != tt.want {
			t.Errorf("Match(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}
