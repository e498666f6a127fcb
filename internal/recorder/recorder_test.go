package recorder

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/dashboard"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func siteChange(site string) Interaction {
	return Interaction{
		Timestamp: epoch,
		Transport: TransportWS,
		Site:      site,
		Payload:   [2]float64{0, 10000},
		Changed:   []string{dashboard.SiteDropdownID},
	}
}

func TestRecorder_Record(t *testing.T) {
	rec := New(nil)
	if err := rec.Record(siteChange("KSC LC-39A")); err != nil {
		t.Fatal(err)
	}
	if rec.Len() != 1 {
		t.Errorf("Len() = %d, want 1", rec.Len())
	}
}

func TestRecorder_Records_ReturnsCopy(t *testing.T) {
	rec := New(nil)
	rec.Record(siteChange("KSC LC-39A"))

	records := rec.Records()
	records[0].Site = "mutated"

	if rec.Records()[0].Site != "KSC LC-39A" {
		t.Error("Records() should return a copy, original was mutated")
	}
}

func TestRecorder_StreamToWriter(t *testing.T) {
	var buf bytes.Buffer
	rec := New(&buf)

	rec.Record(siteChange("KSC LC-39A"))
	rec.Record(siteChange("VAFB SLC-4E"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var in Interaction
	if err := json.Unmarshal(lines[1], &in); err != nil {
		t.Fatal(err)
	}
	if in.Site != "VAFB SLC-4E" {
		t.Errorf("second line site = %q, want %q", in.Site, "VAFB SLC-4E")
	}
}

func TestRecorder_ExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := New(nil).ExportJSON(&buf); err != nil {
		t.Fatal(err)
	}
	if got := string(bytes.TrimSpace(buf.Bytes())); got != "[]" {
		t.Errorf("empty export = %q, want []", got)
	}
}

func TestRecorder_ExportFile_LoadJSON(t *testing.T) {
	rec := New(nil)
	rec.Record(siteChange("KSC LC-39A"))
	slider := siteChange("KSC LC-39A")
	slider.Timestamp = epoch.Add(3 * time.Second)
	slider.Payload = [2]float64{2000, 6000}
	slider.Changed = []string{dashboard.PayloadSliderID}
	rec.Record(slider)

	path := filepath.Join(t.TempDir(), "interactions.json")
	if err := rec.ExportFile(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	loaded, err := LoadJSON(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d interactions, want 2", len(loaded))
	}
	if loaded[1].Payload != [2]float64{2000, 6000} {
		t.Errorf("payload = %v, want [2000 6000]", loaded[1].Payload)
	}
	if !loaded[1].Timestamp.Equal(epoch.Add(3 * time.Second)) {
		t.Errorf("timestamp = %v", loaded[1].Timestamp)
	}
}

func TestInteraction_RequestRoundTrip(t *testing.T) {
	req := dashboard.UpdateRequest{
		Inputs:  dashboard.Inputs{Site: "CCAFS LC-40", Payload: [2]float64{1000, 4000}},
		Changed: []string{dashboard.PayloadSliderID},
	}
	in := FromRequest(epoch, "sess-1", TransportHTTP, req)
	if in.Session != "sess-1" || in.Transport != TransportHTTP {
		t.Errorf("interaction = %+v", in)
	}

	back := in.Request()
	if back.Inputs != req.Inputs {
		t.Errorf("inputs = %+v, want %+v", back.Inputs, req.Inputs)
	}
	if len(back.Changed) != 1 || back.Changed[0] != dashboard.PayloadSliderID {
		t.Errorf("changed = %v", back.Changed)
	}
}

func TestRecorder_ConcurrentAccess(t *testing.T) {
	rec := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Record(siteChange("KSC LC-39A"))
		}()
	}
	wg.Wait()

	if rec.Len() != 100 {
		t.Errorf("Len() = %d, want 100", rec.Len())
	}
}
