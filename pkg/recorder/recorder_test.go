package recorder

import (
	"bytes"
	"testing"
	"time"

	"github.com/Chamz87/IBM-Capstone-SCE/pkg/dashboard"
)

func TestRecorderRoundtrip(t *testing.T) {
	rec := New(nil)
	req := dashboard.UpdateRequest{
		Inputs:  dashboard.Inputs{Site: "KSC LC-39A", Payload: [2]float64{0, 10000}},
		Changed: []string{dashboard.SiteDropdownID},
	}
	if err := rec.Record(FromRequest(time.Now(), "s1", TransportWS, req)); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if rec.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", rec.Len())
	}

	var buf bytes.Buffer
	if err := rec.ExportJSON(&buf); err != nil {
		t.Fatal(err)
	}
	got, err := LoadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Site != "KSC LC-39A" || got[0].Transport != TransportWS {
		t.Fatalf("LoadJSON() = %+v", got)
	}
}
