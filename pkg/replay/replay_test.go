package replay

import (
	"context"
	"testing"
	"time"

	"github.com/Chamz87/IBM-Capstone-SCE/pkg/clock"
	"github.com/Chamz87/IBM-Capstone-SCE/pkg/dashboard"
	"github.com/Chamz87/IBM-Capstone-SCE/pkg/recorder"
)

func TestReplayBasic(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	vc := clock.NewVirtualClock(start)
	ctrl := dashboard.New(dashboard.NewDataset([]dashboard.Record{
		{Site: "KSC", PayloadMassKG: 5000, BoosterCategory: "v1", Class: 1},
		{Site: "CCAFS", PayloadMassKG: 2000, BoosterCategory: "v2", Class: 1},
	}))

	r := New(ctrl, vc, 0, Filter{})
	r.LoadRecords([]recorder.Interaction{
		{Timestamp: start, Site: dashboard.AllSites, Payload: [2]float64{0, 10000}},
		{Timestamp: start.Add(time.Second), Site: "KSC", Payload: [2]float64{0, 10000}, Changed: []string{dashboard.SiteDropdownID}},
		{Timestamp: start.Add(3 * time.Second), Site: "Nowhere", Payload: [2]float64{0, 10000}, Changed: []string{dashboard.PayloadSliderID}},
	})

	summary, err := r.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if summary.Replayed != 3 {
		t.Fatalf("Replayed = %d, want 3", summary.Replayed)
	}
	if summary.EmptyOutputs != 1 {
		t.Fatalf("EmptyOutputs = %d, want 1", summary.EmptyOutputs)
	}
	if got := vc.Now(); !got.Equal(start.Add(3 * time.Second)) {
		t.Fatalf("virtual clock = %v, want %v", got, start.Add(3*time.Second))
	}
}
