package dashboard

import (
	"testing"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/launch"
)

func TestAffected(t *testing.T) {
	tests := []struct {
		name    string
		changed []string
		want    []string
	}{
		{"initial", nil, []string{PieChartID, ScatterChartID}},
		{"site", []string{SiteDropdownID}, []string{PieChartID, ScatterChartID}},
		{"slider", []string{PayloadSliderID}, []string{ScatterChartID}},
		{"both", []string{PayloadSliderID, SiteDropdownID}, []string{PieChartID, ScatterChartID}},
		{"unknown", []string{"bogus"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Affected(tt.changed)
			if len(got) != len(tt.want) {
				t.Fatalf("Affected(%v) = %v, want %v", tt.changed, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Affected(%v)[%d] = %q, want %q", tt.changed, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUpdate_SliderOnlyRecomputesScatter(t *testing.T) {
	c := exampleController()
	resp := c.Update(UpdateRequest{
		Inputs:  Inputs{Site: "KSC", Payload: [2]float64{0, 10000}},
		Changed: []string{PayloadSliderID},
	})

	if len(resp.Outputs) != 1 {
		t.Fatalf("got %d outputs, want 1", len(resp.Outputs))
	}
	f, ok := resp.Outputs[ScatterChartID]
	if !ok {
		t.Fatal("scatter output missing")
	}
	if f.PointCount() != 2 {
		t.Errorf("PointCount() = %d, want 2", f.PointCount())
	}
}

func TestUpdate_InitialRequest(t *testing.T) {
	c := exampleController()
	req := c.InitialRequest()
	if req.Inputs.Site != launch.AllSites {
		t.Errorf("initial site = %q", req.Inputs.Site)
	}

	resp := c.Update(req)
	if len(resp.Outputs) != 2 {
		t.Fatalf("got %d outputs, want 2", len(resp.Outputs))
	}
	// The initial range is the data bounds, and both ends are exclusive.
	if n := resp.Outputs[ScatterChartID].PointCount(); n != 1 {
		t.Errorf("initial scatter PointCount() = %d, want 1", n)
	}
}

func TestUpdate_UnknownSiteYieldsEmptyCharts(t *testing.T) {
	resp := exampleController().Update(UpdateRequest{
		Inputs: Inputs{Site: "Boca Chica", Payload: [2]float64{0, 10000}},
	})
	for id, f := range resp.Outputs {
		if !f.IsEmpty() {
			t.Errorf("%s should be empty for an unknown site", id)
		}
	}
	if len(resp.Outputs) != 2 {
		t.Errorf("got %d outputs, want 2", len(resp.Outputs))
	}
}
