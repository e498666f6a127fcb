package dashboard

import (
	"strings"
	"testing"
)

func TestControllerFromCSV(t *testing.T) {
	csv := `Launch Site,Payload Mass (kg),Booster Version Category,class
KSC,5000,v1,1
KSC,3000,v1,0
CCAFS,2000,v2,1
`
	ds, err := ReadCSV(strings.NewReader(csv), nil)
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v", err)
	}

	c := New(ds, WithTitle("Launches"))
	if c.Layout().Title != "Launches" {
		t.Errorf("title = %q", c.Layout().Title)
	}

	resp := c.Update(UpdateRequest{Inputs: Inputs{Site: "KSC", Payload: [2]float64{0, 10000}}})
	if len(resp.Outputs) != 2 {
		t.Fatalf("got %d outputs, want 2", len(resp.Outputs))
	}
	if n := resp.Outputs[ScatterChartID].PointCount(); n != 2 {
		t.Errorf("scatter PointCount() = %d, want 2", n)
	}
}
