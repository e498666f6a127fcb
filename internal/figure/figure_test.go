package figure

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEmpty_MarshalsDataArray(t *testing.T) {
	for name, f := range map[string]Figure{
		"Empty":      Empty(),
		"zero value": {},
	} {
		data, err := json.Marshal(f)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != `{"data":[],"layout":{}}` {
			t.Errorf("%s: marshalled = %s", name, data)
		}
	}
	if !Empty().IsEmpty() {
		t.Error("Empty().IsEmpty() = false")
	}
}

func TestPie(t *testing.T) {
	f := Pie("Total Success Launches By Site", []string{"KSC", "CCAFS"}, []float64{1, 1})

	if len(f.Data) != 1 {
		t.Fatalf("got %d traces, want 1", len(f.Data))
	}
	tr := f.Data[0]
	if tr.Type != "pie" {
		t.Errorf("type = %q, want pie", tr.Type)
	}
	if len(tr.Labels) != 2 || tr.Labels[0] != "KSC" || tr.Labels[1] != "CCAFS" {
		t.Errorf("labels = %v", tr.Labels)
	}
	if f.PointCount() != 2 {
		t.Errorf("PointCount() = %d, want 2", f.PointCount())
	}
	if f.TitleText() != "Total Success Launches By Site" {
		t.Errorf("TitleText() = %q", f.TitleText())
	}
}

func TestPie_CopiesInputs(t *testing.T) {
	labels := []string{"0", "1"}
	values := []float64{3, 4}
	f := Pie("t", labels, values)
	labels[0] = "mutated"
	values[0] = 99
	if f.Data[0].Labels[0] != "0" || f.Data[0].Values[0] != 3 {
		t.Error("Pie should copy its inputs")
	}
}

func TestScatter(t *testing.T) {
	f := Scatter("corr", "Payload Mass (kg)", "class", "Booster Version Category", []Series{
		{Name: "v1", X: []float64{5000, 3000}, Y: []float64{1, 0}},
		{Name: "v2", X: []float64{2000}, Y: []float64{1}},
	})

	if len(f.Data) != 2 {
		t.Fatalf("got %d traces, want 2", len(f.Data))
	}
	for i, tr := range f.Data {
		if tr.Type != "scatter" || tr.Mode != "markers" {
			t.Errorf("trace %d: type=%q mode=%q", i, tr.Type, tr.Mode)
		}
		if tr.Marker == nil || tr.Marker.Color != Palette[i] {
			t.Errorf("trace %d: marker = %+v, want color %s", i, tr.Marker, Palette[i])
		}
	}
	if names := f.TraceNames(); names[0] != "v1" || names[1] != "v2" {
		t.Errorf("TraceNames() = %v", names)
	}
	if f.PointCount() != 3 {
		t.Errorf("PointCount() = %d, want 3", f.PointCount())
	}
	if f.Layout.XAxis.Title.Text != "Payload Mass (kg)" {
		t.Errorf("x axis title = %q", f.Layout.XAxis.Title.Text)
	}
}

func TestScatter_PaletteWraps(t *testing.T) {
	groups := make([]Series, len(Palette)+1)
	for i := range groups {
		groups[i] = Series{Name: strings.Repeat("g", i+1), X: []float64{1}, Y: []float64{1}}
	}
	f := Scatter("t", "x", "y", "g", groups)
	if f.Data[len(Palette)].Marker.Color != Palette[0] {
		t.Errorf("color after wrap = %q, want %q", f.Data[len(Palette)].Marker.Color, Palette[0])
	}
}

func TestFigure_JSONShape(t *testing.T) {
	f := Scatter("corr", "x", "y", "cat", []Series{{Name: "FT", X: []float64{1}, Y: []float64{0}}})
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	traces, ok := raw["data"].([]any)
	if !ok || len(traces) != 1 {
		t.Fatalf("data = %v", raw["data"])
	}
	tr := traces[0].(map[string]any)
	if tr["legendgroup"] != "FT" || tr["showlegend"] != true {
		t.Errorf("trace = %v", tr)
	}
	if _, ok := tr["labels"]; ok {
		t.Error("scatter trace should not carry pie labels")
	}
}
