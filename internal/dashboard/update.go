package dashboard

import (
	"github.com/Chamz87/IBM-Capstone-SCE/internal/figure"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/launch"
)

// Inputs are the current values of both controls.
type Inputs struct {
	Site    string     `json:"site"`
	Payload [2]float64 `json:"payload"`
}

// Range converts the slider value to a payload range.
func (in Inputs) Range() launch.PayloadRange {
	return launch.PayloadRange{Low: in.Payload[0], High: in.Payload[1]}
}

// UpdateRequest asks for the outputs that depend on the changed inputs.
// An empty Changed list means the initial render: every output.
type UpdateRequest struct {
	Inputs  Inputs   `json:"inputs"`
	Changed []string `json:"changed,omitempty"`
}

// UpdateResponse maps output ids to their recomputed figures.
type UpdateResponse struct {
	Outputs map[string]figure.Figure `json:"outputs"`
}

// dependents lists, per input, the outputs it triggers.
var dependents = map[string][]string{
	SiteDropdownID:  {PieChartID, ScatterChartID},
	PayloadSliderID: {ScatterChartID},
}

// Affected returns the outputs triggered by the changed inputs, in page order.
func Affected(changed []string) []string {
	if len(changed) == 0 {
		return []string{PieChartID, ScatterChartID}
	}
	hit := make(map[string]bool)
	for _, id := range changed {
		for _, out := range dependents[id] {
			hit[out] = true
		}
	}
	var out []string
	for _, id := range []string{PieChartID, ScatterChartID} {
		if hit[id] {
			out = append(out, id)
		}
	}
	return out
}

// Update runs one synchronous recomputation per affected output.
func (c *Controller) Update(req UpdateRequest) UpdateResponse {
	resp := UpdateResponse{Outputs: make(map[string]figure.Figure)}
	for _, id := range Affected(req.Changed) {
		switch id {
		case PieChartID:
			resp.Outputs[id] = c.Distribution(req.Inputs.Site)
		case ScatterChartID:
			resp.Outputs[id] = c.Correlation(req.Inputs.Site, req.Inputs.Range())
		}
	}
	return resp
}
