package dashboard

import "strconv"

// Layout describes the page: heading, both controls and the graph panels.
type Layout struct {
	Title    string   `json:"title"`
	Dropdown Dropdown `json:"dropdown"`
	Slider   Slider   `json:"slider"`
	Graphs   []string `json:"graphs"`
}

// DropdownOption is a dropdown entry.
type DropdownOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown is the single-choice site selector.
type Dropdown struct {
	ID          string           `json:"id"`
	Options     []DropdownOption `json:"options"`
	Value       string           `json:"value"`
	Placeholder string           `json:"placeholder"`
}

// Slider is the two-handle payload range selector.
type Slider struct {
	ID    string            `json:"id"`
	Label string            `json:"label"`
	Min   float64           `json:"min"`
	Max   float64           `json:"max"`
	Step  float64           `json:"step"`
	Value [2]float64        `json:"value"`
	Marks map[string]string `json:"marks"`
}

// Layout returns the page description. The initial slider value is the
// dataset's payload bounds; the slider domain is always 0-10000 kg.
func (c *Controller) Layout() Layout {
	options := make([]DropdownOption, len(c.sites))
	for i, s := range c.sites {
		options[i] = DropdownOption{Label: s, Value: s}
	}

	marks := make(map[string]string)
	for v := SliderMin; v <= SliderMax; v += SliderStep {
		marks[strconv.Itoa(v)] = strconv.Itoa(v) + " kg"
	}

	return Layout{
		Title: c.title,
		Dropdown: Dropdown{
			ID:          SiteDropdownID,
			Options:     options,
			Value:       c.sites[0],
			Placeholder: "Select a Launch Site here",
		},
		Slider: Slider{
			ID:    PayloadSliderID,
			Label: "Payload range (Kg):",
			Min:   SliderMin,
			Max:   SliderMax,
			Step:  SliderStep,
			Value: [2]float64{c.minPayload, c.maxPayload},
			Marks: marks,
		},
		Graphs: []string{PieChartID, ScatterChartID},
	}
}

// InitialRequest is the update a fresh page issues: default inputs, every output.
func (c *Controller) InitialRequest() UpdateRequest {
	r := c.InitialRange()
	return UpdateRequest{
		Inputs: Inputs{Site: c.sites[0], Payload: [2]float64{r.Low, r.High}},
	}
}
