// Package figure builds Plotly figure JSON. The browser hands the
// marshalled value straight to Plotly.react.
package figure

import "encoding/json"

// Palette is Plotly's default qualitative color sequence.
var Palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Figure is a Plotly figure: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single Plotly trace. Only the fields used by pie and
// scatter traces are modelled.
type Trace struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`

	// pie
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`

	// scatter
	Mode        string    `json:"mode,omitempty"`
	X           []float64 `json:"x,omitempty"`
	Y           []float64 `json:"y,omitempty"`
	LegendGroup string    `json:"legendgroup,omitempty"`
	ShowLegend  *bool     `json:"showlegend,omitempty"`
	Marker      *Marker   `json:"marker,omitempty"`

	HoverTemplate string `json:"hovertemplate,omitempty"`
}

// Marker styles scatter points.
type Marker struct {
	Color  string `json:"color,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// Layout is the subset of Plotly layout attributes the dashboard sets.
type Layout struct {
	Title  *Title  `json:"title,omitempty"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
}

// Title is a layout or axis title.
type Title struct {
	Text string `json:"text"`
}

// Axis configures one cartesian axis.
type Axis struct {
	Title *Title `json:"title,omitempty"`
}

// Legend configures the legend box.
type Legend struct {
	Title         *Title `json:"title,omitempty"`
	TraceGroupGap int    `json:"tracegroupgap"`
}

// Series is one named group of scatter points.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Empty returns a figure with no traces.
func Empty() Figure {
	return Figure{Data: []Trace{}}
}

// Pie returns a single-trace pie chart. Labels and values are paired by index.
func Pie(title string, labels []string, values []float64) Figure {
	return Figure{
		Data: []Trace{{
			Type:          "pie",
			Labels:        append([]string(nil), labels...),
			Values:        append([]float64(nil), values...),
			HoverTemplate: "%{label}<br>%{value}<extra></extra>",
		}},
		Layout: Layout{
			Title:  &Title{Text: title},
			Legend: &Legend{},
		},
	}
}

// Scatter returns a marker-only scatter chart with one trace per series,
// colored from Palette in series order.
func Scatter(title, xTitle, yTitle, legendTitle string, groups []Series) Figure {
	show := true
	traces := make([]Trace, 0, len(groups))
	for i, g := range groups {
		traces = append(traces, Trace{
			Type:        "scatter",
			Mode:        "markers",
			Name:        g.Name,
			LegendGroup: g.Name,
			ShowLegend:  &show,
			X:           append([]float64(nil), g.X...),
			Y:           append([]float64(nil), g.Y...),
			Marker: &Marker{
				Color:  Palette[i%len(Palette)],
				Symbol: "circle",
			},
			HoverTemplate: legendTitle + "=" + g.Name + "<br>" + xTitle + "=%{x}<br>" + yTitle + "=%{y}<extra></extra>",
		})
	}
	return Figure{
		Data: traces,
		Layout: Layout{
			Title:  &Title{Text: title},
			XAxis:  &Axis{Title: &Title{Text: xTitle}},
			YAxis:  &Axis{Title: &Title{Text: yTitle}},
			Legend: &Legend{Title: &Title{Text: legendTitle}},
		},
	}
}

// IsEmpty reports whether the figure has no traces.
func (f Figure) IsEmpty() bool {
	return len(f.Data) == 0
}

// PointCount returns the number of data points across all traces.
// Pie slices count as points.
func (f Figure) PointCount() int {
	n := 0
	for _, t := range f.Data {
		if t.Type == "pie" {
			n += len(t.Values)
			continue
		}
		n += len(t.X)
	}
	return n
}

// TraceNames returns the trace names in order.
func (f Figure) TraceNames() []string {
	names := make([]string, len(f.Data))
	for i, t := range f.Data {
		names[i] = t.Name
	}
	return names
}

// TitleText returns the layout title, or "" when unset.
func (f Figure) TitleText() string {
	if f.Layout.Title == nil {
		return ""
	}
	return f.Layout.Title.Text
}

// MarshalJSON keeps "data" an array for figures built as zero values.
func (f Figure) MarshalJSON() ([]byte, error) {
	type plain Figure
	if f.Data == nil {
		f.Data = []Trace{}
	}
	return json.Marshal(plain(f))
}
