// Package dashboard exposes the launch dataset and the chart controller for
// embedding the dashboard's computations in other programs.
package dashboard

import (
	"io"

	internaldashboard "github.com/Chamz87/IBM-Capstone-SCE/internal/dashboard"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/figure"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/launch"
)

// Component ids.
const (
	SiteDropdownID  = internaldashboard.SiteDropdownID
	PayloadSliderID = internaldashboard.PayloadSliderID
	PieChartID      = internaldashboard.PieChartID
	ScatterChartID  = internaldashboard.ScatterChartID
)

// AllSites selects every launch site.
const AllSites = launch.AllSites

// Record is a single launch attempt.
type Record = launch.Record

// Dataset is the immutable collection of launch records.
type Dataset = launch.Dataset

// PayloadRange is an exclusive payload interval in kg.
type PayloadRange = launch.PayloadRange

// Figure is a Plotly figure.
type Figure = figure.Figure

// Controller computes the dashboard charts.
type Controller = internaldashboard.Controller

// Option configures a Controller.
type Option = internaldashboard.Option

// Layout describes the dashboard page.
type Layout = internaldashboard.Layout

// Inputs are the current values of both controls.
type Inputs = internaldashboard.Inputs

// UpdateRequest asks for the outputs that depend on the changed inputs.
type UpdateRequest = internaldashboard.UpdateRequest

// UpdateResponse maps output ids to recomputed figures.
type UpdateResponse = internaldashboard.UpdateResponse

// NewDataset builds a dataset from records.
func NewDataset(records []Record) *Dataset {
	return launch.NewDataset(records)
}

// ReadCSV parses a launch CSV. Rows that cannot be parsed are skipped and
// passed to warn, which may be nil.
func ReadCSV(r io.Reader, warn func(line int, err error)) (*Dataset, error) {
	return launch.ReadCSV(r, warn)
}

// WriteCSV writes records in the layout ReadCSV accepts.
func WriteCSV(w io.Writer, records []Record) error {
	return launch.WriteCSV(w, records)
}

// New creates a Controller over ds.
func New(ds *Dataset, opts ...Option) *Controller {
	return internaldashboard.New(ds, opts...)
}

// WithTitle overrides the page heading.
func WithTitle(title string) Option {
	return internaldashboard.WithTitle(title)
}
