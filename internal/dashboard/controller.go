package dashboard

import (
	"fmt"
	"strconv"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/figure"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/launch"
)

// Component ids shared by the page, the update protocol and recordings.
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
	PieChartID      = "success-pie-chart"
	ScatterChartID  = "success-payload-scatter-chart"
)

// Payload slider domain. It is fixed regardless of the data bounds.
const (
	SliderMin  = 0
	SliderMax  = 10000
	SliderStep = 1000
)

const (
	DefaultTitle = "SpaceX Launch Records Dashboard"

	xAxisTitle  = launch.ColumnPayload
	yAxisTitle  = launch.ColumnClass
	legendTitle = launch.ColumnBoosterCategory
)

// Controller derives the dashboard controls from a dataset and recomputes
// each chart from the full dataset on every call. It holds no mutable
// state, so one Controller can serve any number of concurrent requests.
type Controller struct {
	ds         *launch.Dataset
	title      string
	sites      []string
	minPayload float64
	maxPayload float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithTitle overrides the page heading.
func WithTitle(title string) Option {
	return func(c *Controller) {
		if title != "" {
			c.title = title
		}
	}
}

// New creates a Controller over ds.
func New(ds *launch.Dataset, opts ...Option) *Controller {
	lo, hi := ds.PayloadBounds()
	c := &Controller{
		ds:         ds,
		title:      DefaultTitle,
		sites:      ds.Sites(),
		minPayload: lo,
		maxPayload: hi,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dataset returns the dataset the controller reads from.
func (c *Controller) Dataset() *launch.Dataset {
	return c.ds
}

// Sites returns the dropdown options, AllSites first.
func (c *Controller) Sites() []string {
	return append([]string(nil), c.sites...)
}

// InitialRange is the slider's initial selection: the data's payload bounds.
func (c *Controller) InitialRange() launch.PayloadRange {
	return launch.PayloadRange{Low: c.minPayload, High: c.maxPayload}
}

func (c *Controller) known(site string) bool {
	for _, s := range c.sites {
		if s == site {
			return true
		}
	}
	return false
}

// Distribution renders the outcome pie chart for site. AllSites yields one
// slice per site sized by its successes; a known site yields one slice per
// outcome sized by launch count; anything else yields an empty figure.
func (c *Controller) Distribution(site string) figure.Figure {
	switch {
	case site == launch.AllSites:
		totals := c.ds.SuccessBySite()
		labels := make([]string, len(totals))
		values := make([]float64, len(totals))
		for i, t := range totals {
			labels[i] = t.Site
			values[i] = t.Total
		}
		return figure.Pie("Total Success Launches By Site", labels, values)

	case c.known(site):
		counts := c.ds.OutcomeCounts(site)
		labels := make([]string, len(counts))
		values := make([]float64, len(counts))
		for i, oc := range counts {
			labels[i] = strconv.Itoa(oc.Class)
			values[i] = float64(oc.Count)
		}
		return figure.Pie(fmt.Sprintf("Total Success Launches for site %s", site), labels, values)

	default:
		return figure.Empty()
	}
}

// Correlation renders payload against outcome for the launches whose payload
// lies strictly inside rng, restricted to site unless site is AllSites.
// Points are grouped by booster version category. Unknown sites yield an
// empty figure.
func (c *Controller) Correlation(site string, rng launch.PayloadRange) figure.Figure {
	var title string
	switch {
	case site == launch.AllSites:
		title = "Correlation between Payload and Success for All sites"
	case c.known(site):
		title = fmt.Sprintf("Correlation between Payload and Success for site %s", site)
	default:
		return figure.Empty()
	}

	records := c.ds.Select(launch.Filter{Site: site, Payload: &rng})
	return figure.Scatter(title, xAxisTitle, yAxisTitle, legendTitle, groupByCategory(records))
}

func groupByCategory(records []launch.Record) []figure.Series {
	var order []string
	groups := make(map[string]*figure.Series)
	for _, r := range records {
		g, ok := groups[r.BoosterCategory]
		if !ok {
			g = &figure.Series{Name: r.BoosterCategory}
			groups[r.BoosterCategory] = g
			order = append(order, r.BoosterCategory)
		}
		g.X = append(g.X, r.PayloadMassKG)
		g.Y = append(g.Y, float64(r.Class))
	}

	out := make([]figure.Series, 0, len(order))
	for _, name := range order {
		out = append(out, *groups[name])
	}
	return out
}
