package launch

// AllSites is the synthetic site option that selects every launch site.
const AllSites = "All Sites"

// CSV column names of the launch dataset.
const (
	ColumnSite            = "Launch Site"
	ColumnPayload         = "Payload Mass (kg)"
	ColumnBoosterCategory = "Booster Version Category"
	ColumnClass           = "class"
)

// Record is a single launch attempt.
type Record struct {
	Site            string  `json:"site"`
	PayloadMassKG   float64 `json:"payload_mass_kg"`
	BoosterCategory string  `json:"booster_category"`
	Class           int     `json:"class"` // 1 = success, 0 = failure
}

// PayloadRange bounds a payload mass selection. Both ends are exclusive.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether v lies strictly between Low and High.
func (r PayloadRange) Contains(v float64) bool {
	return v > r.Low && v < r.High
}

// Filter selects launch records by site and payload range.
type Filter struct {
	Site    string        // "" or AllSites matches every site
	Payload *PayloadRange // nil = no payload constraint
}

// Match returns true if the record passes the filter.
func (f Filter) Match(r Record) bool {
	if f.Site != "" && f.Site != AllSites && r.Site != f.Site {
		return false
	}
	if f.Payload != nil && !f.Payload.Contains(r.PayloadMassKG) {
		return false
	}
	return true
}

// SiteTotal is the summed outcome of all launches from one site.
type SiteTotal struct {
	Site  string  `json:"site"`
	Total float64 `json:"total"`
}

// OutcomeCount is the number of launches with a given outcome.
type OutcomeCount struct {
	Class int `json:"class"`
	Count int `json:"count"`
}
