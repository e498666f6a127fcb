package launch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Dataset is the immutable, ordered collection of launch records.
// It is loaded once and is safe for concurrent readers.
type Dataset struct {
	records []Record
	sites   []string // distinct, first-appearance order
	min     float64
	max     float64
}

// WarnFunc receives rows that were skipped while loading.
type WarnFunc func(line int, err error)

// NewDataset builds a dataset from records. The slice is copied.
func NewDataset(records []Record) *Dataset {
	ds := &Dataset{
		records: make([]Record, len(records)),
	}
	copy(ds.records, records)

	seen := make(map[string]bool)
	for i, r := range ds.records {
		if !seen[r.Site] {
			seen[r.Site] = true
			ds.sites = append(ds.sites, r.Site)
		}
		if i == 0 || r.PayloadMassKG < ds.min {
			ds.min = r.PayloadMassKG
		}
		if i == 0 || r.PayloadMassKG > ds.max {
			ds.max = r.PayloadMassKG
		}
	}
	return ds
}

// ReadCSV parses a launch CSV with a header row. Columns other than the
// four required ones are ignored. Rows whose payload is not a finite number
// or whose class is not an integer are skipped and reported to warn (which
// may be nil).
func ReadCSV(r io.Reader, warn WarnFunc) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading header: empty input")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range []string{ColumnSite, ColumnPayload, ColumnBoosterCategory, ColumnClass} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			report(warn, line, err)
			continue
		}
		rec, err := parseRow(row, idx)
		if err != nil {
			report(warn, line, err)
			continue
		}
		records = append(records, rec)
	}

	return NewDataset(records), nil
}

func parseRow(row []string, idx map[string]int) (Record, error) {
	field := func(col string) (string, error) {
		i := idx[col]
		if i >= len(row) {
			return "", fmt.Errorf("column %q missing from row", col)
		}
		return strings.TrimSpace(row[i]), nil
	}

	site, err := field(ColumnSite)
	if err != nil {
		return Record{}, err
	}
	booster, err := field(ColumnBoosterCategory)
	if err != nil {
		return Record{}, err
	}
	rawPayload, err := field(ColumnPayload)
	if err != nil {
		return Record{}, err
	}
	rawClass, err := field(ColumnClass)
	if err != nil {
		return Record{}, err
	}

	payload, err := strconv.ParseFloat(rawPayload, 64)
	if err != nil {
		return Record{}, fmt.Errorf("parsing payload %q: %w", rawPayload, err)
	}
	if math.IsNaN(payload) || math.IsInf(payload, 0) {
		return Record{}, fmt.Errorf("payload %q is not a finite number", rawPayload)
	}
	class, err := strconv.ParseFloat(rawClass, 64)
	if err != nil {
		return Record{}, fmt.Errorf("parsing class %q: %w", rawClass, err)
	}
	if math.IsNaN(class) || math.IsInf(class, 0) || class != math.Trunc(class) {
		return Record{}, fmt.Errorf("class %q is not an integer", rawClass)
	}

	return Record{
		Site:            site,
		PayloadMassKG:   payload,
		BoosterCategory: booster,
		Class:           int(class),
	}, nil
}

func report(warn WarnFunc, line int, err error) {
	if warn != nil {
		warn(line, err)
	}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of all records in load order.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Sites returns AllSites followed by every distinct site in the order it
// first appears in the dataset.
func (d *Dataset) Sites() []string {
	out := make([]string, 0, len(d.sites)+1)
	out = append(out, AllSites)
	return append(out, d.sites...)
}

// HasSite reports whether name is AllSites or a site present in the dataset.
func (d *Dataset) HasSite(name string) bool {
	if name == AllSites {
		return true
	}
	for _, s := range d.sites {
		if s == name {
			return true
		}
	}
	return false
}

// PayloadBounds returns the minimum and maximum payload mass.
// Both are zero for an empty dataset.
func (d *Dataset) PayloadBounds() (lo, hi float64) {
	return d.min, d.max
}

// Select returns the records that match f, in load order.
func (d *Dataset) Select(f Filter) []Record {
	var out []Record
	for _, r := range d.records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// SuccessBySite sums the outcome per site, in site order.
func (d *Dataset) SuccessBySite() []SiteTotal {
	totals := make(map[string]float64, len(d.sites))
	for _, r := range d.records {
		totals[r.Site] += float64(r.Class)
	}
	out := make([]SiteTotal, 0, len(d.sites))
	for _, s := range d.sites {
		out = append(out, SiteTotal{Site: s, Total: totals[s]})
	}
	return out
}

// OutcomeCounts groups the records of one site by outcome, ascending by
// class. Only outcomes that occur are returned.
func (d *Dataset) OutcomeCounts(site string) []OutcomeCount {
	counts := make(map[int]int)
	for _, r := range d.records {
		if r.Site == site {
			counts[r.Class]++
		}
	}
	out := make([]OutcomeCount, 0, len(counts))
	for class, n := range counts {
		out = append(out, OutcomeCount{Class: class, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Class < out[j].Class })
	return out
}
