// Package generate creates synthetic launch datasets and interaction
// recordings for demos, load experiments and tests.
package generate

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/Chamz87/IBM-Capstone-SCE/pkg/dashboard"
	"github.com/Chamz87/IBM-Capstone-SCE/pkg/recorder"
)

// BoosterEra describes one booster generation: where it flew, the payloads
// it carried and how often it succeeded.
type BoosterEra struct {
	Category    string
	Sites       []string
	MinPayload  float64
	MaxPayload  float64
	SuccessRate float64
}

// DefaultEras follows the Falcon 9 booster generations in flight order.
var DefaultEras = []BoosterEra{
	{"v1.0", []string{"CCAFS LC-40"}, 0, 700, 0.2},
	{"v1.1", []string{"CCAFS LC-40", "VAFB SLC-4E"}, 500, 5000, 0.3},
	{"FT", []string{"CCAFS LC-40", "KSC LC-39A", "VAFB SLC-4E"}, 300, 9600, 0.65},
	{"B4", []string{"KSC LC-39A", "VAFB SLC-4E", "CCAFS SLC-40"}, 2000, 9600, 0.55},
	{"B5", []string{"KSC LC-39A", "CCAFS SLC-40", "VAFB SLC-4E"}, 3000, 9600, 0.9},
}

// LaunchOptions controls GenerateLaunches.
type LaunchOptions struct {
	Count int
	Seed  int64
	Eras  []BoosterEra
}

// DefaultLaunchOptions matches the size of the public launch dataset.
func DefaultLaunchOptions() LaunchOptions {
	return LaunchOptions{Count: 56}
}

// GenerateLaunches spreads Count flights evenly across the eras, in order.
// Payloads are whole kilograms.
func GenerateLaunches(opts LaunchOptions) ([]dashboard.Record, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", opts.Count)
	}
	if len(opts.Eras) == 0 {
		opts.Eras = DefaultEras
	}
	for _, e := range opts.Eras {
		if len(e.Sites) == 0 {
			return nil, fmt.Errorf("era %q has no sites", e.Category)
		}
		if e.MaxPayload < e.MinPayload {
			return nil, fmt.Errorf("era %q: max payload %g below min %g", e.Category, e.MaxPayload, e.MinPayload)
		}
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	records := make([]dashboard.Record, opts.Count)
	for i := range records {
		era := opts.Eras[i*len(opts.Eras)/opts.Count]
		class := 0
		if rng.Float64() < era.SuccessRate {
			class = 1
		}
		payload := era.MinPayload + rng.Float64()*(era.MaxPayload-era.MinPayload)
		records[i] = dashboard.Record{
			Site:            era.Sites[rng.Intn(len(era.Sites))],
			PayloadMassKG:   math.Round(payload),
			BoosterCategory: era.Category,
			Class:           class,
		}
	}
	return records, nil
}

const (
	// PatternSteady generates evenly spaced interactions.
	PatternSteady = "steady"
	// PatternBurst generates clustered bursts with quiet gaps.
	PatternBurst = "burst"
	// PatternRamp generates interaction density that increases over time.
	PatternRamp = "ramp"
)

// InteractionOptions controls GenerateInteractions.
type InteractionOptions struct {
	Count    int
	Sessions int
	Duration time.Duration
	Pattern  string
	Start    time.Time
	Seed     int64
	// Sites to pick from; defaults to AllSites plus the DefaultEras sites.
	Sites []string
}

// DefaultInteractionOptions returns defaults aligned with the CLI.
func DefaultInteractionOptions() InteractionOptions {
	return InteractionOptions{
		Count:    100,
		Sessions: 3,
		Duration: 5 * time.Minute,
		Pattern:  PatternSteady,
	}
}

// GenerateInteractions creates a synthetic recording of dashboard sessions.
// Each session opens with an initial render, then changes the site or the
// payload range one control at a time.
func GenerateInteractions(opts InteractionOptions) ([]recorder.Interaction, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", opts.Count)
	}
	if opts.Sessions <= 0 {
		return nil, fmt.Errorf("sessions must be positive, got %d", opts.Sessions)
	}
	if opts.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %s", opts.Duration)
	}
	if opts.Pattern == "" {
		opts.Pattern = PatternSteady
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now().Truncate(time.Second)
	}
	if len(opts.Sites) == 0 {
		opts.Sites = defaultSites()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	var times []time.Time
	switch opts.Pattern {
	case PatternBurst:
		times = burstTimes(rng, opts.Start, opts.Count, opts.Duration)
	case PatternRamp:
		times = rampTimes(opts.Start, opts.Count, opts.Duration)
	default: // steady and unknown patterns default to steady behavior.
		times = steadyTimes(opts.Start, opts.Count, opts.Duration)
	}

	sessions := make([]sessionState, opts.Sessions)
	for i := range sessions {
		sessions[i] = sessionState{
			id:      fmt.Sprintf("session-%d", i+1),
			site:    dashboard.AllSites,
			payload: [2]float64{0, 10000},
		}
	}

	records := make([]recorder.Interaction, len(times))
	for i, ts := range times {
		s := &sessions[rng.Intn(len(sessions))]
		in := recorder.Interaction{
			Timestamp: ts,
			Session:   s.id,
			Transport: recorder.TransportWS,
		}
		switch {
		case !s.started:
			s.started = true
		case rng.Intn(2) == 0:
			s.site = opts.Sites[rng.Intn(len(opts.Sites))]
			in.Changed = []string{dashboard.SiteDropdownID}
		default:
			lo := float64(rng.Intn(10)) * 1000
			hi := lo + float64(1+rng.Intn(10-int(lo/1000)))*1000
			s.payload = [2]float64{lo, hi}
			in.Changed = []string{dashboard.PayloadSliderID}
		}
		in.Site = s.site
		in.Payload = s.payload
		records[i] = in
	}
	return records, nil
}

type sessionState struct {
	id      string
	started bool
	site    string
	payload [2]float64
}

func defaultSites() []string {
	sites := []string{dashboard.AllSites}
	seen := make(map[string]bool)
	for _, e := range DefaultEras {
		for _, s := range e.Sites {
			if !seen[s] {
				seen[s] = true
				sites = append(sites, s)
			}
		}
	}
	return sites
}

func steadyTimes(start time.Time, count int, dur time.Duration) []time.Time {
	interval := dur / time.Duration(count)
	times := make([]time.Time, count)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * interval)
	}
	return times
}

func burstTimes(rng *rand.Rand, start time.Time, count int, dur time.Duration) []time.Time {
	times := make([]time.Time, 0, count)
	numBursts := 4
	burstSize := count / numBursts
	burstGap := dur / time.Duration(numBursts)

	for b := 0; b < numBursts; b++ {
		burstStart := start.Add(time.Duration(b) * burstGap)
		offset := time.Duration(0)
		for i := 0; i < burstSize; i++ {
			// Interactions within a burst are very close together.
			offset += time.Duration(rng.Intn(250)) * time.Millisecond
			times = append(times, burstStart.Add(offset))
		}
	}

	last := start
	if len(times) > 0 {
		last = times[len(times)-1]
	}
	for len(times) < count {
		last = last.Add(time.Duration(rng.Intn(1000)) * time.Millisecond)
		times = append(times, last)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times
}

func rampTimes(start time.Time, count int, dur time.Duration) []time.Time {
	times := make([]time.Time, count)
	// Quadratic spacing concentrates interactions towards the end.
	for i := range times {
		frac := float64(i) / float64(count)
		times[i] = start.Add(time.Duration(frac * frac * float64(dur)))
	}
	return times
}
