package replay

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/clock"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/dashboard"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/figure"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/recorder"
)

// Replayer re-dispatches recorded interactions against a controller.
type Replayer struct {
	records []recorder.Interaction
	ctrl    *dashboard.Controller
	clock   *clock.VirtualClock
	filter  Filter
	speed   float64 // 0 = instant, 1 = recorded pace, 10 = 10x
}

// OutputSummary condenses one recomputed figure.
type OutputSummary struct {
	Title  string `json:"title"`
	Traces int    `json:"traces"`
	Points int    `json:"points"`
}

// Result is the outcome of replaying one interaction.
type Result struct {
	Interaction recorder.Interaction     `json:"interaction"`
	Outputs     map[string]OutputSummary `json:"outputs"`
	Time        time.Time                `json:"time"` // virtual time of dispatch
}

// Summary aggregates a replay run.
type Summary struct {
	TotalRecords int            `json:"total_records"`
	Filtered     int            `json:"filtered"`
	Replayed     int            `json:"replayed"`
	EmptyOutputs int            `json:"empty_outputs"`
	PerSite      map[string]int `json:"per_site"`
	Duration     time.Duration  `json:"duration"`      // recorded time span
	WallDuration time.Duration  `json:"wall_duration"` // actual time taken
}

// New creates a replayer. Negative speeds are treated as instant.
func New(ctrl *dashboard.Controller, vc *clock.VirtualClock, speed float64, filter Filter) *Replayer {
	if speed < 0 {
		speed = 0
	}
	return &Replayer{
		ctrl:   ctrl,
		clock:  vc,
		speed:  speed,
		filter: filter,
	}
}

// Load reads interactions from a JSON array.
func (r *Replayer) Load(reader io.Reader) error {
	records, err := recorder.LoadJSON(reader)
	if err != nil {
		return fmt.Errorf("loading interactions: %w", err)
	}
	r.records = records
	return nil
}

// LoadRecords sets the interactions directly.
func (r *Replayer) LoadRecords(records []recorder.Interaction) {
	r.records = append([]recorder.Interaction(nil), records...)
}

// Run replays the loaded interactions in timestamp order, calling cb for
// each one. The virtual clock advances by the recorded gaps.
func (r *Replayer) Run(ctx context.Context, cb func(Result)) (*Summary, error) {
	if len(r.records) == 0 {
		return nil, fmt.Errorf("no interactions loaded")
	}

	sorted := append([]recorder.Interaction(nil), r.records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var filtered []recorder.Interaction
	for _, in := range sorted {
		if r.filter.Match(in) {
			filtered = append(filtered, in)
		}
	}

	summary := &Summary{
		TotalRecords: len(sorted),
		Filtered:     len(filtered),
		PerSite:      make(map[string]int),
	}
	if len(filtered) == 0 {
		return summary, nil
	}

	wallStart := time.Now()
	for i, in := range filtered {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if i > 0 {
			if gap := in.Timestamp.Sub(filtered[i-1].Timestamp); gap > 0 {
				if err := r.wait(ctx, gap); err != nil {
					return summary, err
				}
				r.clock.Advance(gap)
			}
		}

		resp := r.ctrl.Update(in.Request())
		res := Result{
			Interaction: in,
			Outputs:     make(map[string]OutputSummary, len(resp.Outputs)),
			Time:        r.clock.Now(),
		}
		for id, f := range resp.Outputs {
			res.Outputs[id] = summarize(f)
			if f.IsEmpty() {
				summary.EmptyOutputs++
			}
		}

		summary.Replayed++
		summary.PerSite[in.Site]++
		if cb != nil {
			cb(res)
		}
	}

	summary.Duration = filtered[len(filtered)-1].Timestamp.Sub(filtered[0].Timestamp)
	summary.WallDuration = time.Since(wallStart)
	return summary, nil
}

// wait sleeps for the recorded gap scaled by speed. Instant replays return at once.
func (r *Replayer) wait(ctx context.Context, gap time.Duration) error {
	if r.speed == 0 {
		return nil
	}
	scaled := time.Duration(float64(gap) / r.speed)
	if scaled <= time.Millisecond {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(scaled):
		return nil
	}
}

func summarize(f figure.Figure) OutputSummary {
	return OutputSummary{
		Title:  f.TitleText(),
		Traces: len(f.Data),
		Points: f.PointCount(),
	}
}
