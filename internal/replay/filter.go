package replay

import (
	"slices"
	"time"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/recorder"
)

// Filter selects recorded interactions for replay.
type Filter struct {
	Sessions []string  // only these sessions (empty = all)
	Sites    []string  // only these site selections (empty = all)
	After    time.Time // only interactions after this time (zero = no limit)
	Before   time.Time // only interactions before this time (zero = no limit)
}

// Match returns true if the interaction passes the filter.
func (f *Filter) Match(in recorder.Interaction) bool {
	if len(f.Sessions) > 0 && !slices.Contains(f.Sessions, in.Session) {
		return false
	}
	if len(f.Sites) > 0 && !slices.Contains(f.Sites, in.Site) {
		return false
	}
	if !f.After.IsZero() && !in.Timestamp.After(f.After) {
		return false
	}
	if !f.Before.IsZero() && !in.Timestamp.Before(f.Before) {
		return false
	}
	return true
}
