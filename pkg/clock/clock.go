// Package clock exposes the time sources launchdash stamps recordings with
// and paces replays against.
package clock

import (
	"time"

	internalclock "github.com/Chamz87/IBM-Capstone-SCE/internal/clock"
)

// Clock is the time source of the server's recorder and the replayer.
type Clock = internalclock.Clock

// RealClock is wall time, used by `launchdash serve`.
type RealClock = internalclock.RealClock

// VirtualClock only moves when advanced; replays run on it.
type VirtualClock = internalclock.VirtualClock

// NewRealClock returns the wall clock.
func NewRealClock() *RealClock {
	return internalclock.NewRealClock()
}

// NewVirtualClock returns a clock frozen at start, typically the timestamp
// of the first recorded interaction.
func NewVirtualClock(start time.Time) *VirtualClock {
	return internalclock.NewVirtualClock(start)
}
