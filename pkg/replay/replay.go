package replay

import (
	internalreplay "github.com/Chamz87/IBM-Capstone-SCE/internal/replay"
	"github.com/Chamz87/IBM-Capstone-SCE/pkg/clock"
	"github.com/Chamz87/IBM-Capstone-SCE/pkg/dashboard"
)

// Filter defines criteria for selecting interactions during replay.
type Filter = internalreplay.Filter

// Replayer re-dispatches recorded interactions against a controller.
type Replayer = internalreplay.Replayer

// Result captures the outcome of replaying a single interaction.
type Result = internalreplay.Result

// OutputSummary condenses one recomputed figure.
type OutputSummary = internalreplay.OutputSummary

// Summary aggregates replay statistics.
type Summary = internalreplay.Summary

// New creates a new replayer.
func New(ctrl *dashboard.Controller, vc *clock.VirtualClock, speed float64, filter Filter) *Replayer {
	return internalreplay.New(ctrl, vc, speed, filter)
}
