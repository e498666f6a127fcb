package recorder

import (
	"io"
	"time"

	internalrecorder "github.com/Chamz87/IBM-Capstone-SCE/internal/recorder"
	"github.com/Chamz87/IBM-Capstone-SCE/pkg/dashboard"
)

// Transports an interaction can arrive over.
const (
	TransportHTTP = internalrecorder.TransportHTTP
	TransportWS   = internalrecorder.TransportWS
)

// Interaction is one dispatched dashboard update.
type Interaction = internalrecorder.Interaction

// Recorder captures interactions for later replay.
type Recorder = internalrecorder.Recorder

// New creates a new Recorder.
func New(w io.Writer) *Recorder {
	return internalrecorder.New(w)
}

// FromRequest captures an update request at time ts.
func FromRequest(ts time.Time, session, transport string, req dashboard.UpdateRequest) Interaction {
	return internalrecorder.FromRequest(ts, session, transport, req)
}

// LoadJSON reads interactions from a JSON array.
func LoadJSON(r io.Reader) ([]Interaction, error) {
	return internalrecorder.LoadJSON(r)
}
