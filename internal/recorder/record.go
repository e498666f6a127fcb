package recorder

import (
	"time"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/dashboard"
)

// Transports an interaction can arrive over.
const (
	TransportHTTP = "http"
	TransportWS   = "ws"
)

// Interaction is one dispatched dashboard update.
type Interaction struct {
	Timestamp time.Time  `json:"timestamp"`
	Session   string     `json:"session,omitempty"` // ws session id or http request id
	Transport string     `json:"transport"`
	Site      string     `json:"site"`
	Payload   [2]float64 `json:"payload"`
	Changed   []string   `json:"changed,omitempty"`
}

// FromRequest captures an update request at time ts.
func FromRequest(ts time.Time, session, transport string, req dashboard.UpdateRequest) Interaction {
	return Interaction{
		Timestamp: ts,
		Session:   session,
		Transport: transport,
		Site:      req.Inputs.Site,
		Payload:   req.Inputs.Payload,
		Changed:   append([]string(nil), req.Changed...),
	}
}

// Request rebuilds the update request that produced the interaction.
func (i Interaction) Request() dashboard.UpdateRequest {
	return dashboard.UpdateRequest{
		Inputs:  dashboard.Inputs{Site: i.Site, Payload: i.Payload},
		Changed: append([]string(nil), i.Changed...),
	}
}
