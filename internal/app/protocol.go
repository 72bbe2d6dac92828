package app

import (
	"github.com/frudas24/edgewrap/internal/monitor"
	"github.com/frudas24/edgewrap/internal/topology"
)

// MessageTopology announces the current layout and its coverage.
const MessageTopology = "topology"

// Message is a websocket payload sent to topology subscribers.
type Message struct {
	T        string           `json:"t"`
	Version  int              `json:"version"`
	Reason   string           `json:"reason,omitempty"`
	Monitors []monitor.Info   `json:"monitors"`
	Edges    []topology.Edge  `json:"edges"`
	Report   *topology.Report `json:"report,omitempty"`
}
