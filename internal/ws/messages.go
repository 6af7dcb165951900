package ws

import (
	"encoding/json"
	"time"

	"github.com/avinya-safety/aegis/internal/models"
)

// Message type discriminators on the wire.
const (
	TypeRiskUpdate = "RISK_UPDATE"
	TypeSOS        = "SOS"
	TypeSOSAlert   = "SOS_ALERT"
)

// RiskUpdateMessage pushes the full current snapshot to clients.
type RiskUpdateMessage struct {
	Type       string            `json:"type"`
	Data       []models.RiskZone `json:"data"`
	TotalZones int               `json:"totalZones"`
	LastUpdate time.Time         `json:"lastUpdate"`
	Coverage   string            `json:"coverage"`
}

// InboundMessage is the envelope for client-to-server messages.
type InboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SosAlertMessage relays a stamped SOS payload to every client. Data keeps
// the sender's payload fields plus the server-generated id and timestamp.
type SosAlertMessage struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

func newRiskUpdate(snap *models.Snapshot) RiskUpdateMessage {
	return RiskUpdateMessage{
		Type:       TypeRiskUpdate,
		Data:       snap.Zones,
		TotalZones: len(snap.Zones),
		LastUpdate: snap.UpdatedAt,
		Coverage:   "All India",
	}
}
