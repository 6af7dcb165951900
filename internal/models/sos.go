package models

import "time"

// SosAlert is an ephemeral emergency broadcast. It exists only as a relayed
// message; nothing is persisted and clients only see alerts sent after they
// connected.
type SosAlert struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId,omitempty"`
	UserName      string    `json:"userName,omitempty"`
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	Message       string    `json:"message,omitempty"`
	EmergencyType string    `json:"emergencyType,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
