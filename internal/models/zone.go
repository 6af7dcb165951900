package models

import (
	"strings"
	"time"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Score maps a categorical level to its base numeric score.
func (r RiskLevel) Score() int {
	switch r {
	case RiskHigh:
		return 85
	case RiskMedium:
		return 55
	default:
		return 25
	}
}

// Severity orders levels for comparisons (High > Medium > Low).
func (r RiskLevel) Severity() int {
	switch r {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

// Color returns the map marker color used by the frontend.
func (r RiskLevel) Color() string {
	switch r {
	case RiskHigh:
		return "#dc2626"
	case RiskMedium:
		return "#f59e0b"
	default:
		return "#10b981"
	}
}

// RiskZone is a point-radius hazard region. Zones are rebuilt wholesale on
// every feed refresh; no identity survives across refreshes.
type RiskZone struct {
	Name         string    `json:"name"`
	State        string    `json:"state"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	Risk         RiskLevel `json:"risk"`
	Disaster     string    `json:"disaster"`
	Color        string    `json:"color"`
	RiskScore    int       `json:"riskScore"`
	Confidence   int       `json:"confidence"`
	Reasons      []string  `json:"reasons"`
	LastUpdated  time.Time `json:"lastUpdated"`
	Source       string    `json:"newsSource"`
	SourceTitle  string    `json:"newsTitle"`
	LocationType string    `json:"locationType"`
}

// Snapshot is the complete set of risk zones at a point in time. It is
// replaced by reference on refresh, never edited in place, so readers
// always observe a consistent set.
type Snapshot struct {
	Zones     []RiskZone
	UpdatedAt time.Time
}

// Article is one item of feed input: a headline plus body text tagged with
// the disaster it reports. Real or simulated sources both produce these.
type Article struct {
	Title       string
	Description string
	Disaster    string
	PublishedAt time.Time
	Source      string
}

// Text returns the lowercased title+description used for keyword scanning.
func (a Article) Text() string {
	return strings.ToLower(a.Title + " " + a.Description)
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
