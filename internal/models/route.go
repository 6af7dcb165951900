package models

// LineString is an ordered sequence of [lon, lat] pairs (GeoJSON order).
type LineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// NewLineString wraps coordinates in a GeoJSON LineString.
func NewLineString(coords [][]float64) LineString {
	return LineString{Type: "LineString", Coordinates: coords}
}

// AffectedZone describes one risk zone intersecting an evaluated route.
type AffectedZone struct {
	Name       string    `json:"name"`
	State      string    `json:"state"`
	Risk       RiskLevel `json:"risk"`
	Disaster   string    `json:"disaster"`
	Confidence int       `json:"confidence"`
	DistanceKm float64   `json:"distance"`
}

// AlternativeRoute is a single-detour candidate offered when the primary
// route is unsafe. It carries no risk breakdown of its own.
type AlternativeRoute struct {
	Geometry   LineString `json:"geometry"`
	DistanceKm float64    `json:"distance"`
	Type       string     `json:"type"`
}

// RouteResult is the full answer to a route safety request. Computed fresh
// per request, never stored.
type RouteResult struct {
	Route            LineString        `json:"route"`
	IsSafe           bool              `json:"isSafe"`
	RiskLevel        RiskLevel         `json:"riskLevel"`
	RiskScore        int               `json:"riskScore"`
	Warnings         []string          `json:"warnings"`
	RiskReasons      []string          `json:"riskReasons"`
	AffectedZones    []AffectedZone    `json:"affectedZones"`
	DistanceKm       float64           `json:"distance"`
	DurationMin      int               `json:"duration"`
	AlternativeRoute *AlternativeRoute `json:"alternativeRoute"`
	RoutingService   string            `json:"routingService"`
}
