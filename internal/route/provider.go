// Package route implements the route safety evaluator: geometry acquisition
// from external routing providers with a synthetic fallback, and risk
// analysis of the resulting polyline against the current snapshot.
package route

import (
	"context"
	"errors"

	"github.com/avinya-safety/aegis/internal/models"
)

// Leg is a single routed path between two points.
type Leg struct {
	// Coordinates are [lon, lat] pairs, GeoJSON order.
	Coordinates [][]float64
	DistanceKm  float64
	DurationMin int
}

// Provider produces turn-by-turn route geometry from an external service.
type Provider interface {
	Name() string
	Directions(ctx context.Context, start, end models.Coordinates) (*Leg, error)
}

var (
	// ErrNoRoute is returned when a provider answers without any route.
	ErrNoRoute = errors.New("no route found")

	// ErrCircuitOpen is returned when a provider's circuit breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker is open")
)
