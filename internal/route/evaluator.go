package route

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/tidwall/rtree"

	"github.com/avinya-safety/aegis/internal/geo"
	"github.com/avinya-safety/aegis/internal/models"
	"github.com/avinya-safety/aegis/internal/observability"
)

// zoneRadiusKm is the disk radius around every risk zone used for
// intersection tests.
const zoneRadiusKm = 8.0

// Score thresholds reconciling the numeric score with the categorical
// level. The score is authoritative: the categorical pass can raise the
// level but the thresholds below have the final word on High and Medium.
const (
	highScoreThreshold   = 80
	mediumScoreThreshold = 50
)

// Evaluator answers route safety requests against the current snapshot.
// Geometry comes from the provider chain, falling back to a synthetic path,
// so evaluation never fails.
type Evaluator struct {
	providers []Provider
	synthetic *SyntheticRouter
	metrics   *observability.Metrics
}

func NewEvaluator(providers []Provider, synthetic *SyntheticRouter, metrics *observability.Metrics) *Evaluator {
	return &Evaluator{
		providers: providers,
		synthetic: synthetic,
		metrics:   metrics,
	}
}

// acquireLeg walks the provider chain and degrades to the synthetic router
// when every external call fails.
func (e *Evaluator) acquireLeg(ctx context.Context, start, end models.Coordinates) (*Leg, string) {
	for _, p := range e.providers {
		leg, err := p.Directions(ctx, start, end)
		if err == nil {
			return leg, p.Name()
		}
		slog.Warn("routing provider failed", "provider", p.Name(), "error", err)
	}
	return e.synthetic.Route(start, end), e.synthetic.Name()
}

// zoneIndex is an R-tree over the snapshot's zones (expanded by the disk
// radius) so only nearby zones get exact segment tests.
func zoneIndex(zones []models.RiskZone) *rtree.RTreeG[int] {
	var tr rtree.RTreeG[int]
	for i, z := range zones {
		dLat := zoneRadiusKm * geo.DegreesPerKmLat
		dLon := zoneRadiusKm * geo.DegreesPerKmLon(z.Lat)
		tr.Insert(
			[2]float64{z.Lon - dLon, z.Lat - dLat},
			[2]float64{z.Lon + dLon, z.Lat + dLat},
			i,
		)
	}
	return &tr
}

func routeBounds(coords [][]float64) (min, max [2]float64) {
	min = [2]float64{math.Inf(1), math.Inf(1)}
	max = [2]float64{math.Inf(-1), math.Inf(-1)}
	for _, c := range coords {
		min[0] = math.Min(min[0], c[0])
		min[1] = math.Min(min[1], c[1])
		max[0] = math.Max(max[0], c[0])
		max[1] = math.Max(max[1], c[1])
	}
	return min, max
}

// Evaluate computes the full safety verdict for one route request.
func (e *Evaluator) Evaluate(ctx context.Context, start, end models.Coordinates, snap *models.Snapshot) *models.RouteResult {
	began := time.Now()

	leg, service := e.acquireLeg(ctx, start, end)

	result := &models.RouteResult{
		Route:          models.NewLineString(leg.Coordinates),
		IsSafe:         true,
		RiskLevel:      models.RiskLow,
		Warnings:       []string{},
		RiskReasons:    []string{},
		AffectedZones:  []models.AffectedZone{},
		DistanceKm:     leg.DistanceKm,
		DurationMin:    leg.DurationMin,
		RoutingService: service,
	}

	// Prefilter with the spatial index, then test candidates in snapshot
	// order so warnings stay deterministic.
	candidates := make(map[int]bool)
	tr := zoneIndex(snap.Zones)
	min, max := routeBounds(leg.Coordinates)
	tr.Search(min, max, func(_, _ [2]float64, i int) bool {
		candidates[i] = true
		return true
	})

	maxRiskScore := 0
	level := models.RiskLow
	highHit := false

	for i, zone := range snap.Zones {
		if !candidates[i] {
			continue
		}
		if !geo.PolylineIntersectsDisk(leg.Coordinates, zone.Lat, zone.Lon, zoneRadiusKm) {
			continue
		}

		if s := zone.Risk.Score(); s > maxRiskScore {
			maxRiskScore = s
		}

		distanceKm := math.Round(geo.HaversineKm(start.Lat, start.Lon, zone.Lat, zone.Lon)*10) / 10
		result.AffectedZones = append(result.AffectedZones, models.AffectedZone{
			Name:       zone.Name,
			State:      zone.State,
			Risk:       zone.Risk,
			Disaster:   zone.Disaster,
			Confidence: zone.Confidence,
			DistanceKm: distanceKm,
		})

		switch zone.Risk {
		case models.RiskHigh:
			highHit = true
			level = models.RiskHigh
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("HIGH RISK: %s, %s - %s", zone.Name, zone.State, zone.Disaster))
			result.RiskReasons = append(result.RiskReasons,
				fmt.Sprintf("Active %s in %s (%.1fkm from route)", strings.ToLower(zone.Disaster), zone.Name, distanceKm))
		case models.RiskMedium:
			if level != models.RiskHigh {
				level = models.RiskMedium
			}
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("CAUTION: %s, %s - %s", zone.Name, zone.State, zone.Disaster))
			result.RiskReasons = append(result.RiskReasons,
				fmt.Sprintf("%s watch in %s area", zone.Disaster, zone.Name))
		default:
			if level == models.RiskLow {
				result.RiskReasons = append(result.RiskReasons,
					fmt.Sprintf("Normal conditions in %s", zone.Name))
			}
		}
	}

	// Score has the final word; the categorical pass only ever raises.
	if maxRiskScore >= highScoreThreshold {
		level = models.RiskHigh
	} else if maxRiskScore >= mediumScoreThreshold && level.Severity() < models.RiskMedium.Severity() {
		level = models.RiskMedium
	}
	result.RiskLevel = level
	result.IsSafe = level != models.RiskHigh

	if maxRiskScore > 0 {
		result.RiskScore = maxRiskScore
	} else {
		result.RiskScore = models.RiskLow.Score()
	}

	if len(result.RiskReasons) == 0 {
		result.RiskReasons = append(result.RiskReasons, "Route analysis completed - no major risks detected")
	}

	if !result.IsSafe && highHit {
		result.AlternativeRoute = e.safeAlternative(start, end, snap)
	}

	if e.metrics != nil {
		outcome := "safe"
		if !result.IsSafe {
			outcome = "unsafe"
		}
		e.metrics.ObserveRoute(service, outcome, time.Since(began))
	}

	return result
}

// safeAlternative synthesizes a single-detour polyline around the midpoint.
// The candidate is validated against High zones once; if it still crosses
// one, the lateral offset is doubled for a single retry and the better
// candidate wins. Bounded on purpose: this is a suggestion, not a router.
func (e *Evaluator) safeAlternative(start, end models.Coordinates, snap *models.Snapshot) *models.AlternativeRoute {
	best := detourCandidate(start, end, 0.02)
	if crossesHighZone(best, snap) {
		if retry := detourCandidate(start, end, 0.04); !crossesHighZone(retry, snap) {
			best = retry
		}
	}

	return &models.AlternativeRoute{
		Geometry:   models.NewLineString(best),
		DistanceKm: math.Round(geo.PolylineLengthKm(best)*100) / 100,
		Type:       "Safe Alternative",
	}
}

func detourCandidate(start, end models.Coordinates, offset float64) [][]float64 {
	midLat := (start.Lat+end.Lat)/2 + offset
	midLon := (start.Lon+end.Lon)/2 + offset
	return [][]float64{
		{start.Lon, start.Lat},
		{midLon, midLat},
		{end.Lon, end.Lat},
	}
}

func crossesHighZone(coords [][]float64, snap *models.Snapshot) bool {
	for _, zone := range snap.Zones {
		if zone.Risk != models.RiskHigh {
			continue
		}
		if geo.PolylineIntersectsDisk(coords, zone.Lat, zone.Lon, zoneRadiusKm) {
			return true
		}
	}
	return false
}
