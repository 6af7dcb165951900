package route

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avinya-safety/aegis/internal/models"
)

var (
	delhi = models.Coordinates{Lat: 28.6139, Lon: 77.2090}
	noida = models.Coordinates{Lat: 28.5355, Lon: 77.3910}
)

type stubProvider struct {
	name string
	leg  *Leg
	err  error
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Directions(ctx context.Context, start, end models.Coordinates) (*Leg, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.leg, nil
}

func straightLeg(start, end models.Coordinates) *Leg {
	return &Leg{
		Coordinates: [][]float64{
			{start.Lon, start.Lat},
			{(start.Lon + end.Lon) / 2, (start.Lat + end.Lat) / 2},
			{end.Lon, end.Lat},
		},
		DistanceKm:  21.5,
		DurationMin: 35,
	}
}

func snapshotWith(zones ...models.RiskZone) *models.Snapshot {
	return &models.Snapshot{Zones: zones, UpdatedAt: time.Now()}
}

func TestEvaluate_HighZoneMakesRouteUnsafe(t *testing.T) {
	provider := &stubProvider{name: "stub", leg: straightLeg(delhi, noida)}
	ev := NewEvaluator([]Provider{provider}, NewSyntheticRouter(nil), nil)

	snap := snapshotWith(models.RiskZone{
		Name: "Noida", State: "Uttar Pradesh",
		Lat: noida.Lat, Lon: noida.Lon,
		Risk: models.RiskHigh, Disaster: "flood", Confidence: 85,
	})

	result := ev.Evaluate(context.Background(), delhi, noida, snap)

	assert.False(t, result.IsSafe)
	assert.Equal(t, models.RiskHigh, result.RiskLevel)
	assert.Equal(t, 85, result.RiskScore)
	assert.Equal(t, "stub", result.RoutingService)

	require.Len(t, result.AffectedZones, 1)
	assert.Equal(t, "Noida", result.AffectedZones[0].Name)
	assert.Equal(t, models.RiskHigh, result.AffectedZones[0].Risk)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "HIGH RISK: Noida, Uttar Pradesh")
	require.NotEmpty(t, result.RiskReasons)
	assert.Contains(t, result.RiskReasons[0], "Active flood in Noida")

	require.NotNil(t, result.AlternativeRoute)
	assert.Equal(t, "Safe Alternative", result.AlternativeRoute.Type)
	assert.Equal(t, "LineString", result.AlternativeRoute.Geometry.Type)
	require.Len(t, result.AlternativeRoute.Geometry.Coordinates, 3)
	assert.Equal(t, []float64{delhi.Lon, delhi.Lat}, result.AlternativeRoute.Geometry.Coordinates[0])
	assert.Equal(t, []float64{noida.Lon, noida.Lat}, result.AlternativeRoute.Geometry.Coordinates[2])
	assert.Greater(t, result.AlternativeRoute.DistanceKm, 0.0)
}

func TestEvaluate_EmptySnapshotIsSafe(t *testing.T) {
	provider := &stubProvider{name: "stub", leg: straightLeg(delhi, noida)}
	ev := NewEvaluator([]Provider{provider}, NewSyntheticRouter(nil), nil)

	result := ev.Evaluate(context.Background(), delhi, noida, &models.Snapshot{})

	assert.True(t, result.IsSafe)
	assert.Equal(t, models.RiskLow, result.RiskLevel)
	assert.Equal(t, 25, result.RiskScore)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.AffectedZones)
	assert.Equal(t, []string{"Route analysis completed - no major risks detected"}, result.RiskReasons)
	assert.Nil(t, result.AlternativeRoute)
}

func TestEvaluate_MediumZoneCautionsWithoutAlternative(t *testing.T) {
	provider := &stubProvider{name: "stub", leg: straightLeg(delhi, noida)}
	ev := NewEvaluator([]Provider{provider}, NewSyntheticRouter(nil), nil)

	mid := models.Coordinates{Lat: (delhi.Lat + noida.Lat) / 2, Lon: (delhi.Lon + noida.Lon) / 2}
	snap := snapshotWith(models.RiskZone{
		Name: "Ghaziabad", State: "Uttar Pradesh",
		Lat: mid.Lat, Lon: mid.Lon,
		Risk: models.RiskMedium, Disaster: "heavy_rain", Confidence: 70,
	})

	result := ev.Evaluate(context.Background(), delhi, noida, snap)

	assert.True(t, result.IsSafe)
	assert.Equal(t, models.RiskMedium, result.RiskLevel)
	assert.Equal(t, 55, result.RiskScore)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "CAUTION: Ghaziabad")
	assert.Nil(t, result.AlternativeRoute)
}

func TestEvaluate_DistantZoneIgnored(t *testing.T) {
	provider := &stubProvider{name: "stub", leg: straightLeg(delhi, noida)}
	ev := NewEvaluator([]Provider{provider}, NewSyntheticRouter(nil), nil)

	// Mumbai is over a thousand kilometers from a Delhi-Noida route.
	snap := snapshotWith(models.RiskZone{
		Name: "Mumbai", State: "Maharashtra",
		Lat: 19.0760, Lon: 72.8777,
		Risk: models.RiskHigh, Disaster: "flood",
	})

	result := ev.Evaluate(context.Background(), delhi, noida, snap)

	assert.True(t, result.IsSafe)
	assert.Empty(t, result.AffectedZones)
	assert.Equal(t, models.RiskLow, result.RiskLevel)
}

func TestEvaluate_FallsBackToSynthetic(t *testing.T) {
	failing := &stubProvider{name: "ors", err: errors.New("upstream down")}
	alsoFailing := &stubProvider{name: "osrm", err: ErrNoRoute}
	ev := NewEvaluator([]Provider{failing, alsoFailing}, NewSyntheticRouter(nil), nil)

	result := ev.Evaluate(context.Background(), delhi, noida, &models.Snapshot{})

	assert.Equal(t, "synthetic", result.RoutingService)
	assert.True(t, result.IsSafe)
	require.NotEmpty(t, result.Route.Coordinates)
	assert.Equal(t, []float64{delhi.Lon, delhi.Lat}, result.Route.Coordinates[0])
	assert.Equal(t, []float64{noida.Lon, noida.Lat}, result.Route.Coordinates[len(result.Route.Coordinates)-1])
}

func TestEvaluate_FirstWorkingProviderWins(t *testing.T) {
	failing := &stubProvider{name: "ors", err: errors.New("quota exceeded")}
	working := &stubProvider{name: "osrm", leg: straightLeg(delhi, noida)}
	ev := NewEvaluator([]Provider{failing, working}, NewSyntheticRouter(nil), nil)

	result := ev.Evaluate(context.Background(), delhi, noida, &models.Snapshot{})

	assert.Equal(t, "osrm", result.RoutingService)
	assert.Equal(t, 21.5, result.DistanceKm)
	assert.Equal(t, 35, result.DurationMin)
}

func TestSafeAlternative_RetriesWithWiderOffset(t *testing.T) {
	ev := NewEvaluator(nil, NewSyntheticRouter(nil), nil)

	// A High zone parked on the first candidate's midpoint forces the retry.
	midLat := (delhi.Lat+noida.Lat)/2 + 0.02
	midLon := (delhi.Lon+noida.Lon)/2 + 0.02
	snap := snapshotWith(models.RiskZone{
		Name: "Midpoint", State: "Uttar Pradesh",
		Lat: midLat, Lon: midLon,
		Risk: models.RiskHigh, Disaster: "flood",
	})

	alt := ev.safeAlternative(delhi, noida, snap)

	require.NotNil(t, alt)
	assert.Equal(t, "Safe Alternative", alt.Type)
	require.Len(t, alt.Geometry.Coordinates, 3)
	assert.Equal(t, []float64{delhi.Lon, delhi.Lat}, alt.Geometry.Coordinates[0])
	assert.Equal(t, []float64{noida.Lon, noida.Lat}, alt.Geometry.Coordinates[2])
}
