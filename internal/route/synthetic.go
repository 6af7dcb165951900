package route

import (
	"math"
	"math/rand"
	"time"

	"github.com/avinya-safety/aegis/internal/geo"
	"github.com/avinya-safety/aegis/internal/models"
)

const syntheticProviderName = "synthetic"

// syntheticSpeedFactor: 2 minutes per kilometer, the fixed average-speed
// assumption used when no provider supplies a duration.
const syntheticSpeedFactor = 2.0

// SyntheticRouter fabricates a plausible road-like polyline when every
// external provider has failed. Lateral sinusoidal deviation plus a small
// random perturbation every third point keeps the line from looking
// ruler-straight on the map.
type SyntheticRouter struct {
	rng *rand.Rand
}

func NewSyntheticRouter(rng *rand.Rand) *SyntheticRouter {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SyntheticRouter{rng: rng}
}

func (s *SyntheticRouter) Name() string { return syntheticProviderName }

// Route builds the jittered path between start and end. It cannot fail.
func (s *SyntheticRouter) Route(start, end models.Coordinates) *Leg {
	latDiff := end.Lat - start.Lat
	lonDiff := end.Lon - start.Lon
	euclid := math.Sqrt(latDiff*latDiff + lonDiff*lonDiff)

	steps := int(euclid * 100)
	if steps < 5 {
		steps = 5
	} else if steps > 15 {
		steps = 15
	}

	coords := [][]float64{{start.Lon, start.Lat}}
	for i := 1; i < steps; i++ {
		progress := float64(i) / float64(steps)
		lat := start.Lat + latDiff*progress
		lon := start.Lon + lonDiff*progress

		lat += 0.002 * math.Sin(progress*math.Pi*3)
		lon += 0.001 * math.Cos(progress*math.Pi*2)

		if i%3 == 0 {
			lat += lonDiff * 0.02 * (s.rng.Float64() - 0.5)
			lon += latDiff * 0.02 * (s.rng.Float64() - 0.5)
		}

		coords = append(coords, []float64{lon, lat})
	}
	coords = append(coords, []float64{end.Lon, end.Lat})

	distanceKm := math.Round(geo.PolylineLengthKm(coords)*100) / 100
	return &Leg{
		Coordinates: coords,
		DistanceKm:  distanceKm,
		DurationMin: int(math.Round(distanceKm * syntheticSpeedFactor)),
	}
}
