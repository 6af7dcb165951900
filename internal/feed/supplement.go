package feed

import (
	"math/rand"
	"strings"
	"time"

	"github.com/avinya-safety/aegis/internal/gazetteer"
	"github.com/avinya-safety/aegis/internal/models"
)

// Per-archetype disaster labels, ordered High, Medium, Low.
var typeDisasters = map[string][]string{
	"coastal":      {"Cyclone warning", "High tide alert", "Storm surge"},
	"island":       {"Cyclone watch", "High waves", "Weather alert"},
	"mountain":     {"Landslide risk", "Heavy snowfall", "Avalanche warning"},
	"hill_station": {"Landslide alert", "Heavy rain", "Road blockage"},
	"desert":       {"Dust storm", "Extreme heat", "Sand storm"},
	"rural":        {"Flood risk", "Crop damage", "Heavy rain"},
	"district":     {"Weather alert", "Traffic advisory", "Local emergency"},
	"valley":       {"Flood warning", "River overflow", "Heavy rain"},
	"plains":       {"Flood alert", "Weather warning", "Traffic congestion"},
	"plateau":      {"Weather advisory", "Normal conditions", "Light rain"},
}

var typeReasons = map[string][]string{
	"coastal":  {"Coastal weather monitoring", "Tidal conditions tracked", "Marine weather alert"},
	"mountain": {"Geological monitoring active", "Weather station data", "Slope stability checked"},
	"rural":    {"Agricultural weather watch", "Rural area monitoring", "Local weather conditions"},
	"desert":   {"Desert weather tracking", "Temperature monitoring", "Dust storm watch"},
}

var defaultTypeReasons = []string{"Area monitoring active", "Weather conditions tracked", "Regular safety updates"}

// randomRiskFor draws a risk level with probabilities conditioned on the
// archetype: coastal and mountain zones lean high, deserts stay low.
func randomRiskFor(locationType string, rng *rand.Rand) models.RiskLevel {
	p := rng.Float64()
	switch locationType {
	case "coastal", "island":
		switch {
		case p > 0.7:
			return models.RiskHigh
		case p > 0.4:
			return models.RiskMedium
		default:
			return models.RiskLow
		}
	case "mountain", "hill_station":
		switch {
		case p > 0.6:
			return models.RiskHigh
		case p > 0.3:
			return models.RiskMedium
		default:
			return models.RiskLow
		}
	case "desert":
		if p > 0.5 {
			return models.RiskMedium
		}
		return models.RiskLow
	case "rural", "district":
		switch {
		case p > 0.8:
			return models.RiskHigh
		case p > 0.5:
			return models.RiskMedium
		default:
			return models.RiskLow
		}
	default:
		if p > 0.7 {
			return models.RiskMedium
		}
		return models.RiskLow
	}
}

func typeDisasterFor(locationType string, level models.RiskLevel) string {
	labels, ok := typeDisasters[locationType]
	if !ok {
		labels = []string{"Weather update", "Normal conditions"}
	}
	idx := 2 - level.Severity()
	if idx >= len(labels) {
		idx = len(labels) - 1
	}
	return labels[idx]
}

func typeReasonsFor(locationType string) []string {
	if r, ok := typeReasons[locationType]; ok {
		return r
	}
	return defaultTypeReasons
}

// supplementZones appends the archetype regions not already covered by the
// article scan, so every snapshot spans the whole country.
func (g *Generator) supplementZones(zones []models.RiskZone, seen map[string]bool, now time.Time) []models.RiskZone {
	for _, region := range gazetteer.Regions {
		key := region.Name + "_" + region.State
		if seen[key] {
			continue
		}
		seen[key] = true

		level := randomRiskFor(region.Type, g.rng)
		disaster := typeDisasterFor(region.Type, level)

		zones = append(zones, models.RiskZone{
			Name:         region.Name,
			State:        region.State,
			Lat:          region.Lat,
			Lon:          region.Lon,
			Risk:         level,
			Disaster:     disaster,
			Color:        level.Color(),
			RiskScore:    riskScoreFor(level, strings.ToLower(disaster)),
			Confidence:   75 + g.rng.Intn(20),
			Reasons:      typeReasonsFor(region.Type),
			LastUpdated:  now,
			Source:       "System",
			SourceTitle:  region.Type + " monitoring update",
			LocationType: region.Type,
		})
	}
	return zones
}
