package feed

import (
	"time"

	"github.com/avinya-safety/aegis/internal/models"
)

// fallbackZones is the built-in zone list used when a refresh fails
// entirely. It covers major cities plus rural, coastal, desert, mountain
// and island archetypes so the map is never empty.
func fallbackZones(now time.Time) []models.RiskZone {
	return []models.RiskZone{
		{
			Name: "Delhi", State: "Delhi", Lat: 28.6139, Lon: 77.2090,
			Risk: models.RiskMedium, Disaster: "Air Quality Alert", Color: models.RiskMedium.Color(),
			RiskScore: 55, Confidence: 80,
			Reasons:     []string{"Poor air quality index", "Smog conditions"},
			LastUpdated: now, Source: "System", SourceTitle: "Air quality deteriorates", LocationType: "city",
		},
		{
			Name: "Mumbai", State: "Maharashtra", Lat: 19.0760, Lon: 72.8777,
			Risk: models.RiskHigh, Disaster: "Heavy Rain Warning", Color: models.RiskHigh.Color(),
			RiskScore: 85, Confidence: 90,
			Reasons:     []string{"Heavy rainfall warning", "Waterlogging expected"},
			LastUpdated: now, Source: "System", SourceTitle: "IMD issues heavy rain alert", LocationType: "city",
		},
		{
			Name: "Sundarbans", State: "West Bengal", Lat: 21.9497, Lon: 89.1833,
			Risk: models.RiskHigh, Disaster: "Cyclone Alert", Color: models.RiskHigh.Color(),
			RiskScore: 82, Confidence: 88,
			Reasons:     []string{"Cyclone formation in Bay of Bengal", "Coastal flooding risk"},
			LastUpdated: now, Source: "System", SourceTitle: "Cyclone approaching coastal areas", LocationType: "rural",
		},
		{
			Name: "Ladakh Region", State: "Ladakh", Lat: 34.1526, Lon: 77.5771,
			Risk: models.RiskMedium, Disaster: "Heavy Snowfall", Color: models.RiskMedium.Color(),
			RiskScore: 58, Confidence: 75,
			Reasons:     []string{"Heavy snowfall expected", "Road connectivity may be affected"},
			LastUpdated: now, Source: "System", SourceTitle: "Snow alert for high altitude areas", LocationType: "mountain",
		},
		{
			Name: "Kutch District", State: "Gujarat", Lat: 23.7337, Lon: 69.8597,
			Risk: models.RiskLow, Disaster: "Normal Conditions", Color: models.RiskLow.Color(),
			RiskScore: 28, Confidence: 85,
			Reasons:     []string{"Clear weather conditions", "No active alerts"},
			LastUpdated: now, Source: "System", SourceTitle: "Weather stable in desert region", LocationType: "desert",
		},
		{
			Name: "Wayanad", State: "Kerala", Lat: 11.6854, Lon: 76.1320,
			Risk: models.RiskMedium, Disaster: "Landslide Watch", Color: models.RiskMedium.Color(),
			RiskScore: 62, Confidence: 78,
			Reasons:     []string{"Heavy rain in hills", "Slope instability detected"},
			LastUpdated: now, Source: "System", SourceTitle: "Landslide warning for hilly areas", LocationType: "hill_station",
		},
		{
			Name: "Brahmaputra Valley", State: "Assam", Lat: 26.2006, Lon: 92.9376,
			Risk: models.RiskHigh, Disaster: "Flood Warning", Color: models.RiskHigh.Color(),
			RiskScore: 87, Confidence: 92,
			Reasons:     []string{"River water level rising", "Flood alert issued"},
			LastUpdated: now, Source: "System", SourceTitle: "River levels rising in Assam", LocationType: "valley",
		},
		{
			Name: "Andaman Islands", State: "Andaman & Nicobar", Lat: 11.7401, Lon: 92.6586,
			Risk: models.RiskMedium, Disaster: "Storm Watch", Color: models.RiskMedium.Color(),
			RiskScore: 55, Confidence: 80,
			Reasons:     []string{"Storm formation possible", "Marine conditions monitored"},
			LastUpdated: now, Source: "System", SourceTitle: "Weather monitoring for islands", LocationType: "island",
		},
	}
}
