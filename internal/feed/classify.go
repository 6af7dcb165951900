package feed

import (
	"strings"

	"github.com/avinya-safety/aegis/internal/models"
)

// disasterKeywords maps each disaster category to the phrases that signal
// it in article text.
var disasterKeywords = map[string][]string{
	"flood":      {"flood", "flooding", "waterlogged", "inundated", "deluge", "overflow"},
	"cyclone":    {"cyclone", "storm", "hurricane", "typhoon", "wind storm"},
	"earthquake": {"earthquake", "tremor", "seismic", "quake"},
	"landslide":  {"landslide", "mudslide", "slope failure", "hill collapse"},
	"fire":       {"fire", "wildfire", "blaze", "inferno"},
	"heatwave":   {"heat wave", "extreme heat", "temperature soars"},
	"drought":    {"drought", "water scarcity", "dry spell"},
	"heavy_rain": {"heavy rain", "torrential rain", "downpour", "monsoon"},
	"traffic":    {"traffic jam", "road block", "congestion", "accident"},
}

// disasterOrder fixes iteration order so classification output is stable.
var disasterOrder = []string{
	"flood", "cyclone", "earthquake", "landslide", "fire",
	"heatwave", "drought", "heavy_rain", "traffic",
}

var (
	highSeverityDisasters   = map[string]bool{"cyclone": true, "earthquake": true, "flood": true, "landslide": true, "fire": true}
	mediumSeverityDisasters = map[string]bool{"heavy_rain": true, "heatwave": true, "traffic": true}

	urgentWords   = []string{"emergency", "alert", "warning", "evacuate", "severe", "red alert", "orange alert"}
	criticalWords = []string{"death", "casualties", "rescue", "stranded", "trapped"}
)

// classifyDisasters returns the disaster categories whose keywords appear
// in the lowercased text.
func classifyDisasters(text string) []string {
	var found []string
	for _, disaster := range disasterOrder {
		for _, kw := range disasterKeywords[disaster] {
			if strings.Contains(text, kw) {
				found = append(found, disaster)
				break
			}
		}
	}
	return found
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// riskLevelFor derives the categorical level from the disaster categories
// and the intensity of the surrounding language.
func riskLevelFor(disasters []string, text string) models.RiskLevel {
	var hasHigh, hasMedium bool
	for _, d := range disasters {
		if highSeverityDisasters[d] {
			hasHigh = true
		}
		if mediumSeverityDisasters[d] {
			hasMedium = true
		}
	}
	urgent := containsAny(text, urgentWords)
	critical := containsAny(text, criticalWords)

	switch {
	case (hasHigh && urgent) || critical:
		return models.RiskHigh
	case hasHigh || (hasMedium && urgent):
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// riskScoreFor derives the numeric score from the level with text-intensity
// adjustments, clamped to [0,100].
func riskScoreFor(level models.RiskLevel, text string) int {
	score := level.Score()

	if strings.Contains(text, "severe") || strings.Contains(text, "extreme") {
		score += 10
	}
	if strings.Contains(text, "emergency") || strings.Contains(text, "evacuate") {
		score += 15
	}
	if strings.Contains(text, "red alert") && score < 90 {
		score = 90
	}

	if score > 100 {
		score = 100
	}
	return score
}

// confidenceFor estimates how much to trust a classification, capped at 95.
func confidenceFor(text string, disasters []string) int {
	confidence := 60
	if strings.Contains(text, "alert") || strings.Contains(text, "warning") {
		confidence += 20
	}
	if strings.Contains(text, "imd") || strings.Contains(text, "meteorological") {
		confidence += 15
	}
	if len(disasters) > 1 {
		confidence += 10
	}
	if confidence > 95 {
		confidence = 95
	}
	return confidence
}

// riskReasonsFor builds the human-readable explanations attached to a zone.
func riskReasonsFor(disasters []string, text string) []string {
	var reasons []string
	for _, d := range disasters {
		switch d {
		case "flood":
			reasons = append(reasons, "Flooding reported in the area")
			if strings.Contains(text, "severe") {
				reasons = append(reasons, "Severe water logging expected")
			}
		case "cyclone":
			reasons = append(reasons, "Cyclonic weather conditions")
			if strings.Contains(text, "landfall") {
				reasons = append(reasons, "Cyclone making landfall")
			}
		case "earthquake":
			reasons = append(reasons, "Seismic activity detected")
		case "heavy_rain":
			reasons = append(reasons, "Heavy rainfall warning issued")
		case "traffic":
			reasons = append(reasons, "Traffic congestion reported")
		default:
			reasons = append(reasons, strings.ReplaceAll(d, "_", " ")+" conditions detected")
		}
	}

	if containsAny(text, []string{"alert", "warning"}) {
		reasons = append(reasons, "Official weather alert issued")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Normal conditions prevailing")
	}
	return reasons
}
