package feed

import (
	"math/rand"
	"regexp"

	"github.com/avinya-safety/aegis/internal/gazetteer"
)

// India bounding box used when a location cannot be anchored to any known
// city. Matches the reference constants, which clip the far south.
const (
	indiaMinLat  = 20.0
	indiaLatSpan = 15.0
	indiaMinLon  = 68.0
	indiaLonSpan = 30.0
)

type location struct {
	Name  string
	State string
	Lat   float64
	Lon   float64
	Type  string
}

// Generic administrative-unit suffixes that mark a place name in running
// text even when the gazetteer does not know it.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([a-z]+(?:\s+[a-z]+)*?)\s+district`),
	regexp.MustCompile(`([a-z]+(?:\s+[a-z]+)*?)\s+village`),
	regexp.MustCompile(`([a-z]+(?:\s+[a-z]+)*?)\s+tehsil`),
	regexp.MustCompile(`([a-z]+(?:\s+[a-z]+)*?)\s+block`),
	regexp.MustCompile(`([a-z]+(?:\s+[a-z]+)*?)\s+taluka`),
}

// extractLocations finds every place the lowercased text refers to: known
// cities by substring match, then district/village style patterns with
// estimated coordinates.
func extractLocations(text string, rng *rand.Rand) []location {
	var locations []location

	for _, c := range gazetteer.MentionedIn(text) {
		locations = append(locations, location{
			Name:  c.Name,
			State: c.State,
			Lat:   c.Lat,
			Lon:   c.Lon,
			Type:  "city",
		})
	}

	for _, pattern := range locationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			name := gazetteer.Title(match[1])
			if len(name) <= 2 || hasLocation(locations, name) {
				continue
			}
			lat, lon := estimateCoordinates(text, rng)
			state := gazetteer.StateIn(text)
			if state == "" {
				state = "India"
			}
			locations = append(locations, location{
				Name:  name,
				State: state,
				Lat:   lat,
				Lon:   lon,
				Type:  "district/village",
			})
		}
	}

	return locations
}

func hasLocation(locations []location, name string) bool {
	for _, l := range locations {
		if l.Name == name {
			return true
		}
	}
	return false
}

// estimateCoordinates places an unknown location near the first known city
// the text mentions, or anywhere in India's bounding box as a last resort.
func estimateCoordinates(text string, rng *rand.Rand) (lat, lon float64) {
	if nearby := gazetteer.MentionedIn(text); len(nearby) > 0 {
		c := nearby[0]
		return c.Lat + (rng.Float64()-0.5)*0.5, c.Lon + (rng.Float64()-0.5)*0.5
	}
	return indiaMinLat + rng.Float64()*indiaLatSpan, indiaMinLon + rng.Float64()*indiaLonSpan
}
