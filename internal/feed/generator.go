// Package feed implements the risk feed generator: simulated article
// ingestion, keyword classification, location extraction and the periodic
// snapshot refresh.
package feed

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/avinya-safety/aegis/internal/models"
)

// Generator turns a batch of articles into the next risk snapshot.
type Generator struct {
	source Source
	rng    *rand.Rand
	now    func() time.Time
}

// NewGenerator creates a generator. rng and now may be nil, in which case a
// time-seeded source and time.Now are used; tests inject both.
func NewGenerator(source Source, rng *rand.Rand, now func() time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{source: source, rng: rng, now: now}
}

// Refresh produces a complete snapshot. It never fails hard: a source error
// degrades to the built-in fallback list, and the supplementary archetype
// zones guarantee the result is non-empty even with zero articles.
func (g *Generator) Refresh(ctx context.Context) *models.Snapshot {
	now := g.now()

	articles, err := g.source.FetchArticles(ctx)
	if err != nil {
		slog.Error("feed source failed, using fallback zones", "error", err)
		return &models.Snapshot{Zones: fallbackZones(now), UpdatedAt: now}
	}

	zones := make([]models.RiskZone, 0, 32)
	seen := make(map[string]bool)

	for _, article := range articles {
		text := article.Text()

		for _, loc := range extractLocations(text, g.rng) {
			key := loc.Name + "_" + loc.State
			if seen[key] {
				continue
			}

			disasters := classifyDisasters(text)
			if len(disasters) == 0 {
				continue
			}
			seen[key] = true

			level := riskLevelFor(disasters, text)
			zones = append(zones, models.RiskZone{
				Name:         loc.Name,
				State:        loc.State,
				Lat:          loc.Lat,
				Lon:          loc.Lon,
				Risk:         level,
				Disaster:     strings.Join(disasters, ", "),
				Color:        level.Color(),
				RiskScore:    riskScoreFor(level, text),
				Confidence:   confidenceFor(text, disasters),
				Reasons:      riskReasonsFor(disasters, text),
				LastUpdated:  now,
				Source:       article.Source,
				SourceTitle:  article.Title,
				LocationType: loc.Type,
			})
		}
	}

	zones = g.supplementZones(zones, seen, now)

	return &models.Snapshot{Zones: zones, UpdatedAt: now}
}
