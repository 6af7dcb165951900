package feed

import (
	"context"
	"time"

	"github.com/avinya-safety/aegis/internal/models"
)

// Source supplies disaster articles for a refresh cycle. The shipped
// implementation is simulated; a real news ingester only needs to satisfy
// this interface.
type Source interface {
	FetchArticles(ctx context.Context) ([]models.Article, error)
}

// SimulatedSource returns a fixed set of synthetic articles standing in for
// a live news feed.
type SimulatedSource struct{}

func NewSimulatedSource() *SimulatedSource {
	return &SimulatedSource{}
}

func (s *SimulatedSource) FetchArticles(ctx context.Context) ([]models.Article, error) {
	now := time.Now()
	templates := []models.Article{
		{
			Title:       "Heavy rainfall warning issued for Mumbai region",
			Description: "IMD issues red alert for Mumbai and surrounding areas due to heavy monsoon rains",
			Disaster:    "flood",
		},
		{
			Title:       "Cyclone formation detected in Bay of Bengal",
			Description: "Weather department tracks cyclonic disturbance approaching eastern coast",
			Disaster:    "cyclone",
		},
		{
			Title:       "Landslide alert for hill stations in Uttarakhand",
			Description: "Heavy rains trigger landslide warnings in mountainous regions",
			Disaster:    "landslide",
		},
		{
			Title:       "Heatwave conditions prevail in northern plains",
			Description: "Temperature soars above 45C in Delhi and surrounding areas",
			Disaster:    "heatwave",
		},
		{
			Title:       "Forest fire reported in Himachal Pradesh",
			Description: "Wildfire spreads across forest areas due to dry conditions",
			Disaster:    "fire",
		},
		{
			Title:       "Earthquake tremors felt in northeastern states",
			Description: "Moderate intensity earthquake recorded in Assam region",
			Disaster:    "earthquake",
		},
	}

	articles := make([]models.Article, 0, len(templates))
	for _, t := range templates {
		t.PublishedAt = now
		t.Source = "Simulation"
		articles = append(articles, t)
	}
	return articles, nil
}
