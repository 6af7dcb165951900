package route

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/avinya-safety/aegis/internal/models"
)

const osrmProviderName = "osrm"

// OSRMClient calls the public OSRM routing server as the second choice in
// the fallback chain.
type OSRMClient struct {
	baseURL    string
	httpClient HTTPDoer
}

func NewOSRMClient(baseURL string, timeout time.Duration) *OSRMClient {
	return &OSRMClient{
		baseURL:    baseURL,
		httpClient: NewResilientClient(osrmProviderName, timeout),
	}
}

func (c *OSRMClient) Name() string { return osrmProviderName }

type osrmResponse struct {
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
}

func (c *OSRMClient) Directions(ctx context.Context, start, end models.Coordinates) (*Leg, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.baseURL, start.Lon, start.Lat, end.Lon, end.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	var data osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding resp.Body: %w", err)
	}

	if len(data.Routes) == 0 {
		return nil, ErrNoRoute
	}

	r := data.Routes[0]
	return &Leg{
		Coordinates: r.Geometry.Coordinates,
		DistanceKm:  math.Round(r.Distance/1000*100) / 100,
		DurationMin: int(math.Round(r.Duration / 60)),
	}, nil
}
