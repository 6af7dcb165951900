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

const orsProviderName = "openrouteservice"

// ORSClient calls the OpenRouteService directions API.
type ORSClient struct {
	baseURL    string
	apiKey     string
	httpClient HTTPDoer
}

func NewORSClient(baseURL, apiKey string, timeout time.Duration) *ORSClient {
	return &ORSClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: NewResilientClient(orsProviderName, timeout),
	}
}

func (c *ORSClient) Name() string { return orsProviderName }

type orsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // seconds
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

func (c *ORSClient) Directions(ctx context.Context, start, end models.Coordinates) (*Leg, error) {
	url := fmt.Sprintf("%s/v2/directions/driving-car?api_key=%s&start=%f,%f&end=%f,%f",
		c.baseURL, c.apiKey, start.Lon, start.Lat, end.Lon, end.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	var data orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding resp.Body: %w", err)
	}

	if len(data.Features) == 0 || len(data.Features[0].Properties.Segments) == 0 {
		return nil, ErrNoRoute
	}

	f := data.Features[0]
	seg := f.Properties.Segments[0]
	return &Leg{
		Coordinates: f.Geometry.Coordinates,
		DistanceKm:  math.Round(seg.Distance/1000*100) / 100,
		DurationMin: int(math.Round(seg.Duration / 60)),
	}, nil
}
