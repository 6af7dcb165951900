// Package geocode provides free-text location search backed by the
// OpenStreetMap Nominatim API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Result is one location match returned to the client.
type Result struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	City    string  `json:"city"`
}

// Client queries Nominatim. Usage policy requires an identifying
// User-Agent.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "aegis-disaster-safety/1.0",
	}
}

type nominatimItem struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Address     struct {
		Country string `json:"country"`
		State   string `json:"state"`
		Region  string `json:"region"`
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
	} `json:"address"`
}

// Search resolves a free-text query to up to ten candidate locations.
// Queries shorter than two characters return no results without a call.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if len(query) < 2 {
		return []Result{}, nil
	}

	params := url.Values{
		"format":         {"json"},
		"q":              {query},
		"limit":          {"10"},
		"addressdetails": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	var items []nominatimItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("error decoding resp.Body: %w", err)
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		lat, _ := strconv.ParseFloat(item.Lat, 64)
		lon, _ := strconv.ParseFloat(item.Lon, 64)

		r := Result{
			Name:    item.DisplayName,
			Lat:     lat,
			Lon:     lon,
			Country: item.Address.Country,
			State:   item.Address.State,
			City:    item.Address.City,
		}
		if r.Country == "" {
			r.Country = "Unknown"
		}
		if r.State == "" {
			r.State = item.Address.Region
		}
		if r.City == "" {
			if item.Address.Town != "" {
				r.City = item.Address.Town
			} else {
				r.City = item.Address.Village
			}
		}
		results = append(results, r)
	}
	return results, nil
}
