package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avinya-safety/aegis/internal/geocode"
	"github.com/avinya-safety/aegis/internal/models"
	"github.com/avinya-safety/aegis/internal/store"
)

type mockEvaluator struct {
	result   *models.RouteResult
	lastSnap *models.Snapshot
}

func (m *mockEvaluator) Evaluate(ctx context.Context, start, end models.Coordinates, snap *models.Snapshot) *models.RouteResult {
	m.lastSnap = snap
	return m.result
}

type mockGeocoder struct {
	results []geocode.Result
	err     error
}

func (m *mockGeocoder) Search(ctx context.Context, query string) ([]geocode.Result, error) {
	return m.results, m.err
}

type mockWSHandler struct{ served bool }

func (m *mockWSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	m.served = true
	w.WriteHeader(http.StatusSwitchingProtocols)
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func seededStore() *store.SnapshotStore {
	st := store.NewSnapshotStore()
	st.Replace(&models.Snapshot{
		Zones: []models.RiskZone{
			{Name: "Mumbai", State: "Maharashtra", Risk: models.RiskHigh},
			{Name: "Delhi", State: "Delhi", Risk: models.RiskMedium},
			{Name: "Kutch", State: "Gujarat", Risk: models.RiskLow},
		},
		UpdatedAt: time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
	})
	return st
}

func TestSearchLocation(t *testing.T) {
	geocoder := &mockGeocoder{results: []geocode.Result{
		{Name: "Noida, Uttar Pradesh, India", Lat: 28.5355, Lon: 77.3910, Country: "India", State: "Uttar Pradesh", City: "Noida"},
	}}
	router := newTestRouter(NewHandler(seededStore(), &mockEvaluator{}, geocoder, &mockWSHandler{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search-location?query=noida", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Results []geocode.Result `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Results) != 1 || body.Results[0].City != "Noida" {
		t.Errorf("results = %+v", body.Results)
	}
}

func TestSearchLocation_ShortQuery(t *testing.T) {
	geocoder := &mockGeocoder{err: errors.New("should not be called")}
	router := newTestRouter(NewHandler(seededStore(), &mockEvaluator{}, geocoder, &mockWSHandler{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search-location?query=n", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Results []geocode.Result `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Results == nil || len(body.Results) != 0 {
		t.Errorf("results = %v, want empty list", body.Results)
	}
}

func TestSearchLocation_GeocoderError(t *testing.T) {
	geocoder := &mockGeocoder{err: errors.New("nominatim down")}
	router := newTestRouter(NewHandler(seededStore(), &mockEvaluator{}, geocoder, &mockWSHandler{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search-location?query=noida", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestRoute(t *testing.T) {
	evaluator := &mockEvaluator{result: &models.RouteResult{
		Route:          models.NewLineString([][]float64{{77.2090, 28.6139}, {77.3910, 28.5355}}),
		IsSafe:         false,
		RiskLevel:      models.RiskHigh,
		RiskScore:      85,
		Warnings:       []string{"HIGH RISK: Noida, Uttar Pradesh - flood"},
		RiskReasons:    []string{"Active flood in Noida (2.0km from route)"},
		AffectedZones:  []models.AffectedZone{{Name: "Noida", Risk: models.RiskHigh}},
		DistanceKm:     24.85,
		DurationMin:    41,
		RoutingService: "openrouteservice",
	}}
	st := seededStore()
	router := newTestRouter(NewHandler(st, evaluator, &mockGeocoder{}, &mockWSHandler{}))

	payload := `{"start":{"lat":28.6139,"lon":77.2090},"end":{"lat":28.5355,"lon":77.3910}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/route", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var result models.RouteResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.IsSafe || result.RiskLevel != models.RiskHigh || result.RiskScore != 85 {
		t.Errorf("result = %+v", result)
	}
	if evaluator.lastSnap == nil || len(evaluator.lastSnap.Zones) != 3 {
		t.Error("evaluator did not receive the current snapshot")
	}
}

func TestRoute_InvalidBody(t *testing.T) {
	router := newTestRouter(NewHandler(seededStore(), &mockEvaluator{}, &mockGeocoder{}, &mockWSHandler{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/route", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRoute_InvalidCoordinates(t *testing.T) {
	router := newTestRouter(NewHandler(seededStore(), &mockEvaluator{}, &mockGeocoder{}, &mockWSHandler{}))

	cases := []struct {
		name string
		body string
	}{
		{"zero start", `{"start":{"lat":0,"lon":0},"end":{"lat":28.5,"lon":77.4}}`},
		{"lat out of range", `{"start":{"lat":91,"lon":77.2},"end":{"lat":28.5,"lon":77.4}}`},
		{"lon out of range", `{"start":{"lat":28.6,"lon":181},"end":{"lat":28.5,"lon":77.4}}`},
		{"missing end", `{"start":{"lat":28.6,"lon":77.2}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/route", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestCities(t *testing.T) {
	router := newTestRouter(NewHandler(seededStore(), &mockEvaluator{}, &mockGeocoder{}, &mockWSHandler{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Cities []json.RawMessage `json:"cities"`
		Total  int               `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Cities) > 50 {
		t.Errorf("cities list = %d entries, want at most 50", len(body.Cities))
	}
	if body.Total < len(body.Cities) {
		t.Errorf("total %d smaller than returned list %d", body.Total, len(body.Cities))
	}
}

func TestStats(t *testing.T) {
	router := newTestRouter(NewHandler(seededStore(), &mockEvaluator{}, &mockGeocoder{}, &mockWSHandler{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var stats store.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if stats.TotalZones != 3 || stats.HighRisk != 1 || stats.MediumRisk != 1 || stats.LowRisk != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(NewHandler(seededStore(), &mockEvaluator{}, &mockGeocoder{}, &mockWSHandler{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
		Version  string            `json:"version"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "healthy" || body.Version != "1.0.0" {
		t.Errorf("body = %+v", body)
	}
	for _, svc := range []string{"routing", "riskAnalysis", "websocket", "locationSearch"} {
		if body.Services[svc] != "operational" {
			t.Errorf("service %q = %q", svc, body.Services[svc])
		}
	}
}

func TestWebsocketRouteDelegatesToHub(t *testing.T) {
	hub := &mockWSHandler{}
	router := newTestRouter(NewHandler(seededStore(), &mockEvaluator{}, &mockGeocoder{}, hub))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	router.ServeHTTP(w, req)

	if !hub.served {
		t.Error("/ws did not reach the hub")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(1))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	var limited bool
	// Burst is 2x rps; the third immediate request must be rejected.
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited = true
		}
	}
	if !limited {
		t.Error("expected at least one 429 past the burst")
	}
}
