package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avinya-safety/aegis/internal/gazetteer"
	"github.com/avinya-safety/aegis/internal/geocode"
	"github.com/avinya-safety/aegis/internal/models"
	"github.com/avinya-safety/aegis/internal/store"
)

// Evaluator answers route safety requests.
type Evaluator interface {
	Evaluate(ctx context.Context, start, end models.Coordinates, snap *models.Snapshot) *models.RouteResult
}

// Geocoder resolves free-text location queries.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]geocode.Result, error)
}

// WSHandler upgrades HTTP requests to WebSocket connections.
type WSHandler interface {
	Serve(w http.ResponseWriter, r *http.Request)
}

type Handler struct {
	store     *store.SnapshotStore
	evaluator Evaluator
	geocoder  Geocoder
	hub       WSHandler
}

func NewHandler(st *store.SnapshotStore, evaluator Evaluator, geocoder Geocoder, hub WSHandler) *Handler {
	return &Handler{
		store:     st,
		evaluator: evaluator,
		geocoder:  geocoder,
		hub:       hub,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/search-location", h.searchLocation)
	r.POST("/api/route", h.route)
	r.GET("/api/cities", h.cities)
	r.GET("/api/stats", h.stats)
	r.GET("/api/health", h.health)
	r.GET("/ws", h.websocket)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *Handler) searchLocation(c *gin.Context) {
	query := c.Query("query")
	if len(query) < 2 {
		c.JSON(http.StatusOK, gin.H{"results": []geocode.Result{}})
		return
	}

	results, err := h.geocoder.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Location search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

type routeRequest struct {
	Start models.Coordinates `json:"start"`
	End   models.Coordinates `json:"end"`
}

func validCoordinates(p models.Coordinates) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180 &&
		!(p.Lat == 0 && p.Lon == 0)
}

func (h *Handler) route(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !validCoordinates(req.Start) || !validCoordinates(req.End) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	result := h.evaluator.Evaluate(c.Request.Context(), req.Start, req.End, h.store.Current())
	c.JSON(http.StatusOK, result)
}

func (h *Handler) cities(c *gin.Context) {
	all := gazetteer.Cities
	limited := all
	if len(limited) > 50 {
		limited = limited[:50]
	}

	c.JSON(http.StatusOK, gin.H{
		"cities": limited,
		"total":  len(all),
	})
}

func (h *Handler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"services": gin.H{
			"routing":        "operational",
			"riskAnalysis":   "operational",
			"websocket":      "operational",
			"locationSearch": "operational",
		},
		"version": "1.0.0",
	})
}

func (h *Handler) websocket(c *gin.Context) {
	h.hub.Serve(c.Writer, c.Request)
}
