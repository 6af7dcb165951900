package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/avinya-safety/aegis/internal/models"
)

// Metrics holds the Prometheus instruments for the feed, the route
// evaluator and the realtime layer.
type Metrics struct {
	FeedRefreshes       prometheus.Counter
	FeedRefreshDuration prometheus.Histogram
	RiskZones           *prometheus.GaugeVec // label: level

	RouteRequests *prometheus.CounterVec // labels: service, outcome
	RouteDuration prometheus.Histogram

	ConnectedClients prometheus.Gauge
	SosAlerts        prometheus.Counter
}

// NewMetrics creates all instruments and registers them with the default
// registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FeedRefreshes,
		m.FeedRefreshDuration,
		m.RiskZones,
		m.RouteRequests,
		m.RouteDuration,
		m.ConnectedClients,
		m.SosAlerts,
	)
	return m
}

// NewMetricsForTesting creates unregistered instruments so parallel tests
// do not trip duplicate-registration panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FeedRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aegis",
			Name:      "feed_refreshes_total",
			Help:      "Total risk snapshot refreshes.",
		}),
		FeedRefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "aegis",
			Name:      "feed_refresh_duration_seconds",
			Help:      "Duration of a full snapshot refresh.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		RiskZones: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "aegis",
			Name:      "risk_zones",
			Help:      "Zones in the current snapshot by risk level.",
		}, []string{"level"}),
		RouteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aegis",
			Name:      "route_requests_total",
			Help:      "Route evaluations by answering service and outcome.",
		}, []string{"service", "outcome"}),
		RouteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "aegis",
			Name:      "route_evaluation_duration_seconds",
			Help:      "End-to-end route evaluation duration.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ConnectedClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aegis",
			Name:      "websocket_clients",
			Help:      "Currently connected WebSocket clients.",
		}),
		SosAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aegis",
			Name:      "sos_alerts_total",
			Help:      "SOS alerts relayed to clients.",
		}),
	}
}

// ObserveRefresh records one refresh cycle and the zone counts it produced.
func (m *Metrics) ObserveRefresh(snap *models.Snapshot, d time.Duration) {
	m.FeedRefreshes.Inc()
	m.FeedRefreshDuration.Observe(d.Seconds())

	var high, medium, low float64
	for _, z := range snap.Zones {
		switch z.Risk {
		case models.RiskHigh:
			high++
		case models.RiskMedium:
			medium++
		default:
			low++
		}
	}
	m.RiskZones.WithLabelValues("high").Set(high)
	m.RiskZones.WithLabelValues("medium").Set(medium)
	m.RiskZones.WithLabelValues("low").Set(low)
}

// ObserveRoute records one route evaluation.
func (m *Metrics) ObserveRoute(service, outcome string, d time.Duration) {
	m.RouteRequests.WithLabelValues(service, outcome).Inc()
	m.RouteDuration.Observe(d.Seconds())
}
