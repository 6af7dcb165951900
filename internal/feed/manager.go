package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/avinya-safety/aegis/internal/models"
	"github.com/avinya-safety/aegis/internal/observability"
	"github.com/avinya-safety/aegis/internal/store"
)

// Broadcaster receives every freshly published snapshot.
type Broadcaster interface {
	BroadcastSnapshot(snap *models.Snapshot)
}

// Manager drives the refresh cycle: one refresh at start, then one per
// interval, each published to the store and the broadcaster.
type Manager struct {
	generator   *Generator
	store       *store.SnapshotStore
	broadcaster Broadcaster
	metrics     *observability.Metrics
	interval    time.Duration
	clock       clockwork.Clock
	wg          sync.WaitGroup
}

func NewManager(generator *Generator, st *store.SnapshotStore, broadcaster Broadcaster, metrics *observability.Metrics, interval time.Duration, clock clockwork.Clock) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Manager{
		generator:   generator,
		store:       st,
		broadcaster: broadcaster,
		metrics:     metrics,
		interval:    interval,
		clock:       clock,
	}
}

// Start performs the initial refresh synchronously so the snapshot exists
// before the server accepts traffic, then refreshes on the interval until
// ctx is cancelled.
func (m *Manager) Start(ctx context.Context) {
	m.refresh(ctx)

	m.wg.Add(1)
	go m.run(ctx)
}

func (m *Manager) run(ctx context.Context) {
	defer m.wg.Done()
	slog.Info("feed manager started", "interval", m.interval)

	ticker := m.clock.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("feed manager shutting down")
			return
		case <-ticker.Chan():
			m.refresh(ctx)
		}
	}
}

func (m *Manager) refresh(ctx context.Context) {
	start := m.clock.Now()
	snap := m.generator.Refresh(ctx)

	m.store.Replace(snap)
	if m.broadcaster != nil {
		m.broadcaster.BroadcastSnapshot(snap)
	}
	if m.metrics != nil {
		m.metrics.ObserveRefresh(snap, m.clock.Since(start))
	}

	slog.Info("risk snapshot refreshed", "zones", len(snap.Zones))
}

// Stop waits for the refresh loop to exit. Cancel the Start context first.
func (m *Manager) Stop() {
	m.wg.Wait()
	slog.Info("feed manager stopped")
}
