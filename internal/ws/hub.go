// Package ws implements the realtime broadcast layer: a WebSocket hub that
// fans the current risk snapshot out to every connected client and relays
// SOS alerts. No per-client state, no delivery guarantees, no history.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/avinya-safety/aegis/internal/models"
	"github.com/avinya-safety/aegis/internal/observability"
	"github.com/avinya-safety/aegis/internal/store"
)

type Hub struct {
	store     *store.SnapshotStore
	metrics   *observability.Metrics
	heartbeat time.Duration
	upgrader  websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]bool
	closed  bool

	wg sync.WaitGroup
}

func NewHub(st *store.SnapshotStore, metrics *observability.Metrics, heartbeat time.Duration) *Hub {
	return &Hub{
		store:     st,
		metrics:   metrics,
		heartbeat: heartbeat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The demo frontend is served from a different origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]bool),
	}
}

// Start launches the heartbeat loop: the current snapshot is re-broadcast
// on a fixed interval even without a refresh, so clients recover from
// missed updates.
func (h *Hub) Start(ctx context.Context) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		ticker := time.NewTicker(h.heartbeat)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if snap := h.store.Current(); len(snap.Zones) > 0 {
					h.BroadcastSnapshot(snap)
				}
			}
		}
	}()
}

// BroadcastSnapshot pushes a RISK_UPDATE with the given snapshot to all
// connected clients. Implements feed.Broadcaster.
func (h *Hub) BroadcastSnapshot(snap *models.Snapshot) {
	if len(snap.Zones) == 0 {
		return
	}
	payload, err := json.Marshal(newRiskUpdate(snap))
	if err != nil {
		slog.Error("marshal risk update failed", "error", err)
		return
	}
	h.broadcast(payload)
}

// broadcast fans raw bytes out to every registered client. Clients with a
// full send buffer are skipped; the next heartbeat catches them up.
func (h *Hub) broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			// Skip slow clients
		}
	}
}

// Serve upgrades an HTTP request to a WebSocket connection and registers
// it. Late joiners immediately receive the current snapshot.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, 16)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = true
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.ConnectedClients.Inc()
	}
	slog.Info("client connected", "remote", conn.RemoteAddr())

	if snap := h.store.Current(); len(snap.Zones) > 0 {
		if payload, err := json.Marshal(newRiskUpdate(snap)); err == nil {
			c.send <- payload
		}
	}

	h.wg.Add(2)
	go func() {
		defer h.wg.Done()
		c.writePump()
	}()
	go func() {
		defer h.wg.Done()
		c.readPump()
	}()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		if h.metrics != nil {
			h.metrics.ConnectedClients.Dec()
		}
	}
	h.mu.Unlock()
}

// relaySOS stamps an inbound SOS payload with a server id and timestamp and
// re-broadcasts it to all clients, sender included. Malformed payloads are
// dropped.
func (h *Hub) relaySOS(payload json.RawMessage) {
	data := make(map[string]any)
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &data); err != nil {
			slog.Warn("dropping malformed SOS payload", "error", err)
			return
		}
	}
	data["id"] = uuid.NewString()
	data["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	out, err := json.Marshal(SosAlertMessage{Type: TypeSOSAlert, Data: data})
	if err != nil {
		slog.Error("marshal SOS alert failed", "error", err)
		return
	}

	if h.metrics != nil {
		h.metrics.SosAlerts.Inc()
	}
	h.broadcast(out)
}

// ClientCount returns the number of registered connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client and waits for all pumps and the heartbeat
// loop to exit. Cancel the Start context first.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
		if h.metrics != nil {
			h.metrics.ConnectedClients.Dec()
		}
	}
	h.mu.Unlock()

	h.wg.Wait()
}
