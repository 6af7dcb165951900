// Package store holds the current risk snapshot. The snapshot has exactly
// one writer (the feed manager) and many readers (route evaluator, API,
// broadcast); updates swap the reference so readers never see a partial set.
package store

import (
	"sync/atomic"
	"time"

	"github.com/avinya-safety/aegis/internal/models"
)

type SnapshotStore struct {
	current atomic.Pointer[models.Snapshot]
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Replace publishes a new snapshot. The previous one stays valid for any
// reader still holding it.
func (s *SnapshotStore) Replace(snap *models.Snapshot) {
	s.current.Store(snap)
}

// Current returns the latest snapshot, or an empty one before the first
// refresh completes.
func (s *SnapshotStore) Current() *models.Snapshot {
	if snap := s.current.Load(); snap != nil {
		return snap
	}
	return &models.Snapshot{}
}

type Stats struct {
	TotalZones int       `json:"totalZones"`
	HighRisk   int       `json:"highRisk"`
	MediumRisk int       `json:"mediumRisk"`
	LowRisk    int       `json:"lowRisk"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// Stats derives per-level zone counts from the current snapshot.
func (s *SnapshotStore) Stats() Stats {
	snap := s.Current()
	st := Stats{
		TotalZones: len(snap.Zones),
		LastUpdate: snap.UpdatedAt,
	}
	for _, z := range snap.Zones {
		switch z.Risk {
		case models.RiskHigh:
			st.HighRisk++
		case models.RiskMedium:
			st.MediumRisk++
		default:
			st.LowRisk++
		}
	}
	return st
}
