package memory

import (
	"context"
	"sync"

	"github.com/Moustaash/lcc-availability-2/internal/app/feed"
	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
	"github.com/Moustaash/lcc-availability-2/internal/domain/schedule"
)

// SnapshotStore holds the current normalized feed snapshot. Replace swaps
// the whole snapshot at once, so concurrent readers see either the previous
// or the next complete data set, never a mix.
type SnapshotStore struct {
	mu   sync.RWMutex
	snap feed.Snapshot
}

// NewSnapshotStore starts empty; handlers serve empty results until the
// first sync lands.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{snap: feed.Snapshot{}}
}

// Replace installs a new snapshot wholesale.
func (s *SnapshotStore) Replace(_ context.Context, snap feed.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	return nil
}

// Properties returns the sorted property list of the current snapshot.
func (s *SnapshotStore) Properties(_ context.Context) []properties.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Properties
}

// Reservations returns one property's reservations, sorted by start day.
// Unknown properties yield nil.
func (s *SnapshotStore) Reservations(_ context.Context, id properties.PropertyID) []schedule.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Reservations[id]
}
