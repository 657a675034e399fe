package dto

import (
	"time"

	"github.com/Moustaash/lcc-availability-2/internal/app/syncstate"
)

// SyncStatus is the public view of the data-load pipeline state.
type SyncStatus struct {
	State        string `json:"state"`
	LastRunID    string `json:"last_run_id,omitempty"`
	LastSyncedAt string `json:"last_synced_at,omitempty"`
	LastError    string `json:"last_error,omitempty"`
}

// MapSyncStatus converts the pipeline status snapshot.
func MapSyncStatus(s syncstate.Status) SyncStatus {
	out := SyncStatus{
		State:     string(s.State),
		LastRunID: s.LastRunID,
		LastError: s.LastError,
	}
	if !s.LastSyncedAt.IsZero() {
		out.LastSyncedAt = s.LastSyncedAt.UTC().Format(time.RFC3339)
	}
	return out
}
