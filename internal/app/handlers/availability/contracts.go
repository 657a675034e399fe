package availability

import (
	"context"
	"errors"

	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
	"github.com/Moustaash/lcc-availability-2/internal/domain/schedule"
)

var (
	ErrPropertyNotFound = errors.New("availability: property not found")
	ErrInvalidWindow    = errors.New("availability: window start after window end")
)

// SnapshotReader exposes the current normalized feed snapshot to read
// handlers. The snapshot may be empty before the first successful sync;
// every handler tolerates that.
type SnapshotReader interface {
	Properties(ctx context.Context) []properties.Property
	Reservations(ctx context.Context, id properties.PropertyID) []schedule.Reservation
}

func propertyExists(ctx context.Context, snapshots SnapshotReader, id properties.PropertyID) bool {
	for _, p := range snapshots.Properties(ctx) {
		if p.ID == id {
			return true
		}
	}
	return false
}
