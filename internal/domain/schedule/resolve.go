package schedule

import (
	"time"

	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
)

// ResolveDay returns the single authoritative reservation covering the given
// day for the property, or nil when no reservation covers it (which is not
// the same as an explicit FREE reservation). Overlaps are settled by status
// priority; when several reservations share the top status the first one in
// input order wins. That tie-break is deterministic but overlapping
// same-status records usually indicate bad feed data.
//
// The result is a pure function of the inputs, so callers may memoize it per
// (property, day) for a fixed reservation set.
func ResolveDay(propertyID properties.PropertyID, day time.Time, reservations []Reservation) *Reservation {
	d := DayOf(day)
	var best *Reservation
	for i := range reservations {
		r := &reservations[i]
		if r.PropertyID != propertyID || !r.ContainsDay(d) {
			continue
		}
		if best == nil || r.Status.Priority() > best.Status.Priority() {
			best = r
		}
	}
	return best
}
