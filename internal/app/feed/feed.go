package feed

import (
	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
	"github.com/Moustaash/lcc-availability-2/internal/domain/schedule"
)

// RawRecord is one date-range entry as published by the feed generator.
// Start and End are ISO calendar dates; End follows the checkout convention
// for booked/free records and the inclusive convention for option/blocked
// ones. PriceTotal is an EUR total present on priced free weeks.
type RawRecord struct {
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Status     string   `json:"status"`
	PriceTotal *float64 `json:"price_total,omitempty"`
}

// RawProperty is the per-property element of the feed array.
type RawProperty struct {
	ID      string      `json:"id"`
	Label   string      `json:"label"`
	Records []RawRecord `json:"records"`
}

// Snapshot is one fully normalized feed load: the property list sorted by
// display name plus each property's reservations sorted by start day.
// Snapshots are replaced wholesale on every sync and never mutated.
type Snapshot struct {
	Properties   []properties.Property
	Reservations map[properties.PropertyID][]schedule.Reservation
}

// ReservationCount totals reservations across all properties.
func (s Snapshot) ReservationCount() int {
	n := 0
	for _, rs := range s.Reservations {
		n += len(rs)
	}
	return n
}
