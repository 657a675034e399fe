package schedule

import (
	"time"

	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
)

// Reservation is a status-tagged closed day interval for one property.
// StartDay and EndDay are UTC midnight days; EndDay is the last occupied
// day, inclusive. Values are built once per feed sync and never mutated.
type Reservation struct {
	PropertyID properties.PropertyID
	StartDay   time.Time
	EndDay     time.Time
	Status     Status
	Price      *Price
}

// ContainsDay reports whether the reservation covers the given calendar day.
// Time of day is ignored.
func (r Reservation) ContainsDay(day time.Time) bool {
	d := DayOf(day)
	return !d.Before(r.StartDay) && !d.After(r.EndDay)
}

// Nights is the number of occupied nights, at least one for a valid
// reservation.
func (r Reservation) Nights() int {
	return DaysBetween(r.StartDay, r.EndDay) + 1
}
