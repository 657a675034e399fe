package schedule

import (
	"time"

	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
)

// RenderBar is one reservation clipped to a rendering window. Bars are never
// merged: adjacent reservations of the same status stay separate so true
// reservation boundaries keep their cap styling.
//
// ClippedStart and ClippedEnd record whether the visible edge was imposed by
// the window rather than being a true reservation boundary; the two cases
// render differently (a window clip gets no rounded cap).
type RenderBar struct {
	PropertyID      properties.PropertyID
	Status          Status
	Price           *Price
	FirstVisibleDay time.Time
	LastVisibleDay  time.Time
	ClippedStart    bool
	ClippedEnd      bool

	// PriceBucket is set for FREE bars only; other statuses leave it empty.
	PriceBucket PriceBucket
}

// ColumnSpan converts the bar into a half-open grid column interval relative
// to the window start, ready for positional rendering.
func (b RenderBar) ColumnSpan(windowStart time.Time) (start, end int) {
	start = DaysBetween(windowStart, b.FirstVisibleDay)
	end = DaysBetween(windowStart, b.LastVisibleDay) + 1
	return start, end
}

// RenderBars produces the window-clipped bars for one property, one bar per
// reservation intersecting [windowStart, windowEnd], in reservation input
// order. An empty reservation set yields no bars.
func RenderBars(propertyID properties.PropertyID, reservations []Reservation, windowStart, windowEnd time.Time) []RenderBar {
	ws := DayOf(windowStart)
	we := DayOf(windowEnd)

	bars := make([]RenderBar, 0, len(reservations))
	for _, r := range reservations {
		if r.PropertyID != propertyID {
			continue
		}
		if r.EndDay.Before(ws) || r.StartDay.After(we) {
			continue
		}
		first, clippedStart := r.StartDay, false
		if first.Before(ws) {
			first, clippedStart = ws, true
		}
		last, clippedEnd := r.EndDay, false
		if last.After(we) {
			last, clippedEnd = we, true
		}
		// Cannot happen after the intersection check, guarded anyway.
		if first.After(last) {
			continue
		}
		bar := RenderBar{
			PropertyID:      r.PropertyID,
			Status:          r.Status,
			Price:           r.Price,
			FirstVisibleDay: first,
			LastVisibleDay:  last,
			ClippedStart:    clippedStart,
			ClippedEnd:      clippedEnd,
		}
		if r.Status == StatusFree {
			bar.PriceBucket = r.Price.Bucket()
		}
		bars = append(bars, bar)
	}
	return bars
}
