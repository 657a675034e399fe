package feed

import (
	"io"
	"log/slog"
	"sort"

	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
	"github.com/Moustaash/lcc-availability-2/internal/domain/schedule"
)

// Normalize converts raw feed properties into a Snapshot. It is the only
// place endpoint conventions are interpreted: booked/free records have their
// end date pulled back one day (checkout convention) unless start and end
// coincide, option/blocked records keep their end date as the last occupied
// day. Malformed records (unknown status, unparseable date, degenerate range
// after adjustment) are dropped with a warning; nothing here is fatal.
func Normalize(raw []RawProperty, logger *slog.Logger) Snapshot {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	snap := Snapshot{
		Properties:   make([]properties.Property, 0, len(raw)),
		Reservations: make(map[properties.PropertyID][]schedule.Reservation, len(raw)),
	}

	for _, rp := range raw {
		if rp.ID == "" {
			logger.Warn("feed property without id skipped", "label", rp.Label)
			continue
		}
		id := properties.PropertyID(rp.ID)
		label := rp.Label
		if label == "" {
			label = rp.ID
		}
		snap.Properties = append(snap.Properties, properties.Property{ID: id, DisplayName: label})

		reservations := make([]schedule.Reservation, 0, len(rp.Records))
		for _, rec := range rp.Records {
			r, err := normalizeRecord(id, rec)
			if err != nil {
				logger.Warn("feed record skipped",
					"property", rp.ID, "start", rec.Start, "end", rec.End, "status", rec.Status, "error", err)
				continue
			}
			reservations = append(reservations, r)
		}
		sort.SliceStable(reservations, func(i, j int) bool {
			return reservations[i].StartDay.Before(reservations[j].StartDay)
		})
		snap.Reservations[id] = reservations
	}

	sort.Slice(snap.Properties, func(i, j int) bool {
		return snap.Properties[i].DisplayName < snap.Properties[j].DisplayName
	})
	return snap
}

func normalizeRecord(id properties.PropertyID, rec RawRecord) (schedule.Reservation, error) {
	status, err := schedule.ParseStatus(rec.Status)
	if err != nil {
		return schedule.Reservation{}, err
	}
	start, err := schedule.ParseDay(rec.Start)
	if err != nil {
		return schedule.Reservation{}, err
	}
	end, err := schedule.ParseDay(rec.End)
	if err != nil {
		return schedule.Reservation{}, err
	}

	if status.ChecksOutOnEndDate() && !end.Equal(start) {
		end = schedule.AddDays(end, -1)
	}
	if start.After(end) {
		return schedule.Reservation{}, ErrDegenerateRange
	}

	r := schedule.Reservation{
		PropertyID: id,
		StartDay:   start,
		EndDay:     end,
		Status:     status,
	}
	if rec.PriceTotal != nil {
		p := schedule.PriceFromTotal(*rec.PriceTotal)
		r.Price = &p
	}
	return r, nil
}
