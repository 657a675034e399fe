package availability

import (
	"context"
	"time"

	"github.com/Moustaash/lcc-availability-2/internal/app/dto"
	"github.com/Moustaash/lcc-availability-2/internal/app/queries"
	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
	"github.com/Moustaash/lcc-availability-2/internal/domain/schedule"
)

const ResolveDayKey = "availability.day"

// ResolveDayQuery asks which reservation governs one calendar day.
type ResolveDayQuery struct {
	PropertyID string
	Day        time.Time
}

func (ResolveDayQuery) Key() string { return ResolveDayKey }

type ResolveDayHandler struct {
	Snapshots SnapshotReader
}

func (h ResolveDayHandler) Handle(ctx context.Context, q ResolveDayQuery) (dto.DayResolution, error) {
	id := properties.PropertyID(q.PropertyID)
	if !propertyExists(ctx, h.Snapshots, id) {
		return dto.DayResolution{}, ErrPropertyNotFound
	}
	r := schedule.ResolveDay(id, q.Day, h.Snapshots.Reservations(ctx, id))
	return dto.MapDayResolution(id, q.Day, r), nil
}

var _ queries.Handler[ResolveDayQuery, dto.DayResolution] = ResolveDayHandler{}
