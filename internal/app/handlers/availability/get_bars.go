package availability

import (
	"context"
	"time"

	"github.com/Moustaash/lcc-availability-2/internal/app/dto"
	"github.com/Moustaash/lcc-availability-2/internal/app/queries"
	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
	"github.com/Moustaash/lcc-availability-2/internal/domain/schedule"
)

const GetBarsKey = "availability.bars"

// GetBarsQuery asks for the window-clipped render bars of one property.
type GetBarsQuery struct {
	PropertyID string
	From       time.Time
	To         time.Time
}

func (GetBarsQuery) Key() string { return GetBarsKey }

type GetBarsHandler struct {
	Snapshots SnapshotReader
}

func (h GetBarsHandler) Handle(ctx context.Context, q GetBarsQuery) (dto.PropertyBars, error) {
	from := schedule.DayOf(q.From)
	to := schedule.DayOf(q.To)
	if from.After(to) {
		return dto.PropertyBars{}, ErrInvalidWindow
	}
	id := properties.PropertyID(q.PropertyID)
	if !propertyExists(ctx, h.Snapshots, id) {
		return dto.PropertyBars{}, ErrPropertyNotFound
	}
	bars := schedule.RenderBars(id, h.Snapshots.Reservations(ctx, id), from, to)
	return dto.MapPropertyBars(id, bars, from, to), nil
}

var _ queries.Handler[GetBarsQuery, dto.PropertyBars] = GetBarsHandler{}
