package availability

import (
	"context"

	"github.com/Moustaash/lcc-availability-2/internal/app/dto"
	"github.com/Moustaash/lcc-availability-2/internal/app/queries"
)

const ListPropertiesKey = "availability.properties"

type ListPropertiesQuery struct{}

func (ListPropertiesQuery) Key() string { return ListPropertiesKey }

type ListPropertiesHandler struct {
	Snapshots SnapshotReader
}

func (h ListPropertiesHandler) Handle(ctx context.Context, _ ListPropertiesQuery) ([]dto.Property, error) {
	return dto.MapProperties(h.Snapshots.Properties(ctx)), nil
}

var _ queries.Handler[ListPropertiesQuery, []dto.Property] = ListPropertiesHandler{}
