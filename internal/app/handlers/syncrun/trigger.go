package syncrun

import (
	"context"

	"github.com/Moustaash/lcc-availability-2/internal/app/commands"
	"github.com/Moustaash/lcc-availability-2/internal/app/dto"
	"github.com/Moustaash/lcc-availability-2/internal/app/queries"
	"github.com/Moustaash/lcc-availability-2/internal/app/syncstate"
)

const (
	TriggerKey   = "sync.trigger"
	GetStatusKey = "sync.status"
)

// TriggerCommand requests one feed sync run.
type TriggerCommand struct{}

func (TriggerCommand) Key() string { return TriggerKey }

type TriggerHandler struct {
	Pipeline *syncstate.Pipeline
}

func (h TriggerHandler) Handle(ctx context.Context, _ TriggerCommand) error {
	return h.Pipeline.Sync(ctx)
}

var _ commands.Handler[TriggerCommand] = TriggerHandler{}

// GetStatusQuery asks for the current pipeline state.
type GetStatusQuery struct{}

func (GetStatusQuery) Key() string { return GetStatusKey }

type GetStatusHandler struct {
	Pipeline *syncstate.Pipeline
}

func (h GetStatusHandler) Handle(_ context.Context, _ GetStatusQuery) (dto.SyncStatus, error) {
	return dto.MapSyncStatus(h.Pipeline.Status()), nil
}

var _ queries.Handler[GetStatusQuery, dto.SyncStatus] = GetStatusHandler{}
