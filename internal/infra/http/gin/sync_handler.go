package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"github.com/Moustaash/lcc-availability-2/internal/app/commands"
	"github.com/Moustaash/lcc-availability-2/internal/app/dto"
	"github.com/Moustaash/lcc-availability-2/internal/app/handlers/syncrun"
	"github.com/Moustaash/lcc-availability-2/internal/app/queries"
	"github.com/Moustaash/lcc-availability-2/internal/app/syncstate"
)

type SyncHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
}

func (h SyncHandler) Trigger(c *gin.Context) {
	if err := h.Commands.Dispatch(c.Request.Context(), syncrun.TriggerCommand{}); err != nil {
		if errors.Is(err, syncstate.ErrSyncInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h SyncHandler) Status(c *gin.Context) {
	result, err := queries.Ask[syncrun.GetStatusQuery, dto.SyncStatus](
		c.Request.Context(), h.Queries, syncrun.GetStatusQuery{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ SyncHTTP = SyncHandler{}
