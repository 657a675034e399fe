package ginserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"github.com/Moustaash/lcc-availability-2/internal/app/dto"
	availabilityapp "github.com/Moustaash/lcc-availability-2/internal/app/handlers/availability"
	"github.com/Moustaash/lcc-availability-2/internal/app/queries"
	"github.com/Moustaash/lcc-availability-2/internal/domain/schedule"
)

type AvailabilityHandler struct {
	Queries queries.Bus
}

func (h AvailabilityHandler) Properties(c *gin.Context) {
	result, err := queries.Ask[availabilityapp.ListPropertiesQuery, []dto.Property](
		c.Request.Context(), h.Queries, availabilityapp.ListPropertiesQuery{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h AvailabilityHandler) Bars(c *gin.Context) {
	from, to, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query := availabilityapp.GetBarsQuery{PropertyID: c.Param("id"), From: from, To: to}
	result, err := queries.Ask[availabilityapp.GetBarsQuery, dto.PropertyBars](
		c.Request.Context(), h.Queries, query)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h AvailabilityHandler) Day(c *gin.Context) {
	day, err := schedule.ParseDay(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid day: %s", c.Param("day"))})
		return
	}
	query := availabilityapp.ResolveDayQuery{PropertyID: c.Param("id"), Day: day}
	result, err := queries.Ask[availabilityapp.ResolveDayQuery, dto.DayResolution](
		c.Request.Context(), h.Queries, query)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// parseWindow accepts either month=YYYY-MM or an explicit from/to day pair.
func parseWindow(c *gin.Context) (time.Time, time.Time, error) {
	if month := c.Query("month"); month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid month: %s", month)
		}
		from, to := schedule.MonthWindow(t.Year(), t.Month())
		return from, to, nil
	}
	from, err := schedule.ParseDay(c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from day: %s", c.Query("from"))
	}
	to, err := schedule.ParseDay(c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to day: %s", c.Query("to"))
	}
	return from, to, nil
}

func respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availabilityapp.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, availabilityapp.ErrInvalidWindow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

var _ AvailabilityHTTP = AvailabilityHandler{}
