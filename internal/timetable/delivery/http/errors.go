package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"study-companion/internal/timetable"
	"study-companion/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses. Anything
// unrecognized is assumed to come from the agent gateway.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, timetable.ErrEmptyBlockID):
		response.Error(c, err, nil)
	case errors.Is(err, timetable.ErrBlockNotAddressable):
		c.JSON(http.StatusUnprocessableEntity, response.Resp{
			ErrorCode: http.StatusUnprocessableEntity,
			Message:   err.Error(),
		})
	case errors.Is(err, timetable.ErrCalendarNotConfigured):
		response.Conflict(c, err)
	case errors.Is(err, timetable.ErrNothingToExport):
		response.Conflict(c, err)
	default:
		response.GatewayError(c)
	}
}
