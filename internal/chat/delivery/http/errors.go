package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-companion/internal/chat"
	"study-companion/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses. Anything
// unrecognized is assumed to come from the agent gateway.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, chat.ErrEmptyQuestion):
		response.Error(c, err, nil)
	default:
		response.GatewayError(c)
	}
}
