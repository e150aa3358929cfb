package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-companion/internal/quiz"
	"study-companion/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses. Anything
// unrecognized is assumed to come from the agent gateway.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quiz.ErrEmptyAnswers):
		response.Error(c, err, nil)
	case errors.Is(err, quiz.ErrBadAgentPayload):
		response.GatewayError(c)
	default:
		response.GatewayError(c)
	}
}
