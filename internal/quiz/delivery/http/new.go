package http

import (
	"github.com/gin-gonic/gin"

	"study-companion/internal/quiz"
	"study-companion/pkg/log"
)

// Handler is the public interface for the quiz HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	Submit(c *gin.Context)
	Dashboard(c *gin.Context)
	Badges(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc quiz.UseCase
}

// New creates a new HTTP handler for the quiz domain.
func New(l log.Logger, uc quiz.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
