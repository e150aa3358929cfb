package http

import (
	"github.com/gin-gonic/gin"

	"study-companion/internal/timetable"
	"study-companion/pkg/log"
)

// Handler is the public interface for the timetable HTTP delivery layer.
type Handler interface {
	Show(c *gin.Context)
	Remove(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc timetable.UseCase
}

// New creates a new HTTP handler for the timetable domain.
func New(l log.Logger, uc timetable.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
