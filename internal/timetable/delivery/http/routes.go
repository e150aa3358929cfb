package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tt := rg.Group("/timetable")
	{
		tt.GET("", h.Show)
		tt.DELETE("/blocks/:id", h.Remove)
		tt.POST("/export", h.Export)
	}
}
