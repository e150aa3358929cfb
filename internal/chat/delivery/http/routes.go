package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	ch := rg.Group("/chat")
	{
		ch.POST("", h.Send)
		ch.POST("/solve", h.Solve)
		ch.GET("/history", h.History)
	}
}
