package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Progress
// routes live beside the quiz routes because the same agent serves both.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	qz := rg.Group("/quiz")
	{
		qz.POST("", h.Generate)
		qz.POST("/submit", h.Submit)
	}

	pr := rg.Group("/progress")
	{
		pr.GET("/dashboard", h.Dashboard)
		pr.GET("/badges", h.Badges)
	}
}
