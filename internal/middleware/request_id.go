package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"study-companion/pkg/log"
)

// HeaderRequestID is echoed back to the client for correlation.
const HeaderRequestID = "X-Request-ID"

// RequestID attaches a correlation id to the request context. Incoming ids
// are honored so upstream proxies can trace through.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
