package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID makes sure every request carries an X-Request-ID, generating
// one when the client did not send it. The logger keys its lines on it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set("X-Request-ID", id)
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
