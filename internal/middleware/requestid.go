package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the gin context key holding the request id
	RequestIDKey = "request_id"

	requestIDHeader = "X-Request-ID"
)

// RequestID attaches an id to every request, reusing the client-supplied
// header when present, and echoes it back in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the request id set by RequestID, or "" when absent.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
