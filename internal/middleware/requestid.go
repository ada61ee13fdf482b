package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"

	// ContextRequestID is the gin context key the logging, recovery and
	// error middleware read the request ID from.
	ContextRequestID = "request_id"
)

// RequestID tags each request with an ID, honouring one supplied by the
// caller, and echoes it back in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ContextRequestID, rid)
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}
