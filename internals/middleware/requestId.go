package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CtxRequestID = "requestID"

// RequestID tags every request with an ID, honoring one supplied by the
// caller, and echoes it back in the response headers.
func RequestID(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.New().String()
	}
	c.Set(CtxRequestID, id)
	c.Writer.Header().Set("X-Request-ID", id)
	c.Next()
}
