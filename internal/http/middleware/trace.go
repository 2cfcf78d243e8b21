// README: Trace id middleware; propagates or assigns X-Trace-ID.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TraceHeader = "X-Trace-ID"
	traceKey    = "trace_id"
)

// TraceID reuses an incoming X-Trace-ID when it is a UUID and generates one
// otherwise. The id is echoed on the response.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(TraceHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(traceKey, id)
		c.Header(TraceHeader, id)
		c.Next()
	}
}

// TraceIDFrom returns the id set by TraceID, or "".
func TraceIDFrom(c *gin.Context) string {
	return c.GetString(traceKey)
}
