package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware keeps a caller's trace id when it is a valid UUID,
// otherwise it issues a new one.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var traceID string
		if id, err := uuid.Parse(c.GetHeader(TraceIDHeader)); err == nil {
			traceID = id.String()
		} else {
			traceID = uuid.New().String()
		}
		c.Set("trace_id", traceID)
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
