package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SimulatedLatency delays each request by a fixed duration to emulate
// network round-trips for the frontend. The sleep is per-request — other
// requests keep being served while one waits. Zero disables the middleware.
func SimulatedLatency(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		time.Sleep(d)
		c.Next()
	}
}
