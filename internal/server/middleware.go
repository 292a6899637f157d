package server

import (
	"fmt"
	"net/http"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID propagates the caller's request ID or assigns a new one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// clientLimit applies a token bucket per client address
func clientLimit(cfg model.RateLimitConfig) gin.HandlerFunc {
	limiter := worker.NewLimiter(cfg.ClientRPS, cfg.ClientBurst, cfg.ClientIdleTTL)
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "Too many requests",
				"message": fmt.Sprintf("rate limit exceeded: %.1f requests per second", cfg.ClientRPS),
			})
			return
		}
		c.Next()
	}
}

func recoverJSON(c *gin.Context, recovered any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"message": fmt.Sprint(recovered),
	})
}
