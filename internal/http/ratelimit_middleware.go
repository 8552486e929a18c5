package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"critiquelab/internal/metrics"
	"critiquelab/internal/service"
)

// RateLimitMiddleware aplica el rate limiter de ventana fija por IP de
// cliente y responde 429 con Retry-After cuando se agota la ventana.
func RateLimitMiddleware(limiter service.RateLimiter, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		decision := limiter.Allow(c.ClientIP())
		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			if m != nil {
				m.RateLimited.Inc()
			}
			retryAfter := int(decision.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please slow down and try again.",
				"retry_after": retryAfter,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
