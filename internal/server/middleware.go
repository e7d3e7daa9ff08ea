package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const requestIDKey = "request_id"

// RequestID injects an X-Request-ID header into the request and response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger logs each HTTP request with method, path, status, and latency.
func Logger(l *log.Logger) gin.HandlerFunc {
	if l == nil {
		l = log.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		requestID, _ := c.Get(requestIDKey)
		l.Printf("[%s] %s %s %d %s",
			requestID,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency,
		)
	}
}

// NewRateLimiter builds the shared limiter for cfg, or nil when limiting is off.
func NewRateLimiter(cfg RateLimitConfig) *rate.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
}

// RateLimit rejects requests with 429 once limiter runs out of tokens.
func RateLimit(limiter *rate.Limiter, l *log.Logger) gin.HandlerFunc {
	if l == nil {
		l = log.Default()
	}
	return func(c *gin.Context) {
		if !limiter.Allow() {
			l.Printf("rate limit exceeded: %s %s", c.Request.Method, c.Request.URL.Path)
			RespondError(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please retry later")
			c.Abort()
			return
		}
		c.Next()
	}
}
