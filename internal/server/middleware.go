package server

import (
	"auction-ledger/internal/auctionerrors"
	"auction-ledger/internal/metrics"
	"auction-ledger/internal/ratelimit"
	"auction-ledger/services/auction/helpers"
	"auction-ledger/utils"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// CallerHeader carries the caller identity supplied by the hosting environment
	CallerHeader = "X-Caller-Identity"
	// RequestIDHeader is echoed back on every response
	RequestIDHeader = "X-Request-ID"
)

// RequestIDMiddleware keeps a well-formed incoming request id or assigns a new one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if !utils.IsID(id) {
		id = utils.GenerateID()
	}
	c.Set("request_id", id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// CallerMiddleware places the trusted caller identity on the context
func CallerMiddleware(c *gin.Context) {
	c.Set(helpers.CallerKey, strings.TrimSpace(c.GetHeader(CallerHeader)))
	c.Next()
}

// RequireCaller rejects commands that arrive without a caller identity
func RequireCaller(c *gin.Context) {
	if helpers.Caller(c) == "" {
		err := errors.New("missing " + CallerHeader + " header")
		utils.JSONError(c, http.StatusBadRequest, err, "invalid request", auctionerrors.Code(auctionerrors.ErrInvalidRequest))
		c.Abort()
		return
	}
	c.Next()
}

// RateLimitMiddleware throttles each caller independently
func RateLimitMiddleware(limiter *ratelimit.CallerLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := string(helpers.Caller(c))
		if !limiter.Allow(caller, time.Now()) {
			utils.JSONError(c, http.StatusTooManyRequests, errors.New("rate limit exceeded"), "too many requests", "RateLimited")
			utils.Warn("rate limit exceeded", map[string]any{"caller": caller, "path": c.Request.URL.Path})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLoggerMiddleware logs incoming requests with timing and records request metrics
func RequestLoggerMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next() // process request

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))

		utils.Info("HTTP Request", map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"request_id": c.GetString("request_id"),
			"caller":     c.GetString(helpers.CallerKey),
		})
	}
}
