package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"escrow-service/internal/auth"
	"escrow-service/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const (
	requestIDKey = "requestID"
	principalKey = "principal"
)

func RequestIDMiddleware() gin.HandlerFunc {
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

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		event := log.Info().
			Str("request_id", requestID(c)).
			Int("status", c.Writer.Status()).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", raw).
			Str("ip", c.ClientIP()).
			Dur("latency", time.Since(start))
		if p, ok := principalFrom(c); ok {
			event = event.Str("subject", p.Subject).Str("role", string(p.Role))
		}
		event.Msg("HTTP Request")
	}
}

// RateLimitMiddleware limits requests per client IP with an in-memory store.
func RateLimitMiddleware(limit int64, period time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		limit = 120
	}
	if period <= 0 {
		period = time.Minute
	}

	instance := limiter.New(memory.NewStore(), limiter.Rate{Period: period, Limit: limit})

	return func(c *gin.Context) {
		lctx, err := instance.Get(c, c.ClientIP())
		if err != nil {
			log.Error().Err(err).Str("request_id", requestID(c)).Msg("rate limiter failed")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.ErrorResponse{
				Error: "too many requests, try again later",
				Code:  "RATE_LIMITED",
			})
			return
		}
		c.Next()
	}
}

// AuthMiddleware requires a valid bearer token and stores the caller on the context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "missing bearer token",
				Code:  "UNAUTHORIZED",
			})
			return
		}

		p, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: err.Error(),
				Code:  "UNAUTHORIZED",
			})
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireRole rejects callers whose token role is not one of roles.
func RequireRole(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalFrom(c)
		if ok {
			for _, r := range roles {
				if p.Role == r {
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
			Error: "this operation is not available for your role",
			Code:  "FORBIDDEN",
		})
	}
}

func principalFrom(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

// callerUserID returns the chat user id of the caller; routes guarded by RequireRole(RoleUser) always have one.
func callerUserID(c *gin.Context) (int64, bool) {
	p, ok := principalFrom(c)
	if !ok {
		return 0, false
	}
	return p.UserID()
}
