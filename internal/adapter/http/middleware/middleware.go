package middleware

import (
	"net/http"
	"time"

	"secure-wallet-core/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// Header names for actor identity, set by the fronting auth layer.
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"
	HeaderSessionID = "X-Session-ID"

	// Context keys
	CtxRequestID = "request_id"
	CtxActor     = "actor"
)

// Actor builds the request-scoped actor context from trusted headers and the
// client IP. Authentication happens upstream; this layer only carries
// identity through to services and the audit trail.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		actor := domain.ActorContext{
			RequestID: requestID,
			SessionID: c.GetHeader(HeaderSessionID),
			ClientIP:  c.ClientIP(),
		}
		if raw := c.GetHeader(HeaderUserID); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				actor.UserID = &id
			}
		}

		c.Set(CtxRequestID, requestID)
		c.Set(CtxActor, actor)
		c.Next()
	}
}

// ActorFrom retrieves the actor context set by the Actor middleware.
func ActorFrom(c *gin.Context) domain.ActorContext {
	if v, ok := c.Get(CtxActor); ok {
		if actor, ok := v.(domain.ActorContext); ok {
			return actor
		}
	}
	return domain.ActorContext{ClientIP: c.ClientIP()}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
