package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

// Timeout attaches a deadline to the request context. Handlers and the
// database layer observe the context; no goroutine races with the handler.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			requestID, _ := c.Get(RequestIDKey)

			slog.Warn("Request deadline exceeded",
				"request_id", requestID,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", timeout.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}

// IsTimeout reports whether the request deadline has already passed.
func IsTimeout(c *gin.Context) bool {
	return c.Request.Context().Err() == context.DeadlineExceeded
}
