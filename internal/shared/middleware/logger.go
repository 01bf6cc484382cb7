package middleware

import (
	"log/slog"
	"time"

	"github.com/anstar94/member-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// LoggerMiddleware binds a request-scoped slog logger to the request context
// and writes one structured access log line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		requestID := GetRequestID(c)

		reqLogger := slog.Default().With("request_id", requestID)

		// Handlers, services and repositories pull this logger via logger.FromContext
		ctx := logger.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", latency.String(),
			"ip", c.ClientIP(),
			"userAgent", c.Request.UserAgent(),
		}

		if raw != "" {
			fields = append(fields, "query", raw)
		}

		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		msg := "Request processed"

		switch {
		case status >= 500:
			reqLogger.Error(msg, fields...)
		case status >= 400:
			reqLogger.Warn(msg, fields...)
		default:
			reqLogger.Info(msg, fields...)
		}
	}
}
