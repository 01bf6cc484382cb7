package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/anstar94/member-api-server/internal/config"
	"github.com/anstar94/member-api-server/internal/shared/middleware"
	sharedSession "github.com/anstar94/member-api-server/internal/shared/session"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Bootstrap handles common server setup that can be reused across projects
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates and configures a gin engine with common middleware
// This is reusable across different projects
func (b *Bootstrap) SetupEngine() (*gin.Engine, error) {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()

	// Session store (cookie or redis, per configuration)
	store, err := sharedSession.NewStore(b.cfg)
	if err != nil {
		return nil, fmt.Errorf("세션 스토어 생성 실패: %w", err)
	}

	// Essential middleware (common for all projects)
	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout)) // 30 second global timeout
	engine.Use(middleware.LoggerMiddleware())
	engine.Use(sessions.Sessions(b.cfg.Session.CookieName, store))

	// Note: Health endpoints are now handled in routes.go following Clean Architecture
	// This keeps the bootstrap focused on middleware setup only

	return engine, nil
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered interface{}) {
	if err, ok := recovered.(string); ok {
		slog.Error("Panic Recovered",
			"error", err,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", middleware.GetRequestID(c),
		)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error", "request_id": middleware.GetRequestID(c),
	})
}
