package router

import (
	"github.com/anstar94/member-api-server/internal/auth"
	"github.com/anstar94/member-api-server/internal/config"
	"github.com/anstar94/member-api-server/internal/member"
	"github.com/anstar94/member-api-server/internal/meta"
	"github.com/anstar94/member-api-server/internal/shared/database"
	"github.com/anstar94/member-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	memberRepository := member.NewMemberRepository()

	// service
	memberService := member.NewMemberService(db.DB, memberRepository)
	authService := auth.NewAuthService(db.DB, memberRepository, memberService)

	// handler
	memberHandler := member.NewMemberHandler(memberService)
	authHandler := auth.NewAuthHandler(authService)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/login", authHandler.Login)
		authV1.GET("/status", authHandler.Status)
		authV1.GET("/me", authHandler.Me)
	}

	memberV1 := router.Group("/api/v1/members")
	{
		memberV1.POST("", memberHandler.Register)

		protected := memberV1.Group("")
		protected.Use(middleware.RequireLogin())
		{
			protected.GET("/me", memberHandler.Me)
		}
	}
}
