package testutil

import (
	"time"

	"github.com/anstar94/member-api-server/internal/config"
)

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "member-api-test",
			Env:  "test",
			Port: 8080,
		},
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            3306,
			Name:            "test",
			User:            "test",
			Password:        "test",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
			IsAutoMigrate:   true,
		},
		Session: config.SessionConfig{
			CookieName: "member_session",
			Secret:     "test-session-secret-key-must-be-32-chars",
			TTL:        24 * time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
	}
}
