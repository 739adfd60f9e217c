package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/config"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/handler"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	sessionH *handler.SessionHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	sessions := v1.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.GET("/:id", sessionH.Get)
	sessions.POST("/:id/extract", sessionH.Extract)
	sessions.GET("/:id/records", sessionH.Records)
	sessions.GET("/:id/export", sessionH.Export)
	sessions.POST("/:id/verify", sessionH.Verify)
	sessions.DELETE("/:id", sessionH.Delete)

	return r
}
