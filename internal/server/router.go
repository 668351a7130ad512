package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/longevity-backend/internal/handlers"
	"github.com/yungbote/longevity-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName       string
	AuthMiddleware    *middleware.AuthMiddleware
	AssessmentHandler *handlers.AssessmentHandler
	ProjectionHandler *handlers.ProjectionHandler
	ProtocolHandler   *handlers.ProtocolHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Session-ID"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		api.POST("/assessments/:type/score", cfg.AssessmentHandler.Score)
		api.GET("/assessments/latest", cfg.AssessmentHandler.GetLatest)
		api.GET("/projection", cfg.ProjectionHandler.Project)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Protocol
	protected.POST("/protocol/generate", cfg.ProtocolHandler.Generate)
	protected.GET("/protocol", cfg.ProtocolHandler.GetActive)

	return router
}
