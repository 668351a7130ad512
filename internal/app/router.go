package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/longevity-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:       cfg.ServiceName,
		AuthMiddleware:    middleware.Auth,
		AssessmentHandler: handlers.Assessment,
		ProjectionHandler: handlers.Projection,
		ProtocolHandler:   handlers.Protocol,
	})
}
