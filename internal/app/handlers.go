package app

import (
	"github.com/yungbote/longevity-backend/internal/handlers"
	"github.com/yungbote/longevity-backend/internal/logger"
)

type Handlers struct {
	Assessment *handlers.AssessmentHandler
	Projection *handlers.ProjectionHandler
	Protocol   *handlers.ProtocolHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Assessment: handlers.NewAssessmentHandler(log, services.Score),
		Projection: handlers.NewProjectionHandler(log, services.Projection),
		Protocol:   handlers.NewProtocolHandler(log, services.Protocol),
	}
}
