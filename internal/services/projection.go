package services

import (
	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/scoring"
)

type ProjectionService interface {
	// Project computes the biological-age trajectory for a sustained score.
	// Zero-valued horizons/optimal fall back to the configured defaults.
	Project(sustainedScore float64, horizons []int, optimal float64) []scoring.Projection
}

type projectionService struct {
	log             *logger.Logger
	defaultHorizons []int
	defaultOptimal  float64
}

func NewProjectionService(log *logger.Logger, defaultHorizons []int, defaultOptimal float64) ProjectionService {
	if len(defaultHorizons) == 0 {
		defaultHorizons = scoring.DefaultHorizons
	}
	if defaultOptimal == 0 {
		defaultOptimal = scoring.DefaultOptimalScore
	}
	return &projectionService{
		log:             log.With("service", "ProjectionService"),
		defaultHorizons: defaultHorizons,
		defaultOptimal:  defaultOptimal,
	}
}

func (s *projectionService) Project(sustainedScore float64, horizons []int, optimal float64) []scoring.Projection {
	if len(horizons) == 0 {
		horizons = s.defaultHorizons
	}
	if optimal == 0 {
		optimal = s.defaultOptimal
	}
	return scoring.Project(sustainedScore, horizons, optimal)
}
