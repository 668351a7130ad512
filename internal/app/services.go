package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/scoring/catalog"
	"github.com/yungbote/longevity-backend/internal/services"
)

type Services struct {
	Score        services.ScoreService
	Projection   services.ProjectionService
	Augmentation services.AugmentationService
	Protocol     services.ProtocolService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	resolver, err := catalog.Default()
	if err != nil {
		return Services{}, fmt.Errorf("load intervention catalog: %w", err)
	}
	log.Info("Intervention catalog loaded", "version", resolver.Version())

	augmentation := services.NewAugmentationService(db, log, clients.OpenaiClient, reposet.AICallLog, cfg.AugmentationTimeout, cfg.AugmentationMax)

	return Services{
		Score:        services.NewScoreService(db, log, reposet.AssessmentResult, clients.ScoreCache),
		Projection:   services.NewProjectionService(log, cfg.ProjectionHorizons, cfg.ProjectionOptimal),
		Augmentation: augmentation,
		Protocol: services.NewProtocolService(
			db,
			log,
			reposet.AssessmentResult,
			reposet.Protocol,
			reposet.ProtocolItem,
			resolver,
			augmentation,
		),
	}, nil
}
