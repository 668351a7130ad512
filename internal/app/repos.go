package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/repos"
)

type Repos struct {
	AssessmentResult repos.AssessmentResultRepo
	Protocol         repos.ProtocolRepo
	ProtocolItem     repos.ProtocolItemRepo
	AICallLog        repos.AICallLogRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		AssessmentResult: repos.NewAssessmentResultRepo(db, log),
		Protocol:         repos.NewProtocolRepo(db, log),
		ProtocolItem:     repos.NewProtocolItemRepo(db, log),
		AICallLog:        repos.NewAICallLogRepo(db, log),
	}
}
