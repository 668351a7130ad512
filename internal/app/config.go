package app

import (
	"time"

	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/utils"
)

type Config struct {
	ServiceName         string
	Environment         string
	JWTSecretKey        string
	AugmentationTimeout time.Duration
	AugmentationMax     int
	ProjectionHorizons  []int
	ProjectionOptimal   float64
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	augTimeoutSeconds := utils.GetEnvAsInt("AUGMENTATION_TIMEOUT_SECONDS", 10, log)
	augMaxItems := utils.GetEnvAsInt("AUGMENTATION_MAX_ITEMS", 3, log)
	optimal := utils.GetEnvAsFloat("PROJECTION_OPTIMAL_SCORE", 135, log)
	return Config{
		ServiceName:         utils.GetEnv("SERVICE_NAME", "longevity-backend", log),
		Environment:         utils.GetEnv("ENVIRONMENT", "development", log),
		JWTSecretKey:        jwtSecretKey,
		AugmentationTimeout: time.Duration(augTimeoutSeconds) * time.Second,
		AugmentationMax:     augMaxItems,
		ProjectionHorizons:  []int{5, 10, 15, 20},
		ProjectionOptimal:   optimal,
	}
}
