package app

import (
	"os"
	"strings"

	"github.com/yungbote/longevity-backend/internal/clients/openai"
	"github.com/yungbote/longevity-backend/internal/clients/redis"
	"github.com/yungbote/longevity-backend/internal/logger"
)

type Clients struct {
	OpenaiClient openai.Client
	ScoreCache   redis.ScoreCache
}

// wireClients builds optional external clients. Both are allowed to be nil:
// without OpenAI the protocol merger runs on the static catalog alone, and
// without Redis latest-score reads fall through to Postgres.
func wireClients(log *logger.Logger) Clients {
	log.Info("Wiring clients...")

	var openaiClient openai.Client
	if strings.TrimSpace(os.Getenv("OPENAI_API_KEY")) != "" {
		c, err := openai.NewClient(log)
		if err != nil {
			log.Warn("openai client init failed, augmentation disabled", "error", err)
		} else {
			openaiClient = c
		}
	} else {
		log.Info("no OPENAI_API_KEY set, augmentation disabled")
	}

	var cache redis.ScoreCache
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		c, err := redis.NewScoreCache(log)
		if err != nil {
			log.Warn("redis init failed, score cache disabled", "error", err)
		} else {
			cache = c
		}
	}

	return Clients{
		OpenaiClient: openaiClient,
		ScoreCache:   cache,
	}
}
