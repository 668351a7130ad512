package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/scoring"
)

// ScoreCache keeps each owner's most recent scoring result for fast dashboard
// reads. Strictly best-effort: every method is nil-safe and callers ignore
// errors beyond logging.
type ScoreCache interface {
	SetLatest(ctx context.Context, ownerID uuid.UUID, result scoring.Result) error
	GetLatest(ctx context.Context, ownerID uuid.UUID, assessmentType scoring.AssessmentType) (*scoring.Result, error)
	Close() error
}

type scoreCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewScoreCache connects using REDIS_ADDR. An empty REDIS_ADDR is an error so
// the caller can decide to run without a cache.
func NewScoreCache(log *logger.Logger) (ScoreCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &scoreCache{
		log: log.With("service", "RedisScoreCache"),
		rdb: rdb,
		ttl: 24 * time.Hour,
	}, nil
}

func cacheKey(ownerID uuid.UUID, t scoring.AssessmentType) string {
	return "scores:latest:" + ownerID.String() + ":" + string(t)
}

func (c *scoreCache) SetLatest(ctx context.Context, ownerID uuid.UUID, result scoring.Result) error {
	if c == nil || c.rdb == nil || ownerID == uuid.Nil {
		return nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(ownerID, result.Type), raw, c.ttl).Err()
}

func (c *scoreCache) GetLatest(ctx context.Context, ownerID uuid.UUID, assessmentType scoring.AssessmentType) (*scoring.Result, error) {
	if c == nil || c.rdb == nil || ownerID == uuid.Nil {
		return nil, nil
	}
	raw, err := c.rdb.Get(ctx, cacheKey(ownerID, assessmentType)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result scoring.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *scoreCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
