package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/longevity-backend/internal/clients/redis"
	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/repos"
	"github.com/yungbote/longevity-backend/internal/scoring"
	"github.com/yungbote/longevity-backend/internal/types"
)

// Owner identifies who completed an assessment: a registered user or an
// anonymous guest session. Exactly one of the two should be set.
type Owner struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}

func (o Owner) id() uuid.UUID {
	if o.UserID != uuid.Nil {
		return o.UserID
	}
	return o.SessionID
}

// ScoreOutcome is the stored result of one scoreAssessment call.
type ScoreOutcome struct {
	ResultID uuid.UUID      `json:"result_id"`
	Result   scoring.Result `json:"result"`
}

type ScoreService interface {
	// ScoreAssessment runs the pure scoring pipeline and records the result.
	// Scoring itself cannot fail; a persistence problem is logged and the
	// computed scores are still returned so the caller always gets something.
	ScoreAssessment(ctx context.Context, owner Owner, assessmentType scoring.AssessmentType, answers, prior map[string]string) (*ScoreOutcome, error)
	GetLatestResults(ctx context.Context, owner Owner) ([]*types.AssessmentResult, error)
}

type scoreService struct {
	db      *gorm.DB
	log     *logger.Logger
	results repos.AssessmentResultRepo
	cache   redis.ScoreCache
}

func NewScoreService(db *gorm.DB, log *logger.Logger, results repos.AssessmentResultRepo, cache redis.ScoreCache) ScoreService {
	return &scoreService{
		db:      db,
		log:     log.With("service", "ScoreService"),
		results: results,
		cache:   cache,
	}
}

func (s *scoreService) ScoreAssessment(ctx context.Context, owner Owner, assessmentType scoring.AssessmentType, answers, prior map[string]string) (*ScoreOutcome, error) {
	result := scoring.Score(assessmentType, answers, prior)
	overall := result.Overall()

	row := &types.AssessmentResult{
		ID:             uuid.New(),
		AssessmentType: string(assessmentType),
		Answers:        mustJSON(answers),
		SubScores:      mustJSON(result.SubScores),
		Composites:     mustJSON(result.Composites),
		OverallScore:   overall.Value,
		Scale:          string(result.Scale),
		SeverityBand:   string(overall.Band),
		CompletedAt:    time.Now().UTC(),
	}
	if owner.UserID != uuid.Nil {
		row.UserID = &owner.UserID
	} else if owner.SessionID != uuid.Nil {
		row.SessionID = &owner.SessionID
	}

	if s.results != nil {
		if _, err := s.results.Create(ctx, nil, row); err != nil {
			s.log.Warn("failed to persist assessment result", "error", err, "assessment_type", assessmentType)
		}
	}

	if s.cache != nil {
		if err := s.cache.SetLatest(ctx, owner.id(), result); err != nil {
			s.log.Debug("score cache write failed", "error", err)
		}
	}

	return &ScoreOutcome{ResultID: row.ID, Result: result}, nil
}

func (s *scoreService) GetLatestResults(ctx context.Context, owner Owner) ([]*types.AssessmentResult, error) {
	if owner.UserID != uuid.Nil {
		return s.results.GetLatestPerTypeByUser(ctx, nil, owner.UserID)
	}
	return s.results.GetLatestPerTypeBySession(ctx, nil, owner.SessionID)
}

// mustJSON marshals values we constructed ourselves; a failure here means a
// programming error, so fall back to an empty document instead of propagating.
func mustJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}
