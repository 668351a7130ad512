package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/types"
)

type AssessmentResultRepo interface {
	Create(ctx context.Context, tx *gorm.DB, result *types.AssessmentResult) (*types.AssessmentResult, error)
	GetLatestByUserAndType(ctx context.Context, tx *gorm.DB, userID uuid.UUID, assessmentType string) (*types.AssessmentResult, error)
	GetLatestPerTypeByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AssessmentResult, error)
	GetLatestPerTypeBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.AssessmentResult, error)
}

type assessmentResultRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentResultRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentResultRepo {
	return &assessmentResultRepo{db: db, log: baseLog.With("repo", "AssessmentResultRepo")}
}

func (r *assessmentResultRepo) Create(ctx context.Context, tx *gorm.DB, result *types.AssessmentResult) (*types.AssessmentResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if result == nil {
		return nil, nil
	}
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}

	if err := transaction.WithContext(ctx).Create(result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (r *assessmentResultRepo) GetLatestByUserAndType(ctx context.Context, tx *gorm.DB, userID uuid.UUID, assessmentType string) (*types.AssessmentResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil || assessmentType == "" {
		return nil, nil
	}

	var result types.AssessmentResult
	err := transaction.WithContext(ctx).
		Where("user_id = ? AND assessment_type = ?", userID, assessmentType).
		Order("completed_at DESC").
		First(&result).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *assessmentResultRepo) GetLatestPerTypeByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AssessmentResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.AssessmentResult
	if userID == uuid.Nil {
		return results, nil
	}

	var all []*types.AssessmentResult
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&all).Error; err != nil {
		return nil, err
	}
	return latestPerType(all), nil
}

func (r *assessmentResultRepo) GetLatestPerTypeBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.AssessmentResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.AssessmentResult
	if sessionID == uuid.Nil {
		return results, nil
	}

	var all []*types.AssessmentResult
	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("completed_at DESC").
		Find(&all).Error; err != nil {
		return nil, err
	}
	return latestPerType(all), nil
}

// latestPerType keeps the first (most recent) row per assessment type from a
// completed_at-descending list.
func latestPerType(ordered []*types.AssessmentResult) []*types.AssessmentResult {
	seen := make(map[string]bool, len(ordered))
	out := make([]*types.AssessmentResult, 0, len(ordered))
	for _, res := range ordered {
		if seen[res.AssessmentType] {
			continue
		}
		seen[res.AssessmentType] = true
		out = append(out, res)
	}
	return out
}
