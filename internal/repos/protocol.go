package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/types"
)

type ProtocolRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Protocol, error)
	Create(ctx context.Context, tx *gorm.DB, protocol *types.Protocol) (*types.Protocol, error)
	MarkRegenerated(ctx context.Context, tx *gorm.DB, protocolID uuid.UUID, focusAreas string, at time.Time) error
}

type protocolRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProtocolRepo(db *gorm.DB, baseLog *logger.Logger) ProtocolRepo {
	return &protocolRepo{db: db, log: baseLog.With("repo", "ProtocolRepo")}
}

func (r *protocolRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Protocol, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil {
		return nil, nil
	}

	var protocol types.Protocol
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&protocol).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &protocol, nil
}

func (r *protocolRepo) Create(ctx context.Context, tx *gorm.DB, protocol *types.Protocol) (*types.Protocol, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if protocol == nil {
		return nil, nil
	}
	if protocol.ID == uuid.Nil {
		protocol.ID = uuid.New()
	}

	if err := transaction.WithContext(ctx).Create(protocol).Error; err != nil {
		return nil, err
	}
	return protocol, nil
}

func (r *protocolRepo) MarkRegenerated(ctx context.Context, tx *gorm.DB, protocolID uuid.UUID, focusAreas string, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if protocolID == uuid.Nil {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.Protocol{}).
		Where("id = ?", protocolID).
		Updates(map[string]interface{}{
			"version":      gorm.Expr("version + 1"),
			"focus_areas":  focusAreas,
			"generated_at": at,
		}).Error
}
