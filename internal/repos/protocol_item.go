package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/types"
)

type ProtocolItemRepo interface {
	GetActiveByProtocolID(ctx context.Context, tx *gorm.DB, protocolID uuid.UUID) ([]*types.ProtocolItem, error)
	DeactivateByProtocolID(ctx context.Context, tx *gorm.DB, protocolID uuid.UUID) error
	CreateBatch(ctx context.Context, tx *gorm.DB, items []*types.ProtocolItem) ([]*types.ProtocolItem, error)
}

type protocolItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProtocolItemRepo(db *gorm.DB, baseLog *logger.Logger) ProtocolItemRepo {
	return &protocolItemRepo{db: db, log: baseLog.With("repo", "ProtocolItemRepo")}
}

func (r *protocolItemRepo) GetActiveByProtocolID(ctx context.Context, tx *gorm.DB, protocolID uuid.UUID) ([]*types.ProtocolItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var items []*types.ProtocolItem
	if protocolID == uuid.Nil {
		return items, nil
	}

	if err := transaction.WithContext(ctx).
		Where("protocol_id = ? AND active = ?", protocolID, true).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *protocolItemRepo) DeactivateByProtocolID(ctx context.Context, tx *gorm.DB, protocolID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if protocolID == uuid.Nil {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.ProtocolItem{}).
		Where("protocol_id = ? AND active = ?", protocolID, true).
		Update("active", false).Error
}

func (r *protocolItemRepo) CreateBatch(ctx context.Context, tx *gorm.DB, items []*types.ProtocolItem) ([]*types.ProtocolItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(items) == 0 {
		return []*types.ProtocolItem{}, nil
	}
	for _, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
	}

	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
