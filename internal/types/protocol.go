package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Protocol is the per-user container for active recommendations. Exactly one
// row per user (unique index); regeneration reuses the row, bumps Version and
// replaces the item set instead of creating a second protocol.
type Protocol struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Version     int            `gorm:"column:version;not null;default:1" json:"version"`
	FocusAreas  string         `gorm:"column:focus_areas" json:"focus_areas"`
	GeneratedAt time.Time      `gorm:"column:generated_at;not null" json:"generated_at"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Protocol) TableName() string { return "protocol" }
