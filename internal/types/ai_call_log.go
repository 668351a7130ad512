package types

import (
	"time"

	"github.com/google/uuid"
)

// AICallLog is an audit row for one external augmentation attempt. Written
// best-effort; a failed write never affects the calling operation.
type AICallLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Kind      string    `gorm:"column:kind;not null;index" json:"kind"`
	Model     string    `gorm:"column:model" json:"model"`
	Success   bool      `gorm:"column:success;not null" json:"success"`
	Error     string    `gorm:"column:error" json:"error"`
	LatencyMS int64     `gorm:"column:latency_ms" json:"latency_ms"`
	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (AICallLog) TableName() string { return "ai_call_log" }
