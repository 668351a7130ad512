package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProtocolItem is one persisted recommendation under a protocol. Items from a
// superseded generation are deactivated, never deleted, so history survives.
// Uniqueness by (type, name) holds within one generation pass, not across
// history.
type ProtocolItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProtocolID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_protocol_item_active,priority:1" json:"protocol_id"`
	Type         string         `gorm:"column:type;not null" json:"type"`
	Name         string         `gorm:"column:name;not null" json:"name"`
	Description  string         `gorm:"column:description" json:"description"`
	Frequency    string         `gorm:"column:frequency" json:"frequency"`
	TimeOfDay    datatypes.JSON `gorm:"type:jsonb;column:time_of_day" json:"time_of_day"`
	PriorityTier string         `gorm:"column:priority_tier;not null" json:"priority_tier"`
	SourceTopic  string         `gorm:"column:source_topic" json:"source_topic"`
	Active       bool           `gorm:"column:active;not null;default:true;index:idx_protocol_item_active,priority:2" json:"active"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ProtocolItem) TableName() string { return "protocol_item" }
