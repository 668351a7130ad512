package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssessmentResult is one completed questionnaire instance plus its stored
// scores. Immutable once created; a retake inserts a new row and the most
// recent instance per (owner, type) wins. Owned either by a registered user
// or by an anonymous guest session, never both.
type AssessmentResult struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         *uuid.UUID     `gorm:"type:uuid;index:idx_assessment_owner_type" json:"user_id,omitempty"`
	SessionID      *uuid.UUID     `gorm:"type:uuid;index" json:"session_id,omitempty"`
	AssessmentType string         `gorm:"column:assessment_type;not null;index:idx_assessment_owner_type" json:"assessment_type"`
	Answers        datatypes.JSON `gorm:"type:jsonb;column:answers;not null" json:"answers"`
	SubScores      datatypes.JSON `gorm:"type:jsonb;column:sub_scores" json:"sub_scores"`
	Composites     datatypes.JSON `gorm:"type:jsonb;column:composites" json:"composites"`
	OverallScore   float64        `gorm:"column:overall_score;not null" json:"overall_score"`
	Scale          string         `gorm:"column:scale;not null" json:"scale"`
	SeverityBand   string         `gorm:"column:severity_band;not null;index" json:"severity_band"`
	CompletedAt    time.Time      `gorm:"column:completed_at;not null;index" json:"completed_at"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AssessmentResult) TableName() string { return "assessment_result" }
