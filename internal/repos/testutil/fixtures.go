package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/longevity-backend/internal/types"
)

func SeedAssessmentResult(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, assessmentType string, overall float64, band string, completedAt time.Time) *types.AssessmentResult {
	tb.Helper()
	res := &types.AssessmentResult{
		ID:             uuid.New(),
		UserID:         &userID,
		AssessmentType: assessmentType,
		Answers:        datatypes.JSON([]byte("{}")),
		SubScores:      datatypes.JSON([]byte("{}")),
		Composites:     datatypes.JSON([]byte("[]")),
		OverallScore:   overall,
		Scale:          "0-100",
		SeverityBand:   band,
		CompletedAt:    completedAt,
	}
	if err := tx.WithContext(ctx).Create(res).Error; err != nil {
		tb.Fatalf("seed assessment result: %v", err)
	}
	return res
}

func SeedProtocol(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID) *types.Protocol {
	tb.Helper()
	p := &types.Protocol{
		ID:          uuid.New(),
		UserID:      userID,
		Version:     1,
		GeneratedAt: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed protocol: %v", err)
	}
	return p
}

func SeedProtocolItem(tb testing.TB, ctx context.Context, tx *gorm.DB, protocolID uuid.UUID, itemType, name string, active bool) *types.ProtocolItem {
	tb.Helper()
	item := &types.ProtocolItem{
		ID:           uuid.New(),
		ProtocolID:   protocolID,
		Type:         itemType,
		Name:         name,
		Frequency:    "daily",
		TimeOfDay:    datatypes.JSON([]byte(`["evening"]`)),
		PriorityTier: "foundation",
		Active:       active,
	}
	if err := tx.WithContext(ctx).Create(item).Error; err != nil {
		tb.Fatalf("seed protocol item: %v", err)
	}
	return item
}
