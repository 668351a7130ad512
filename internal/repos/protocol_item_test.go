package repos_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/longevity-backend/internal/repos"
	"github.com/yungbote/longevity-backend/internal/repos/testutil"
)

func TestDeactivateThenCreateBatchReplacesActiveSet(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()

	userID := uuid.New()
	protocol := testutil.SeedProtocol(t, ctx, tx, userID)
	testutil.SeedProtocolItem(t, ctx, tx, protocol.ID, "supplement", "Magnesium Glycinate", true)
	testutil.SeedProtocolItem(t, ctx, tx, protocol.ID, "habit", "Sleep Hygiene Routine", true)

	itemRepo := repos.NewProtocolItemRepo(db, log)

	if err := itemRepo.DeactivateByProtocolID(ctx, tx, protocol.ID); err != nil {
		t.Fatalf("DeactivateByProtocolID: %v", err)
	}
	active, err := itemRepo.GetActiveByProtocolID(ctx, tx, protocol.ID)
	if err != nil {
		t.Fatalf("GetActiveByProtocolID: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("want 0 active after deactivation, got %d", len(active))
	}

	replacement := testutil.SeedProtocolItem(t, ctx, tx, protocol.ID, "exercise", "Daily Walk", true)
	active, err = itemRepo.GetActiveByProtocolID(ctx, tx, protocol.ID)
	if err != nil {
		t.Fatalf("GetActiveByProtocolID: %v", err)
	}
	if len(active) != 1 || active[0].ID != replacement.ID {
		t.Fatalf("active set should be only the replacement, got %d items", len(active))
	}
}

func TestGetLatestPerTypeByUserPicksMostRecent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now().UTC()
	testutil.SeedAssessmentResult(t, ctx, tx, userID, "sleep-symptom", 30, "poor", now.Add(-48*time.Hour))
	latestSleep := testutil.SeedAssessmentResult(t, ctx, tx, userID, "sleep-symptom", 65, "good", now.Add(-1*time.Hour))
	testutil.SeedAssessmentResult(t, ctx, tx, userID, "nutrition", 45, "fair", now.Add(-24*time.Hour))

	repo := repos.NewAssessmentResultRepo(db, log)
	results, err := repo.GetLatestPerTypeByUser(ctx, tx, userID)
	if err != nil {
		t.Fatalf("GetLatestPerTypeByUser: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want one result per type, got %d", len(results))
	}
	for _, res := range results {
		if res.AssessmentType == "sleep-symptom" && res.ID != latestSleep.ID {
			t.Fatalf("stale sleep result returned: got %s want %s", res.ID, latestSleep.ID)
		}
	}
}

func TestGetByUserIDReturnsNilWhenMissing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()

	repo := repos.NewProtocolRepo(db, log)
	p, err := repo.GetByUserID(ctx, tx, uuid.New())
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if p != nil {
		t.Fatalf("want nil protocol for unknown user, got %+v", p)
	}
}
