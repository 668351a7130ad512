package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/longevity-backend/internal/clients/openai"
	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/repos"
	"github.com/yungbote/longevity-backend/internal/scoring"
	"github.com/yungbote/longevity-backend/internal/types"
)

// AugmentationService asks the external model for a few additional protocol
// items. Always best-effort: every failure mode (missing client, timeout,
// malformed response) collapses into AugmentationUnavailable and is logged,
// never returned as an error.
type AugmentationService interface {
	ProposeItems(ctx context.Context, userID uuid.UUID, areas []scoring.FocusArea, existing []scoring.PlannedItem) scoring.AugmentationResult
}

type augmentationService struct {
	db       *gorm.DB
	log      *logger.Logger
	ai       openai.Client
	callLog  repos.AICallLogRepo
	timeout  time.Duration
	maxItems int
}

func NewAugmentationService(db *gorm.DB, log *logger.Logger, ai openai.Client, callLog repos.AICallLogRepo, timeout time.Duration, maxItems int) AugmentationService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxItems <= 0 {
		maxItems = 3
	}
	return &augmentationService{
		db:       db,
		log:      log.With("service", "AugmentationService"),
		ai:       ai,
		callLog:  callLog,
		timeout:  timeout,
		maxItems: maxItems,
	}
}

const augmentationSystemPrompt = `You are a longevity coach. Given a user's low-scoring health focus areas and their current protocol items, suggest a small number of additional interventions. Respond with ONLY a JSON array; each element must have the keys "type" (one of supplement, exercise, diet, habit, therapy), "name", "frequency", "time_of_day" (array of strings) and "rationale". Do not repeat items the user already has.`

func (s *augmentationService) ProposeItems(ctx context.Context, userID uuid.UUID, areas []scoring.FocusArea, existing []scoring.PlannedItem) scoring.AugmentationResult {
	if s.ai == nil {
		return scoring.AugmentationUnavailable("augmentation client not configured")
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.ai.GenerateText(callCtx, augmentationSystemPrompt, buildAugmentationPrompt(areas, existing, s.maxItems))
	latency := time.Since(start)

	if err != nil {
		s.logCall(userID, false, err.Error(), latency)
		s.log.Warn("augmentation call failed, continuing without it", "error", err)
		return scoring.AugmentationUnavailable(err.Error())
	}

	items, parseErr := parseCandidates(text)
	if parseErr != nil {
		s.logCall(userID, false, parseErr.Error(), latency)
		s.log.Warn("augmentation response unparsable, continuing without it", "error", parseErr)
		return scoring.AugmentationUnavailable(parseErr.Error())
	}
	if len(items) > s.maxItems {
		items = items[:s.maxItems]
	}

	s.logCall(userID, true, "", latency)
	return scoring.AugmentationOK(items)
}

func (s *augmentationService) logCall(userID uuid.UUID, success bool, errMsg string, latency time.Duration) {
	if s.callLog == nil {
		return
	}
	model := ""
	if s.ai != nil {
		model = s.ai.Model()
	}
	entry := &types.AICallLog{
		UserID:    userID,
		Kind:      "protocol_augmentation",
		Model:     model,
		Success:   success,
		Error:     errMsg,
		LatencyMS: latency.Milliseconds(),
	}
	// Audit write is best-effort; use a short background context so a dead
	// caller context does not lose the record.
	logCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.callLog.Create(logCtx, nil, entry); err != nil {
		s.log.Debug("ai call log write failed", "error", err)
	}
}

func buildAugmentationPrompt(areas []scoring.FocusArea, existing []scoring.PlannedItem, maxItems int) string {
	var b strings.Builder
	b.WriteString("Focus areas:\n")
	for _, a := range areas {
		fmt.Fprintf(&b, "- %s / %s: score %.1f (%s)\n", a.Pillar, a.Topic, a.Score, a.Band)
	}
	b.WriteString("\nCurrent protocol items:\n")
	for _, it := range existing {
		fmt.Fprintf(&b, "- [%s] %s\n", it.Type, it.Name)
	}
	fmt.Fprintf(&b, "\nSuggest at most %d additional items as a JSON array.", maxItems)
	return b.String()
}

// parseCandidates defensively extracts a candidate list from model output.
// The model is asked for a bare JSON array but may wrap it in code fences or
// prose; anything that still fails to parse is treated as no augmentation.
func parseCandidates(text string) ([]scoring.Candidate, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("empty augmentation response")
	}

	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in augmentation response")
	}

	var items []scoring.Candidate
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("parse augmentation response: %w", err)
	}

	valid := items[:0]
	for _, it := range items {
		if scoring.ValidInterventionType(it.Type) && strings.TrimSpace(it.Name) != "" {
			valid = append(valid, it)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("augmentation response had no valid items")
	}
	return valid, nil
}
