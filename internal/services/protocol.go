package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/repos"
	"github.com/yungbote/longevity-backend/internal/scoring"
	"github.com/yungbote/longevity-backend/internal/types"
)

// ErrNoAssessmentData means the user has never completed an assessment, so
// there is nothing to generate a protocol from.
var ErrNoAssessmentData = errors.New("no assessment data for user")

// GenerationSummary describes one completed protocol generation pass.
type GenerationSummary struct {
	ProtocolID uuid.UUID             `json:"protocol_id"`
	Version    int                   `json:"version"`
	ItemCount  int                   `json:"item_count"`
	FocusAreas []scoring.FocusArea   `json:"focus_areas"`
	Items      []*types.ProtocolItem `json:"items"`
}

// ActiveProtocol is a protocol row joined with its active item set.
type ActiveProtocol struct {
	Protocol *types.Protocol       `json:"protocol"`
	Items    []*types.ProtocolItem `json:"items"`
}

type ProtocolService interface {
	// Generate builds and persists a fresh protocol for the user from their
	// latest assessment results. Replaces the previous active item set
	// atomically; readers never observe a half-replaced protocol.
	Generate(ctx context.Context, userID uuid.UUID) (*GenerationSummary, error)
	GetActiveProtocol(ctx context.Context, userID uuid.UUID) (*ActiveProtocol, error)
}

type protocolService struct {
	db        *gorm.DB
	log       *logger.Logger
	results   repos.AssessmentResultRepo
	protocols repos.ProtocolRepo
	items     repos.ProtocolItemRepo
	resolver  scoring.Resolver
	augment   AugmentationService
	group     singleflight.Group

	// txFn runs fn inside a transaction. Overridable in tests so fakes do
	// not need a live *gorm.DB.
	txFn func(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func NewProtocolService(
	db *gorm.DB,
	log *logger.Logger,
	results repos.AssessmentResultRepo,
	protocols repos.ProtocolRepo,
	items repos.ProtocolItemRepo,
	resolver scoring.Resolver,
	augment AugmentationService,
) ProtocolService {
	s := &protocolService{
		db:        db,
		log:       log.With("service", "ProtocolService"),
		results:   results,
		protocols: protocols,
		items:     items,
		resolver:  resolver,
		augment:   augment,
	}
	s.txFn = func(ctx context.Context, fn func(tx *gorm.DB) error) error {
		return s.db.WithContext(ctx).Transaction(fn)
	}
	return s
}

func (s *protocolService) Generate(ctx context.Context, userID uuid.UUID) (*GenerationSummary, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id required")
	}

	// Concurrent regeneration requests for the same user collapse into one
	// pass; both callers get the same summary.
	out, err, _ := s.group.Do(userID.String(), func() (interface{}, error) {
		return s.generate(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return out.(*GenerationSummary), nil
}

func (s *protocolService) generate(ctx context.Context, userID uuid.UUID) (*GenerationSummary, error) {
	latest, err := s.results.GetLatestPerTypeByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load assessment results: %w", err)
	}
	if len(latest) == 0 {
		return nil, ErrNoAssessmentData
	}

	areas := focusAreasFromResults(latest)

	// Resolve the local plan first so augmentation can see what is already
	// covered; the external call is strictly additive.
	local := scoring.MergePlan(s.resolver, areas, scoring.AugmentationUnavailable("pending"))

	aug := scoring.AugmentationUnavailable("augmentation disabled")
	if s.augment != nil {
		aug = s.augment.ProposeItems(ctx, userID, areas, local)
	}

	planned := scoring.MergePlan(s.resolver, areas, aug)

	now := time.Now().UTC()
	focusJSON := mustJSONString(areas)

	var (
		protocolID uuid.UUID
		version    int
		rows       []*types.ProtocolItem
	)
	err = s.txFn(ctx, func(tx *gorm.DB) error {
		protocol, err := s.protocols.GetByUserID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load protocol: %w", err)
		}
		if protocol == nil {
			protocol, err = s.protocols.Create(ctx, tx, &types.Protocol{
				ID:          uuid.New(),
				UserID:      userID,
				Version:     0,
				FocusAreas:  focusJSON,
				GeneratedAt: now,
			})
			if err != nil {
				return fmt.Errorf("create protocol: %w", err)
			}
		}

		if err := s.items.DeactivateByProtocolID(ctx, tx, protocol.ID); err != nil {
			return fmt.Errorf("deactivate previous items: %w", err)
		}

		rows = itemRows(protocol.ID, planned)
		if _, err := s.items.CreateBatch(ctx, tx, rows); err != nil {
			return fmt.Errorf("insert protocol items: %w", err)
		}

		if err := s.protocols.MarkRegenerated(ctx, tx, protocol.ID, focusJSON, now); err != nil {
			return fmt.Errorf("bump protocol version: %w", err)
		}

		protocolID = protocol.ID
		version = protocol.Version + 1
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("protocol generated",
		"user_id", userID,
		"protocol_id", protocolID,
		"item_count", len(rows),
		"augmented", !aug.Unavailable)

	return &GenerationSummary{
		ProtocolID: protocolID,
		Version:    version,
		ItemCount:  len(rows),
		FocusAreas: areas,
		Items:      rows,
	}, nil
}

func (s *protocolService) GetActiveProtocol(ctx context.Context, userID uuid.UUID) (*ActiveProtocol, error) {
	protocol, err := s.protocols.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if protocol == nil {
		return nil, nil
	}
	items, err := s.items.GetActiveByProtocolID(ctx, nil, protocol.ID)
	if err != nil {
		return nil, err
	}
	return &ActiveProtocol{Protocol: protocol, Items: items}, nil
}

// focusAreasFromResults rebuilds focus triples from persisted rows. Rows from
// assessment types that are no longer modeled still contribute; they fall back
// to the body pillar with the stored type as topic.
func focusAreasFromResults(latest []*types.AssessmentResult) []scoring.FocusArea {
	areas := make([]scoring.FocusArea, 0, len(latest))
	for _, res := range latest {
		area := scoring.FocusArea{
			Pillar: scoring.PillarBody,
			Topic:  res.AssessmentType,
			Band:   scoring.SeverityBand(res.SeverityBand),
			Score:  res.OverallScore,
			Scale:  scoring.Scale(res.Scale),
		}
		if cfg, ok := scoring.ConfigFor(scoring.AssessmentType(res.AssessmentType)); ok {
			area.Pillar = cfg.Pillar
			area.Topic = cfg.Topic
		}
		areas = append(areas, area)
	}
	return areas
}

func itemRows(protocolID uuid.UUID, planned []scoring.PlannedItem) []*types.ProtocolItem {
	rows := make([]*types.ProtocolItem, 0, len(planned))
	for _, item := range planned {
		rows = append(rows, &types.ProtocolItem{
			ID:           uuid.New(),
			ProtocolID:   protocolID,
			Type:         string(item.Type),
			Name:         item.Name,
			Description:  item.Rationale,
			Frequency:    item.Frequency,
			TimeOfDay:    mustJSON(item.TimeOfDay),
			PriorityTier: string(item.Tier),
			SourceTopic:  item.SourceTopic,
			Active:       true,
		})
	}
	return rows
}

func mustJSONString(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
