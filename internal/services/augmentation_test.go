package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/longevity-backend/internal/scoring"
)

type fakeAIClient struct {
	generateFn func(ctx context.Context, system, user string) (string, error)
	model      string
}

func (f *fakeAIClient) GenerateText(ctx context.Context, system, user string) (string, error) {
	return f.generateFn(ctx, system, user)
}

func (f *fakeAIClient) Model() string { return f.model }

func TestParseCandidates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:  "bare array",
			input: `[{"type":"supplement","name":"Omega-3","frequency":"daily"}]`,
			want:  1,
		},
		{
			name: "code fenced",
			input: "```json\n" +
				`[{"type":"habit","name":"Evening Walk"},{"type":"diet","name":"Protein Breakfast"}]` +
				"\n```",
			want: 2,
		},
		{
			name:  "prose wrapped",
			input: `Here are my suggestions: [{"type":"exercise","name":"Zone 2 Cardio"}] Hope this helps!`,
			want:  1,
		},
		{
			name:  "invalid types filtered",
			input: `[{"type":"medication","name":"Aspirin"},{"type":"supplement","name":"Vitamin D"}]`,
			want:  1,
		},
		{
			name:    "only invalid items",
			input:   `[{"type":"medication","name":"Aspirin"},{"type":"supplement","name":"  "}]`,
			wantErr: true,
		},
		{
			name:    "empty response",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no array",
			input:   "I cannot suggest anything right now.",
			wantErr: true,
		},
		{
			name:    "malformed json",
			input:   `[{"type":"supplement","name":`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, err := parseCandidates(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected parse error, got %d items", len(items))
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCandidates: %v", err)
			}
			if len(items) != tc.want {
				t.Fatalf("item count: want=%d got=%d", tc.want, len(items))
			}
		})
	}
}

func TestProposeItemsCallFailure(t *testing.T) {
	ai := &fakeAIClient{
		generateFn: func(ctx context.Context, system, user string) (string, error) {
			return "", fmt.Errorf("dial tcp: connection refused")
		},
		model: "test-model",
	}
	s := NewAugmentationService(nil, testLogger(t), ai, nil, 0, 0)

	result := s.ProposeItems(context.Background(), uuid.New(), nil, nil)
	if !result.Unavailable {
		t.Fatal("expected unavailable result after transport failure")
	}
	if len(result.Items) != 0 {
		t.Fatalf("items: want=0 got=%d", len(result.Items))
	}
}

func TestProposeItemsSuccess(t *testing.T) {
	var prompt string
	ai := &fakeAIClient{
		generateFn: func(ctx context.Context, system, user string) (string, error) {
			prompt = user
			return `[{"type":"supplement","name":"Creatine","frequency":"daily","time_of_day":["morning"],"rationale":"supports muscle retention"}]`, nil
		},
		model: "test-model",
	}
	s := NewAugmentationService(nil, testLogger(t), ai, nil, 0, 0)

	areas := []scoring.FocusArea{{Pillar: scoring.PillarBody, Topic: "sleep", Band: scoring.BandPoor, Score: 22, Scale: scoring.Scale100}}
	existing := []scoring.PlannedItem{{Candidate: scoring.Candidate{Type: scoring.InterventionSupplement, Name: "Magnesium Glycinate"}}}

	result := s.ProposeItems(context.Background(), uuid.New(), areas, existing)
	if result.Unavailable {
		t.Fatalf("unexpected unavailable: %s", result.Reason)
	}
	if len(result.Items) != 1 || result.Items[0].Name != "Creatine" {
		t.Fatalf("items: want one Creatine got=%+v", result.Items)
	}
	if !strings.Contains(prompt, "Magnesium Glycinate") {
		t.Fatal("prompt should include existing items")
	}
}

func TestProposeItemsCapsItemCount(t *testing.T) {
	ai := &fakeAIClient{
		generateFn: func(ctx context.Context, system, user string) (string, error) {
			return `[
				{"type":"supplement","name":"A"},
				{"type":"supplement","name":"B"},
				{"type":"supplement","name":"C"},
				{"type":"supplement","name":"D"},
				{"type":"supplement","name":"E"}
			]`, nil
		},
		model: "test-model",
	}
	s := NewAugmentationService(nil, testLogger(t), ai, nil, 0, 2)

	result := s.ProposeItems(context.Background(), uuid.New(), nil, nil)
	if result.Unavailable {
		t.Fatalf("unexpected unavailable: %s", result.Reason)
	}
	if len(result.Items) != 2 {
		t.Fatalf("items: want=2 got=%d", len(result.Items))
	}
}

func TestProposeItemsNoClient(t *testing.T) {
	s := NewAugmentationService(nil, testLogger(t), nil, nil, 0, 0)

	result := s.ProposeItems(context.Background(), uuid.New(), nil, nil)
	if !result.Unavailable {
		t.Fatal("expected unavailable when no client configured")
	}
}
