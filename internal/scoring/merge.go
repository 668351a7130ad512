package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// AugmentationResult is the tagged outcome of the external augmentation call:
// either a usable item list or an unavailability reason. Parse failures,
// timeouts and transport errors all collapse into Unavailable; they never
// surface as errors from the merger.
type AugmentationResult struct {
	Items       []Candidate
	Unavailable bool
	Reason      string
}

func AugmentationOK(items []Candidate) AugmentationResult {
	return AugmentationResult{Items: items}
}

func AugmentationUnavailable(reason string) AugmentationResult {
	return AugmentationResult{Unavailable: true, Reason: reason}
}

// MergePlan produces the final deduplicated, tiered item list for a set of
// focus areas. Areas with healthy bands are skipped. Duplicates by
// (type, name) are dropped silently, first occurrence wins — multiple topics
// commonly recommend the same supplement. Augmented items go through the same
// dedup and are strictly additive; they never displace a locally resolved
// item and never land in the immediate tier.
func MergePlan(resolver Resolver, areas []FocusArea, aug AugmentationResult) []PlannedItem {
	ordered := make([]FocusArea, len(areas))
	copy(ordered, areas)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Pillar != ordered[j].Pillar {
			return ordered[i].Pillar < ordered[j].Pillar
		}
		return ordered[i].Topic < ordered[j].Topic
	})

	seen := make(map[string]bool)
	var items []PlannedItem

	for _, area := range ordered {
		if !NeedsIntervention(area.Band) {
			continue
		}
		for _, cand := range resolver.Resolve(area.Pillar, area.Topic, area.Band) {
			key := dedupKey(cand)
			if seen[key] {
				continue
			}
			seen[key] = true
			items = append(items, PlannedItem{
				Candidate:   cand,
				Tier:        tierFor(cand, area.Band),
				Why:         fmt.Sprintf("%s score %s (%s)", area.Topic, formatScore(area.Score, area.Scale), area.Band),
				SourceTopic: area.Topic,
			})
		}
	}

	if !aug.Unavailable {
		for _, cand := range aug.Items {
			if !ValidInterventionType(cand.Type) || strings.TrimSpace(cand.Name) == "" {
				continue
			}
			key := dedupKey(cand)
			if seen[key] {
				continue
			}
			seen[key] = true
			tier := cand.Tier
			if tier != TierOptimization {
				tier = TierFoundation
			}
			items = append(items, PlannedItem{
				Candidate:   cand,
				Tier:        tier,
				Why:         "suggested for your focus areas",
				SourceTopic: "augmentation",
			})
		}
	}

	return items
}

func tierFor(cand Candidate, band SeverityBand) PriorityTier {
	if IsSevere(band) {
		return TierImmediate
	}
	if cand.Tier == TierOptimization {
		return TierOptimization
	}
	return TierFoundation
}

func dedupKey(c Candidate) string {
	return strings.ToLower(string(c.Type)) + "|" + strings.ToLower(strings.TrimSpace(c.Name))
}

func formatScore(v float64, scale Scale) string {
	if scale == Scale5 {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%.0f", v)
}
