package scoring

import (
	"sort"
	"testing"
)

type stubResolver struct {
	table map[string][]Candidate
}

func (r *stubResolver) Resolve(p Pillar, topic string, band SeverityBand) []Candidate {
	return r.table[string(p)+"/"+topic+"/"+string(band)]
}

func magnesium() Candidate {
	return Candidate{Type: InterventionSupplement, Name: "Magnesium Glycinate", Frequency: "daily", TimeOfDay: []string{"evening"}}
}

func TestMergePlanDeduplicatesByTypeAndName(t *testing.T) {
	resolver := &stubResolver{table: map[string][]Candidate{
		"body/sleep/poor": {
			magnesium(),
			{Type: InterventionHabit, Name: "Sleep Hygiene Routine"},
		},
		"brain/stress/fair": {
			magnesium(),
			{Type: InterventionHabit, Name: "Breathwork Practice"},
		},
	}}
	areas := []FocusArea{
		{Pillar: PillarBody, Topic: "sleep", Band: BandPoor, Score: 22, Scale: Scale100},
		{Pillar: PillarBrain, Topic: "stress", Band: BandFair, Score: 45, Scale: Scale100},
	}

	items := MergePlan(resolver, areas, AugmentationUnavailable("disabled"))

	if len(items) != 3 {
		t.Fatalf("want 3 items after dedup, got %d: %+v", len(items), items)
	}
	count := 0
	for _, it := range items {
		if it.Type == InterventionSupplement && it.Name == "Magnesium Glycinate" {
			count++
			if it.SourceTopic != "sleep" {
				t.Fatalf("first occurrence should win: want source=sleep got=%s", it.SourceTopic)
			}
			if it.Tier != TierImmediate {
				t.Fatalf("poor-sourced item must be immediate, got %s", it.Tier)
			}
		}
	}
	if count != 1 {
		t.Fatalf("magnesium should appear exactly once, got %d", count)
	}
}

func TestMergePlanTiers(t *testing.T) {
	resolver := &stubResolver{table: map[string][]Candidate{
		"body/sleep/fair": {
			{Type: InterventionHabit, Name: "Caffeine Cutoff"},
			{Type: InterventionHabit, Name: "Morning Light Exposure", Tier: TierOptimization},
		},
		"balance/hormone-balance/critical": {
			{Type: InterventionTherapy, Name: "Hormone Panel Review"},
		},
	}}
	areas := []FocusArea{
		{Pillar: PillarBody, Topic: "sleep", Band: BandFair, Score: 50, Scale: Scale100},
		{Pillar: PillarBalance, Topic: "hormone-balance", Band: BandCritical, Score: 1.2, Scale: Scale5},
	}

	items := MergePlan(resolver, areas, AugmentationOK(nil))

	want := map[string]PriorityTier{
		"Caffeine Cutoff":        TierFoundation,
		"Morning Light Exposure": TierOptimization,
		"Hormone Panel Review":   TierImmediate,
	}
	for _, it := range items {
		if tier, ok := want[it.Name]; ok && it.Tier != tier {
			t.Fatalf("%s: want tier=%s got=%s", it.Name, tier, it.Tier)
		}
	}
}

func TestMergePlanSkipsHealthyAreas(t *testing.T) {
	resolver := &stubResolver{table: map[string][]Candidate{
		"body/sleep/good": {{Type: InterventionHabit, Name: "Should Not Appear"}},
	}}
	areas := []FocusArea{{Pillar: PillarBody, Topic: "sleep", Band: BandGood, Score: 75, Scale: Scale100}}

	if items := MergePlan(resolver, areas, AugmentationUnavailable("n/a")); len(items) != 0 {
		t.Fatalf("healthy areas must yield no items, got %+v", items)
	}
}

func TestMergePlanAugmentationIsAdditiveAndDeduped(t *testing.T) {
	resolver := &stubResolver{table: map[string][]Candidate{
		"body/sleep/poor": {magnesium()},
	}}
	areas := []FocusArea{{Pillar: PillarBody, Topic: "sleep", Band: BandPoor, Score: 22, Scale: Scale100}}

	aug := AugmentationOK([]Candidate{
		magnesium(), // duplicate, must be dropped
		{Type: InterventionHabit, Name: "Evening Journaling"},
		{Type: InterventionType("potion"), Name: "Nonsense"}, // invalid type, dropped
		{Type: InterventionDiet, Name: "   "},                // empty name, dropped
	})

	items := MergePlan(resolver, areas, aug)
	if len(items) != 2 {
		t.Fatalf("want local item + 1 augmented, got %d: %+v", len(items), items)
	}
	var found *PlannedItem
	for i := range items {
		if items[i].Name == "Evening Journaling" {
			found = &items[i]
		}
	}
	if found == nil {
		t.Fatalf("augmented item missing: %+v", items)
	}
	if found.Tier == TierImmediate {
		t.Fatalf("augmented items must never be immediate")
	}
	if found.SourceTopic != "augmentation" {
		t.Fatalf("augmented source: want=augmentation got=%s", found.SourceTopic)
	}
}

func TestMergePlanUnavailableAugmentationLeavesLocalListUnchanged(t *testing.T) {
	resolver := &stubResolver{table: map[string][]Candidate{
		"body/sleep/poor": {magnesium(), {Type: InterventionHabit, Name: "Sleep Hygiene Routine"}},
	}}
	areas := []FocusArea{{Pillar: PillarBody, Topic: "sleep", Band: BandPoor, Score: 22, Scale: Scale100}}

	withAug := MergePlan(resolver, areas, AugmentationUnavailable("timeout"))
	if len(withAug) != 2 {
		t.Fatalf("unavailable augmentation must not change the local list, got %d items", len(withAug))
	}
}

func TestMergePlanDeterministicIdentity(t *testing.T) {
	resolver := &stubResolver{table: map[string][]Candidate{
		"body/sleep/poor":   {magnesium(), {Type: InterventionHabit, Name: "Sleep Hygiene Routine"}},
		"brain/stress/fair": {{Type: InterventionExercise, Name: "Daily Walk"}},
	}}
	// Deliberately unordered input.
	areas := []FocusArea{
		{Pillar: PillarBrain, Topic: "stress", Band: BandFair, Score: 45, Scale: Scale100},
		{Pillar: PillarBody, Topic: "sleep", Band: BandPoor, Score: 22, Scale: Scale100},
	}

	identity := func(items []PlannedItem) []string {
		keys := make([]string, 0, len(items))
		for _, it := range items {
			keys = append(keys, string(it.Type)+"|"+it.Name)
		}
		sort.Strings(keys)
		return keys
	}

	a := identity(MergePlan(resolver, areas, AugmentationUnavailable("n/a")))
	b := identity(MergePlan(resolver, areas, AugmentationUnavailable("n/a")))
	if len(a) != len(b) {
		t.Fatalf("identity sets differ in size: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("identity sets differ: %v vs %v", a, b)
		}
	}
}
