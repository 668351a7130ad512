package scoring

import "testing"

func TestScoreSleepWorstCase(t *testing.T) {
	answers := map[string]string{
		"sleep_quality": "poor",
		"fall_asleep":   "30_to_60m",
		"night_wakings": "two_three",
	}

	res := Score(AssessmentSleepSymptom, answers, nil)

	if !res.Modeled {
		t.Fatalf("sleep-symptom should be a modeled type")
	}
	if got := res.SubScores["sleepQuality"]; got != 25 {
		t.Fatalf("sleepQuality: want=25 got=%v", got)
	}
	if got := res.SubScores["fallAsleep"]; got != 20 {
		t.Fatalf("fallAsleep: want=20 got=%v", got)
	}
	if got := res.SubScores["nightWakings"]; got != 20 {
		t.Fatalf("nightWakings: want=20 got=%v", got)
	}

	overall := res.Overall()
	if overall.Value > 35 {
		t.Fatalf("overall sleep score: want<=35 got=%v", overall.Value)
	}
	if overall.Band != BandPoor {
		t.Fatalf("overall band: want=%s got=%s", BandPoor, overall.Band)
	}
	if fa := res.FocusArea(); fa.Pillar != PillarBody || fa.Topic != "sleep" {
		t.Fatalf("focus area: want=body/sleep got=%s/%s", fa.Pillar, fa.Topic)
	}
}

func TestScoreStaysWithinDeclaredRange(t *testing.T) {
	for _, at := range KnownTypes() {
		cfg, ok := ConfigFor(at)
		if !ok {
			t.Fatalf("missing config for %s", at)
		}

		// Every question pinned to its worst and best option.
		worst := map[string]string{}
		best := map[string]string{}
		for qid, rule := range cfg.Questions {
			worstOpt, bestOpt := "", ""
			worstVal, bestVal := 0.0, 0.0
			first := true
			for opt, v := range rule.Options {
				if first || v < worstVal {
					worstOpt, worstVal = opt, v
				}
				if first || v > bestVal {
					bestOpt, bestVal = opt, v
				}
				first = false
			}
			worst[qid] = worstOpt
			best[qid] = bestOpt
		}

		for name, answers := range map[string]map[string]string{"worst": worst, "best": best, "empty": {}} {
			res := Score(at, answers, nil)
			for _, comp := range res.Composites {
				if comp.Value < 0 || comp.Value > comp.Scale.Ceiling() {
					t.Fatalf("%s/%s composite %q out of range: %v", at, name, comp.Name, comp.Value)
				}
			}
		}
	}
}

func TestScoreUnknownTypeFallsBackToFairDefaults(t *testing.T) {
	res := Score(AssessmentType("gut-check"), map[string]string{"q1": "a", "q2": "b"}, nil)

	if res.Modeled {
		t.Fatalf("unknown type should not report as modeled")
	}
	overall := res.Overall()
	if overall.Band != BandFair {
		t.Fatalf("fallback band should be fair, got %s (%v)", overall.Band, overall.Value)
	}
	if overall.Value != 55 {
		t.Fatalf("fallback score: want=55 got=%v", overall.Value)
	}
}

func TestScoreEmptyAnswerSetStillScores(t *testing.T) {
	res := Score(AssessmentNutrition, nil, nil)
	overall := res.Overall()
	if overall.Value <= 0 {
		t.Fatalf("neutral defaults should not produce a zero score, got %v", overall.Value)
	}
	if overall.Band == BandPoor {
		t.Fatalf("partial completion must not band as poor, got %s", overall.Band)
	}
}

func TestScorePriorAnswersFillGaps(t *testing.T) {
	prior := map[string]string{
		"sleep_quality": "excellent",
		"fall_asleep":   "under_15m",
		"night_wakings": "rarely",
	}
	withPrior := Score(AssessmentSleepSymptom, map[string]string{"sleep_quality": "poor"}, prior)
	withoutPrior := Score(AssessmentSleepSymptom, map[string]string{"sleep_quality": "poor"}, nil)

	if withPrior.SubScores["fallAsleep"] != 90 {
		t.Fatalf("prior answer should fill fallAsleep: want=90 got=%v", withPrior.SubScores["fallAsleep"])
	}
	if withPrior.SubScores["sleepQuality"] != 25 {
		t.Fatalf("direct answer must win over prior: want=25 got=%v", withPrior.SubScores["sleepQuality"])
	}
	if withPrior.Overall().Value <= withoutPrior.Overall().Value {
		t.Fatalf("healthy priors should lift the composite: with=%v without=%v",
			withPrior.Overall().Value, withoutPrior.Overall().Value)
	}
}
