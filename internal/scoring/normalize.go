package scoring

import "sort"

// Normalize maps a free-form answer set onto the assessment's dimensions.
// Answers take precedence over prior answers (guest pre-population is passed
// explicitly, never read from ambient state). A question with no usable
// answer contributes its neutral default. When several questions feed one
// dimension their contributions are averaged.
func Normalize(cfg AssessmentConfig, answers, prior map[string]string) SubScores {
	sums := make(map[string]float64, len(cfg.Questions))
	counts := make(map[string]int, len(cfg.Questions))

	for qid, rule := range cfg.Questions {
		v := rule.Neutral
		if opt, ok := lookupAnswer(qid, answers, prior); ok {
			if mapped, known := rule.Options[opt]; known {
				v = mapped
			}
		}
		sums[rule.Dimension] += v
		counts[rule.Dimension]++
	}

	out := make(SubScores, len(sums))
	for dim, sum := range sums {
		out[dim] = sum / float64(counts[dim])
	}
	return out
}

func lookupAnswer(qid string, answers, prior map[string]string) (string, bool) {
	if opt, ok := answers[qid]; ok && opt != "" {
		return opt, true
	}
	if opt, ok := prior[qid]; ok && opt != "" {
		return opt, true
	}
	return "", false
}

// genericConfig builds a default-scored rule set for an unrecognized
// assessment type so downstream recommendations stay obtainable. Every
// answered question becomes its own dimension at the neutral midpoint,
// averaged equally, which lands the composite in the "fair" band.
func genericConfig(t AssessmentType, answers map[string]string) AssessmentConfig {
	qids := make([]string, 0, len(answers))
	for qid := range answers {
		qids = append(qids, qid)
	}
	sort.Strings(qids)

	questions := make(map[string]QuestionRule, len(qids))
	weights := make(map[string]float64, len(qids))
	for _, qid := range qids {
		questions[qid] = QuestionRule{Dimension: qid, Neutral: neutralValue(Scale100)}
		weights[qid] = 1
	}
	if len(weights) == 0 {
		questions["overall"] = QuestionRule{Dimension: "overall", Neutral: neutralValue(Scale100)}
		weights["overall"] = 1
	}

	return AssessmentConfig{
		Type:      t,
		Pillar:    PillarBody,
		Topic:     string(t),
		Scale:     Scale100,
		Questions: questions,
		Strategies: []Strategy{
			WeightedAverage{Name: string(t), Scale: Scale100, Weights: weights},
		},
	}
}
