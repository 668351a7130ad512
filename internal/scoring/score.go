package scoring

// Result is the full output of scoring one assessment instance.
type Result struct {
	Type       AssessmentType   `json:"type"`
	Pillar     Pillar           `json:"pillar"`
	Topic      string           `json:"topic"`
	Scale      Scale            `json:"scale"`
	Modeled    bool             `json:"modeled"`
	SubScores  SubScores        `json:"sub_scores"`
	Composites []CompositeScore `json:"composites"`
}

// Overall returns the composite that drives focus-area selection: the first
// strategy's score for the assessment's topic.
func (r Result) Overall() CompositeScore {
	if len(r.Composites) == 0 {
		return CompositeScore{Name: r.Topic, Value: neutralValue(r.Scale), Scale: r.Scale, Band: Classify(neutralValue(r.Scale), r.Scale)}
	}
	return r.Composites[0]
}

// FocusArea derives the (pillar, topic, severity) triple for this result.
func (r Result) FocusArea() FocusArea {
	overall := r.Overall()
	return FocusArea{
		Pillar: r.Pillar,
		Topic:  r.Topic,
		Band:   overall.Band,
		Score:  overall.Value,
		Scale:  overall.Scale,
	}
}

// Score runs the full pure pipeline for one assessment: normalization,
// composite scoring and severity banding. An unrecognized assessment type
// falls back to a generic default-scored rule set instead of failing.
func Score(t AssessmentType, answers, prior map[string]string) Result {
	cfg, modeled := ConfigFor(t)
	if !modeled {
		cfg = genericConfig(t, answers)
	}

	sub := Normalize(cfg, answers, prior)

	composites := make([]CompositeScore, 0, len(cfg.Strategies))
	for _, strat := range cfg.Strategies {
		composites = append(composites, strat.Score(sub))
	}

	return Result{
		Type:       t,
		Pillar:     cfg.Pillar,
		Topic:      cfg.Topic,
		Scale:      cfg.Scale,
		Modeled:    modeled,
		SubScores:  sub,
		Composites: composites,
	}
}
