package scoring

// Strategy converts normalized sub-scores into one named composite score.
// Different assessment families use different scoring philosophies; each is a
// pluggable strategy so a config can compose several per assessment.
type Strategy interface {
	Score(sub SubScores) CompositeScore
}

// WeightedAverage averages sub-score values by weight. Sub-scores are assumed
// to already be on the strategy's scale (percentages for 0-100, points for
// 0-5). Missing dimensions fall back to the neutral midpoint of the scale so
// a partial answer set degrades toward "fair" rather than zero.
type WeightedAverage struct {
	Name    string
	Scale   Scale
	Weights map[string]float64
}

func (s WeightedAverage) Score(sub SubScores) CompositeScore {
	var total, weightSum float64
	for dim, w := range s.Weights {
		if w <= 0 {
			continue
		}
		v, ok := sub[dim]
		if !ok {
			v = neutralValue(s.Scale)
		}
		total += v * w
		weightSum += w
	}
	value := neutralValue(s.Scale)
	if weightSum > 0 {
		value = total / weightSum
	}
	return composite(s.Name, value, s.Scale)
}

// Deduction starts from the scale ceiling and subtracts points in proportion
// to each dimension's deficit. A dimension's sub-score is a 0-100 "healthy"
// percentage; Costs holds the points lost when that dimension is at its
// worst. Deductions that would drive the score below zero floor at zero.
type Deduction struct {
	Name  string
	Scale Scale
	Costs map[string]float64
}

func (s Deduction) Score(sub SubScores) CompositeScore {
	value := s.Scale.Ceiling()
	for dim, cost := range s.Costs {
		if cost <= 0 {
			continue
		}
		v, ok := sub[dim]
		if !ok {
			v = neutralValue(Scale100)
		}
		deficit := (100 - clamp(v, 0, 100)) / 100
		value -= cost * deficit
	}
	return composite(s.Name, value, s.Scale)
}

func composite(name string, value float64, scale Scale) CompositeScore {
	value = clamp(value, 0, scale.Ceiling())
	return CompositeScore{
		Name:  name,
		Value: value,
		Scale: scale,
		Band:  Classify(value, scale),
	}
}

// neutralValue is the "fair" midpoint an unanswered dimension contributes,
// chosen so partial completion bands as fair rather than poor or good.
func neutralValue(scale Scale) float64 {
	if scale == Scale5 {
		return 3
	}
	return 55
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
