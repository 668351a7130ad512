package scoring

import "math"

// DefaultOptimalScore is the fixed "achievable" reference used for the
// counter-projection. The sustained-score scale intentionally extends past
// 100 so that the optimal trajectory is out of reach of a perfect composite.
const DefaultOptimalScore = 135.0

// DefaultHorizons are the projection horizons surfaced to clients, in years.
var DefaultHorizons = []int{5, 10, 15, 20}

// Projection is the per-horizon output of the biological-age model.
// Impact is signed: positive means the projected biological age is older than
// chronological age at that horizon, negative means younger.
type Projection struct {
	HorizonYears       int     `json:"horizon_years"`
	CurrentImpactYears float64 `json:"current_impact_years"`
	OptimalImpactYears float64 `json:"optimal_impact_years"`
	GapYears           float64 `json:"gap_years"`
}

// impactBands is the piecewise-linear base 5-year impact table. Each band
// maps a sustained-score range to an impact range in years; the impact is
// interpolated linearly by the score's position within the band. Adjacent
// bands share endpoints, so the curve is continuous. Scores below the lowest
// band or above the highest clamp to that band's extreme.
var impactBands = []struct {
	lo, hi     float64
	from, to   float64
}{
	{60, 70, 2.5, 1.8},
	{70, 80, 1.8, 1.0},
	{80, 90, 1.0, 0.2},
	{90, 110, 0.2, -0.2}, // neutral band
	{110, 120, -0.2, -0.8},
	{120, 125, -0.8, -1.2},
	{125, 130, -1.2, -1.6},
	{130, 140, -1.6, -2.5},
}

// BaseImpact returns the base 5-year impact in years for a sustained score.
func BaseImpact(score float64) float64 {
	if score < impactBands[0].lo {
		return impactBands[0].from
	}
	last := impactBands[len(impactBands)-1]
	if score >= last.hi {
		return last.to
	}
	for _, b := range impactBands {
		if score >= b.lo && score < b.hi {
			pos := (score - b.lo) / (b.hi - b.lo)
			return b.from + pos*(b.to-b.from)
		}
	}
	return 0
}

// horizonFactor scales the base 5-year impact to a longer horizon. The √
// scaling is deliberately sub-linear: quadrupling the horizon only doubles
// the factor, modeling diminishing marginal effect of sustained habits.
func horizonFactor(years int) float64 {
	if years <= 0 {
		return 0
	}
	return math.Sqrt(float64(years) / 5.0)
}

// Project computes the signed age-impact trajectory for a sustained composite
// score against the optimal reference, one Projection per horizon. Pure and
// cheap; safe to recompute on every view.
func Project(score float64, horizons []int, optimal float64) []Projection {
	if len(horizons) == 0 {
		horizons = DefaultHorizons
	}
	if optimal == 0 {
		optimal = DefaultOptimalScore
	}
	base := BaseImpact(score)
	optBase := BaseImpact(optimal)

	out := make([]Projection, 0, len(horizons))
	for _, h := range horizons {
		f := horizonFactor(h)
		cur := base * f
		opt := optBase * f
		out = append(out, Projection{
			HorizonYears:       h,
			CurrentImpactYears: cur,
			OptimalImpactYears: opt,
			GapYears:           cur - opt,
		})
	}
	return out
}
