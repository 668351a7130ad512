package scoring

// Severity cut points. Boundary values belong to the higher band (">=").
//
// Two tables exist because the assessment families score on different scales;
// they are intentionally kept distinct (see DESIGN.md).
var (
	cuts100 = []struct {
		min  float64
		band SeverityBand
	}{
		{80, BandExcellent},
		{60, BandGood},
		{40, BandFair},
		{0, BandPoor},
	}

	cuts5 = []struct {
		min  float64
		band SeverityBand
	}{
		{4.5, BandThriving},
		{3.5, BandGood},
		{2.5, BandChallenges},
		{1.5, BandStruggling},
		{0, BandCritical},
	}
)

// Classify buckets a composite score into its ordinal severity band using the
// table matching the scale in use.
func Classify(value float64, scale Scale) SeverityBand {
	if scale == Scale5 {
		for _, c := range cuts5 {
			if value >= c.min {
				return c.band
			}
		}
		return BandCritical
	}
	for _, c := range cuts100 {
		if value >= c.min {
			return c.band
		}
	}
	return BandPoor
}

// bandRank orders bands worst-first within their own table. Shared across
// tables so severity comparisons stay monotonic per scale.
var bandRank = map[SeverityBand]int{
	BandCritical:   0,
	BandPoor:       0,
	BandStruggling: 1,
	BandFair:       1,
	BandChallenges: 2,
	BandGood:       3,
	BandExcellent:  4,
	BandThriving:   4,
}

// BandRank returns the ordinal position of a band, worst first. Unknown bands
// rank as healthy so they never trigger interventions by accident.
func BandRank(b SeverityBand) int {
	if r, ok := bandRank[b]; ok {
		return r
	}
	return 4
}

// NeedsIntervention reports whether a band is low enough to become a focus
// area. Healthy bands never yield protocol items.
func NeedsIntervention(b SeverityBand) bool {
	switch b {
	case BandPoor, BandFair, BandCritical, BandStruggling, BandChallenges:
		return true
	}
	return false
}

// IsSevere reports whether a band is in the worst tier of its table. Items
// sourced from severe focus areas are promoted to the immediate tier.
func IsSevere(b SeverityBand) bool {
	return b == BandPoor || b == BandCritical
}
