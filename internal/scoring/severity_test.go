package scoring

import "testing"

func TestClassifyBoundariesBelongToHigherBand(t *testing.T) {
	cases := []struct {
		name  string
		value float64
		scale Scale
		want  SeverityBand
	}{
		{"zero_100", 0, Scale100, BandPoor},
		{"just_below_fair", 39.99, Scale100, BandPoor},
		{"fair_cut", 40, Scale100, BandFair},
		{"good_cut", 60, Scale100, BandGood},
		{"excellent_cut", 80, Scale100, BandExcellent},
		{"ceiling_100", 100, Scale100, BandExcellent},
		{"zero_5", 0, Scale5, BandCritical},
		{"struggling_cut", 1.5, Scale5, BandStruggling},
		{"challenges_cut", 2.5, Scale5, BandChallenges},
		{"good_cut_5", 3.5, Scale5, BandGood},
		{"thriving_cut", 4.5, Scale5, BandThriving},
		{"ceiling_5", 5, Scale5, BandThriving},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.value, tc.scale); got != tc.want {
				t.Fatalf("Classify(%v, %s)=%s, want %s", tc.value, tc.scale, got, tc.want)
			}
		})
	}
}

func TestClassifyIsMonotonic(t *testing.T) {
	for _, scale := range []Scale{Scale100, Scale5} {
		step := 0.5
		if scale == Scale5 {
			step = 0.05
		}
		prevRank := -1
		for v := 0.0; v <= scale.Ceiling(); v += step {
			rank := BandRank(Classify(v, scale))
			if rank < prevRank {
				t.Fatalf("%s: band got worse at score %v", scale, v)
			}
			prevRank = rank
		}
	}
}

func TestNeedsIntervention(t *testing.T) {
	needy := []SeverityBand{BandPoor, BandFair, BandCritical, BandStruggling, BandChallenges}
	for _, b := range needy {
		if !NeedsIntervention(b) {
			t.Fatalf("%s should need intervention", b)
		}
	}
	healthy := []SeverityBand{BandGood, BandExcellent, BandThriving}
	for _, b := range healthy {
		if NeedsIntervention(b) {
			t.Fatalf("%s should not need intervention", b)
		}
	}
}

func TestIsSevere(t *testing.T) {
	if !IsSevere(BandPoor) || !IsSevere(BandCritical) {
		t.Fatalf("poor and critical are the severe bands")
	}
	if IsSevere(BandFair) || IsSevere(BandChallenges) || IsSevere(BandStruggling) {
		t.Fatalf("non-worst bands must not be severe")
	}
}
