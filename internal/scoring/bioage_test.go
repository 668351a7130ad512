package scoring

import (
	"math"
	"testing"
)

func TestBaseImpactClampsBelowLowestBand(t *testing.T) {
	if got := BaseImpact(42); got != 2.5 {
		t.Fatalf("BaseImpact(42): want=2.5 got=%v", got)
	}
	if got := BaseImpact(0); got != 2.5 {
		t.Fatalf("BaseImpact(0): want=2.5 got=%v", got)
	}
	if got := BaseImpact(150); got != -2.5 {
		t.Fatalf("BaseImpact(150): want=-2.5 got=%v", got)
	}
}

func TestBaseImpactNeutralBand(t *testing.T) {
	for _, score := range []float64{90, 95, 100, 105, 109.9} {
		got := BaseImpact(score)
		if got < -0.2 || got > 0.2 {
			t.Fatalf("BaseImpact(%v) should sit in the neutral range, got %v", score, got)
		}
	}
}

func TestBaseImpactContinuousAtBandBoundaries(t *testing.T) {
	const eps = 1e-6
	for _, b := range []float64{60, 70, 80, 90, 110, 120, 125, 130, 140} {
		left := BaseImpact(b - eps)
		right := BaseImpact(b)
		if math.Abs(left-right) > 1e-3 {
			t.Fatalf("discontinuity at %v: left=%v right=%v", b, left, right)
		}
	}
}

func TestProjectSubLinearHorizonScaling(t *testing.T) {
	for _, score := range []float64{42, 65, 85, 120} {
		ps := Project(score, []int{5, 20}, DefaultOptimalScore)
		if len(ps) != 2 {
			t.Fatalf("want 2 projections, got %d", len(ps))
		}
		base := ps[0].CurrentImpactYears
		if base == 0 {
			continue
		}
		ratio := ps[1].CurrentImpactYears / base
		if ratio != 2.0 {
			t.Fatalf("score %v: 20y/5y ratio want=2.0 got=%v", score, ratio)
		}
	}
}

func TestProjectScore42Example(t *testing.T) {
	ps := Project(42, []int{5, 20}, DefaultOptimalScore)
	if ps[0].CurrentImpactYears != 2.5 {
		t.Fatalf("5y impact: want=+2.5 got=%v", ps[0].CurrentImpactYears)
	}
	if ps[1].CurrentImpactYears != 5.0 {
		t.Fatalf("20y impact: want=+5.0 got=%v", ps[1].CurrentImpactYears)
	}
}

func TestProjectSignConventionAndGap(t *testing.T) {
	ps := Project(42, DefaultHorizons, DefaultOptimalScore)
	for _, p := range ps {
		if p.CurrentImpactYears <= 0 {
			t.Fatalf("low score must age faster (positive impact), got %v at %dy", p.CurrentImpactYears, p.HorizonYears)
		}
		if p.OptimalImpactYears >= 0 {
			t.Fatalf("optimal reference must age slower (negative impact), got %v at %dy", p.OptimalImpactYears, p.HorizonYears)
		}
		wantGap := p.CurrentImpactYears - p.OptimalImpactYears
		if p.GapYears != wantGap {
			t.Fatalf("gap mismatch at %dy: want=%v got=%v", p.HorizonYears, wantGap, p.GapYears)
		}
	}
}

func TestProjectDefaults(t *testing.T) {
	ps := Project(42, nil, 0)
	if len(ps) != len(DefaultHorizons) {
		t.Fatalf("default horizons: want=%d got=%d", len(DefaultHorizons), len(ps))
	}
	if ps[0].OptimalImpactYears == 0 {
		t.Fatalf("default optimal score should produce a nonzero counter-projection")
	}
}
