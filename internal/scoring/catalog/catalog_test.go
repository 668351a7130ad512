package catalog

import (
	"testing"

	"github.com/yungbote/longevity-backend/internal/scoring"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.Version() < 1 {
		t.Fatalf("catalog version should be set, got %d", c.Version())
	}
}

func TestResolveSleepPoorHasExpectedItems(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	items := c.Resolve(scoring.PillarBody, "sleep", scoring.BandPoor)
	if len(items) == 0 {
		t.Fatalf("body/sleep/poor should have candidates")
	}
	names := map[string]bool{}
	for _, it := range items {
		names[it.Name] = true
		if !scoring.ValidInterventionType(it.Type) {
			t.Fatalf("invalid intervention type %q on %q", it.Type, it.Name)
		}
	}
	if !names["Magnesium Glycinate"] {
		t.Fatalf("body/sleep/poor missing Magnesium Glycinate: %v", names)
	}
	if !names["Sleep Hygiene Routine"] {
		t.Fatalf("body/sleep/poor missing Sleep Hygiene Routine: %v", names)
	}
}

func TestResolveUnknownKeyReturnsEmpty(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if items := c.Resolve(scoring.PillarBrain, "unmodeled-topic", scoring.BandPoor); len(items) != 0 {
		t.Fatalf("unknown key must resolve empty, got %+v", items)
	}
}

func TestResolveHealthyBandsAreSparse(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for _, band := range []scoring.SeverityBand{scoring.BandGood, scoring.BandExcellent, scoring.BandThriving} {
		if items := c.Resolve(scoring.PillarBody, "sleep", band); len(items) != 0 {
			t.Fatalf("healthy band %s should have no entries, got %+v", band, items)
		}
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("entries: [")); err == nil {
		t.Fatalf("malformed catalog content must fail to parse")
	}
}

func TestEveryBandedEntryUsesKnownBands(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	known := map[scoring.SeverityBand]bool{
		scoring.BandPoor: true, scoring.BandFair: true,
		scoring.BandCritical: true, scoring.BandStruggling: true, scoring.BandChallenges: true,
	}
	for key, bands := range c.table {
		for band := range bands {
			if !known[band] {
				t.Fatalf("%s: band %q should not carry catalog entries", key, band)
			}
		}
	}
}
