package scoring

// Pillar is a top-level health category used to group assessment topics.
type Pillar string

const (
	PillarBody    Pillar = "body"
	PillarBrain   Pillar = "brain"
	PillarBalance Pillar = "balance"
	PillarBeauty  Pillar = "beauty"
)

// Scale identifies which numeric range and severity table a score uses.
// Some assessment families score 0-100, others 0-5; the two tables are kept
// separate on purpose and are never unified.
type Scale string

const (
	Scale100 Scale = "0-100"
	Scale5   Scale = "0-5"
)

// Ceiling returns the upper bound of the scale.
func (s Scale) Ceiling() float64 {
	if s == Scale5 {
		return 5
	}
	return 100
}

// SeverityBand is an ordinal classification of a composite score.
type SeverityBand string

// 0-100 scale bands (4-band table).
const (
	BandPoor      SeverityBand = "poor"
	BandFair      SeverityBand = "fair"
	BandGood      SeverityBand = "good"
	BandExcellent SeverityBand = "excellent"
)

// 0-5 scale bands (5-band table). BandGood is shared between the tables.
const (
	BandCritical   SeverityBand = "critical"
	BandStruggling SeverityBand = "struggling"
	BandChallenges SeverityBand = "challenges"
	BandThriving   SeverityBand = "thriving"
)

// SubScores maps a dimension name to its normalized numeric value.
type SubScores map[string]float64

// CompositeScore is one named pillar/category score plus its derived band.
type CompositeScore struct {
	Name  string       `json:"name"`
	Value float64      `json:"value"`
	Scale Scale        `json:"scale"`
	Band  SeverityBand `json:"band"`
}

// InterventionType classifies a protocol item.
type InterventionType string

const (
	InterventionSupplement InterventionType = "supplement"
	InterventionExercise   InterventionType = "exercise"
	InterventionDiet       InterventionType = "diet"
	InterventionHabit      InterventionType = "habit"
	InterventionTherapy    InterventionType = "therapy"
)

// ValidInterventionType reports whether t is one of the known item types.
func ValidInterventionType(t InterventionType) bool {
	switch t {
	case InterventionSupplement, InterventionExercise, InterventionDiet, InterventionHabit, InterventionTherapy:
		return true
	}
	return false
}

// PriorityTier orders protocol items by urgency.
type PriorityTier string

const (
	TierImmediate    PriorityTier = "immediate"
	TierFoundation   PriorityTier = "foundation"
	TierOptimization PriorityTier = "optimization"
)

// Candidate is a static catalog entry: one recommendable intervention.
// Tier is optional; empty means foundation unless the source severity
// promotes the item to immediate.
type Candidate struct {
	Type      InterventionType `json:"type" yaml:"type"`
	Name      string           `json:"name" yaml:"name"`
	Frequency string           `json:"frequency" yaml:"frequency"`
	TimeOfDay []string         `json:"time_of_day" yaml:"time_of_day"`
	Rationale string           `json:"rationale" yaml:"rationale"`
	Tier      PriorityTier     `json:"tier,omitempty" yaml:"tier,omitempty"`
}

// FocusArea is a (pillar, topic, severity) triple selected for intervention.
type FocusArea struct {
	Pillar Pillar       `json:"pillar"`
	Topic  string       `json:"topic"`
	Band   SeverityBand `json:"band"`
	Score  float64      `json:"score"`
	Scale  Scale        `json:"scale"`
}

// PlannedItem is one merged, tiered protocol item before persistence.
type PlannedItem struct {
	Candidate
	Tier        PriorityTier `json:"tier"`
	Why         string       `json:"why"`
	SourceTopic string       `json:"source_topic"`
}

// Resolver looks up intervention candidates for a focus triple.
// Implementations must return an empty slice for unknown keys, never an error.
type Resolver interface {
	Resolve(pillar Pillar, topic string, band SeverityBand) []Candidate
}
