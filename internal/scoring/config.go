package scoring

// AssessmentType identifies one questionnaire family.
type AssessmentType string

const (
	AssessmentSleepSymptom   AssessmentType = "sleep-symptom"
	AssessmentNutrition      AssessmentType = "nutrition"
	AssessmentHormoneCompass AssessmentType = "hormone-compass"
	AssessmentStressCheck    AssessmentType = "stress-check"
	AssessmentSkinHealth     AssessmentType = "skin-health"
	AssessmentJointMobility  AssessmentType = "joint-mobility"
)

// QuestionRule maps one question's option ids to sub-score contributions for
// a dimension. Neutral is used when the answer is missing or unknown, so
// partial completion degrades toward "fair" instead of a misleading extreme.
type QuestionRule struct {
	Dimension string
	Options   map[string]float64
	Neutral   float64
}

// AssessmentConfig is the versioned rule set for one assessment type:
// which pillar/topic it feeds, its scale, its question tables, and the
// scoring strategies that turn sub-scores into composites. The first
// strategy's composite is the topic's overall score and drives focus-area
// selection.
type AssessmentConfig struct {
	Type       AssessmentType
	Pillar     Pillar
	Topic      string
	Scale      Scale
	Questions  map[string]QuestionRule
	Strategies []Strategy
}

// ConfigFor returns the rule set for an assessment type.
func ConfigFor(t AssessmentType) (AssessmentConfig, bool) {
	cfg, ok := registry[t]
	return cfg, ok
}

// KnownTypes lists every modeled assessment type.
func KnownTypes() []AssessmentType {
	return []AssessmentType{
		AssessmentSleepSymptom,
		AssessmentNutrition,
		AssessmentHormoneCompass,
		AssessmentStressCheck,
		AssessmentSkinHealth,
		AssessmentJointMobility,
	}
}

var registry = map[AssessmentType]AssessmentConfig{
	AssessmentSleepSymptom: {
		Type:   AssessmentSleepSymptom,
		Pillar: PillarBody,
		Topic:  "sleep",
		Scale:  Scale100,
		Questions: map[string]QuestionRule{
			"sleep_quality": {
				Dimension: "sleepQuality",
				Options:   map[string]float64{"very_poor": 10, "poor": 25, "fair": 55, "good": 80, "excellent": 95},
				Neutral:   55,
			},
			"fall_asleep": {
				Dimension: "fallAsleep",
				Options:   map[string]float64{"over_60m": 10, "30_to_60m": 20, "15_to_30m": 55, "under_15m": 90},
				Neutral:   55,
			},
			"night_wakings": {
				Dimension: "nightWakings",
				Options:   map[string]float64{"four_plus": 10, "two_three": 20, "once": 60, "rarely": 90},
				Neutral:   60,
			},
		},
		Strategies: []Strategy{
			WeightedAverage{
				Name:  "sleep",
				Scale: Scale100,
				Weights: map[string]float64{
					"sleepQuality": 0.4,
					"fallAsleep":   0.3,
					"nightWakings": 0.3,
				},
			},
		},
	},

	AssessmentNutrition: {
		Type:   AssessmentNutrition,
		Pillar: PillarBody,
		Topic:  "nutrition",
		Scale:  Scale100,
		Questions: map[string]QuestionRule{
			"veg_servings": {
				Dimension: "vegetableIntake",
				Options:   map[string]float64{"none": 0, "one_two": 40, "three_four": 75, "five_plus": 100},
				Neutral:   60,
			},
			"protein_meals": {
				Dimension: "proteinIntake",
				Options:   map[string]float64{"rarely": 10, "some_meals": 50, "most_meals": 85, "every_meal": 100},
				Neutral:   60,
			},
			"sugary_drinks": {
				Dimension: "sugarLoad",
				Options:   map[string]float64{"daily": 0, "few_per_week": 40, "rarely": 80, "never": 100},
				Neutral:   60,
			},
			"water_intake": {
				Dimension: "hydration",
				Options:   map[string]float64{"under_1l": 20, "1_to_2l": 60, "2_to_3l": 90, "3l_plus": 100},
				Neutral:   60,
			},
			"late_eating": {
				Dimension: "mealTiming",
				Options:   map[string]float64{"most_nights": 20, "few_per_week": 50, "rarely": 85, "never": 100},
				Neutral:   60,
			},
		},
		Strategies: []Strategy{
			Deduction{
				Name:  "nutrition",
				Scale: Scale100,
				Costs: map[string]float64{
					"vegetableIntake": 25,
					"proteinIntake":   20,
					"sugarLoad":       25,
					"hydration":       15,
					"mealTiming":      15,
				},
			},
		},
	},

	AssessmentHormoneCompass: {
		Type:   AssessmentHormoneCompass,
		Pillar: PillarBalance,
		Topic:  "hormone-balance",
		Scale:  Scale5,
		Questions: map[string]QuestionRule{
			"hot_flashes": {
				Dimension: "hotFlashes",
				Options:   map[string]float64{"several_daily": 0.5, "daily": 1.5, "weekly": 2.5, "occasional": 3.5, "none": 5},
				Neutral:   3,
			},
			"mood_swings": {
				Dimension: "moodStability",
				Options:   map[string]float64{"constant": 0.5, "frequent": 1.5, "sometimes": 3, "rare": 4, "stable": 5},
				Neutral:   3,
			},
			"cycle_regularity": {
				Dimension: "cycleRegularity",
				Options:   map[string]float64{"absent": 1, "unpredictable": 2, "somewhat": 3.5, "regular": 5},
				Neutral:   3,
			},
			"night_sweats": {
				Dimension: "sleepDisruption",
				Options:   map[string]float64{"nightly": 0.5, "few_per_week": 2, "occasional": 3.5, "none": 5},
				Neutral:   3,
			},
			"energy_level": {
				Dimension: "energyLevel",
				Options:   map[string]float64{"exhausted": 1, "low": 2, "variable": 3, "steady": 4, "high": 5},
				Neutral:   3,
			},
		},
		Strategies: []Strategy{
			WeightedAverage{
				Name:  "hormone-balance",
				Scale: Scale5,
				Weights: map[string]float64{
					"hotFlashes":      0.25,
					"moodStability":   0.2,
					"cycleRegularity": 0.25,
					"sleepDisruption": 0.3,
				},
			},
			WeightedAverage{
				Name:  "vitality",
				Scale: Scale5,
				Weights: map[string]float64{
					"energyLevel":   0.6,
					"moodStability": 0.4,
				},
			},
		},
	},

	AssessmentStressCheck: {
		Type:   AssessmentStressCheck,
		Pillar: PillarBrain,
		Topic:  "stress",
		Scale:  Scale100,
		Questions: map[string]QuestionRule{
			"overwhelmed": {
				Dimension: "perceivedStress",
				Options:   map[string]float64{"constantly": 10, "often": 30, "sometimes": 60, "rarely": 85, "never": 100},
				Neutral:   60,
			},
			"irritability": {
				Dimension: "irritability",
				Options:   map[string]float64{"daily": 15, "few_per_week": 40, "occasionally": 70, "rarely": 95},
				Neutral:   60,
			},
			"focus": {
				Dimension: "focus",
				Options:   map[string]float64{"cannot_focus": 10, "scattered": 35, "okay": 65, "sharp": 90},
				Neutral:   60,
			},
			"wind_down": {
				Dimension: "recovery",
				Options:   map[string]float64{"never": 15, "struggle": 40, "usually": 70, "easily": 95},
				Neutral:   60,
			},
		},
		Strategies: []Strategy{
			WeightedAverage{
				Name:  "stress",
				Scale: Scale100,
				Weights: map[string]float64{
					"perceivedStress": 0.4,
					"irritability":    0.2,
					"focus":           0.2,
					"recovery":        0.2,
				},
			},
		},
	},

	AssessmentSkinHealth: {
		Type:   AssessmentSkinHealth,
		Pillar: PillarBeauty,
		Topic:  "skin",
		Scale:  Scale100,
		Questions: map[string]QuestionRule{
			"sun_protection": {
				Dimension: "sunProtection",
				Options:   map[string]float64{"never": 0, "sometimes": 40, "most_days": 75, "daily": 100},
				Neutral:   60,
			},
			"skin_dryness": {
				Dimension: "skinHydration",
				Options:   map[string]float64{"severe": 10, "frequent": 40, "occasional": 70, "none": 95},
				Neutral:   60,
			},
			"breakouts": {
				Dimension: "skinClarity",
				Options:   map[string]float64{"persistent": 15, "monthly": 50, "rare": 80, "never": 100},
				Neutral:   60,
			},
			"elasticity": {
				Dimension: "elasticity",
				Options:   map[string]float64{"notably_lost": 20, "some_loss": 50, "mild_loss": 75, "firm": 95},
				Neutral:   60,
			},
		},
		Strategies: []Strategy{
			Deduction{
				Name:  "skin",
				Scale: Scale100,
				Costs: map[string]float64{
					"sunProtection": 30,
					"skinHydration": 25,
					"skinClarity":   25,
					"elasticity":    20,
				},
			},
		},
	},

	AssessmentJointMobility: {
		Type:   AssessmentJointMobility,
		Pillar: PillarBody,
		Topic:  "joint-pain",
		Scale:  Scale100,
		Questions: map[string]QuestionRule{
			"joint_pain": {
				Dimension: "jointPain",
				Options:   map[string]float64{"constant": 10, "daily": 30, "after_activity": 60, "rare": 85, "none": 100},
				Neutral:   60,
			},
			"morning_stiffness": {
				Dimension: "stiffness",
				Options:   map[string]float64{"over_30m": 15, "10_to_30m": 45, "under_10m": 75, "none": 95},
				Neutral:   60,
			},
			"range_of_motion": {
				Dimension: "mobility",
				Options:   map[string]float64{"very_limited": 15, "limited": 45, "mostly_full": 75, "full": 95},
				Neutral:   60,
			},
		},
		Strategies: []Strategy{
			WeightedAverage{
				Name:  "joint-pain",
				Scale: Scale100,
				Weights: map[string]float64{
					"jointPain": 0.5,
					"stiffness": 0.3,
					"mobility":  0.2,
				},
			},
		},
	},
}
