package domain

// Stage identifies one of the three CKD severity tiers used to select a
// dietary limit table.
type Stage string

const (
	StageEarly    Stage = "stage_1_2"
	StageModerate Stage = "stage_3"
	StageAdvanced Stage = "stage_4_5"
)

// Stages lists the supported CKD stages.
var Stages = []Stage{StageEarly, StageModerate, StageAdvanced}

// ParseStage validates a stage name supplied by a caller.
func ParseStage(s string) (Stage, bool) {
	for _, stage := range Stages {
		if string(stage) == s {
			return stage, true
		}
	}
	return "", false
}

// LimitTable maps a CKD stage to per-nutrient daily maxima. Fixed at
// startup, never mutated.
type LimitTable map[Stage]map[Nutrient]float64

// DefaultLimits holds the per-day limits (mg) the classifier works from.
var DefaultLimits = LimitTable{
	StageEarly: {
		NutrientSodium:     2300,
		NutrientPotassium:  3500,
		NutrientPhosphorus: 1200,
	},
	StageModerate: {
		NutrientSodium:     2000,
		NutrientPotassium:  3000,
		NutrientPhosphorus: 1000,
	},
	StageAdvanced: {
		NutrientSodium:     1500,
		NutrientPotassium:  2500,
		NutrientPhosphorus: 800,
	},
}

// Limit returns the maximum for a nutrient at a stage, if one is defined.
func (t LimitTable) Limit(stage Stage, n Nutrient) (float64, bool) {
	limits, ok := t[stage]
	if !ok {
		return 0, false
	}
	v, ok := limits[n]
	return v, ok
}
