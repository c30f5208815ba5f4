package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStage(t *testing.T) {
	for _, stage := range Stages {
		parsed, ok := ParseStage(string(stage))
		assert.True(t, ok)
		assert.Equal(t, stage, parsed)
	}

	_, ok := ParseStage("stage_9")
	assert.False(t, ok)
}

func TestDefaultLimits(t *testing.T) {
	// Every stage defines a limit for every CKD nutrient, and limits
	// tighten as the stage advances.
	for _, n := range CKDNutrients {
		var prev float64
		for i, stage := range Stages {
			limit, ok := DefaultLimits.Limit(stage, n)
			assert.True(t, ok, "no %s limit for %s", n, stage)
			assert.Positive(t, limit)
			if i > 0 {
				assert.Less(t, limit, prev, "%s should tighten at %s", n, stage)
			}
			prev = limit
		}
	}
}

func TestLimitTable_Unknown(t *testing.T) {
	_, ok := DefaultLimits.Limit(Stage("stage_9"), NutrientSodium)
	assert.False(t, ok)

	_, ok = DefaultLimits.Limit(StageModerate, NutrientCalories)
	assert.False(t, ok)
}
