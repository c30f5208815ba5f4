package fdc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renalplate/backend/internal/domain"
)

func TestMapToReading(t *testing.T) {
	detail := &domain.FoodDetail{
		FdcID:       1102653,
		Description: "Banana, raw",
		FoodNutrients: []domain.FoodNutrient{
			{Nutrient: domain.NutrientRef{ID: NutrientIDEnergy}, Amount: 89},
			{Nutrient: domain.NutrientRef{ID: NutrientIDProtein}, Amount: 1.1},
			{Nutrient: domain.NutrientRef{ID: NutrientIDPotassium}, Amount: 358},
			{Nutrient: domain.NutrientRef{ID: 1087}, Amount: 5}, // calcium, not tracked
		},
	}

	reading := MapToReading(detail)

	assert.Equal(t, map[domain.Nutrient]float64{
		domain.NutrientCalories:  89,
		domain.NutrientProtein:   1.1,
		domain.NutrientPotassium: 358,
	}, reading.Amounts)
	assert.Equal(t, domain.DefaultPortion, reading.Portion)
}

func TestMapToReading_Portion(t *testing.T) {
	detail := &domain.FoodDetail{
		ServingSize:     118,
		ServingSizeUnit: "g",
	}

	reading := MapToReading(detail)

	assert.Equal(t, "118 g", reading.Portion)
	assert.True(t, reading.IsEmpty())
}

func TestMapToReading_NoNutrients(t *testing.T) {
	reading := MapToReading(&domain.FoodDetail{})

	assert.True(t, reading.IsEmpty())
	assert.Equal(t, domain.DefaultPortion, reading.Portion)
}

func TestFormatPortion(t *testing.T) {
	tests := []struct {
		name     string
		size     float64
		unit     string
		expected string
	}{
		{"size and unit", 28.35, "g", "28.35 g"},
		{"missing unit", 100, "", domain.DefaultPortion},
		{"missing size", 0, "g", domain.DefaultPortion},
		{"negative size", -1, "g", domain.DefaultPortion},
		{"ml unit", 240, "ml", "240 ml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatPortion(tt.size, tt.unit))
		})
	}
}

func TestMapToReading_ZeroAmountIsReported(t *testing.T) {
	// A reported zero must stay distinguishable from an absent nutrient.
	detail := &domain.FoodDetail{
		FoodNutrients: []domain.FoodNutrient{
			{Nutrient: domain.NutrientRef{ID: NutrientIDSugars}, Amount: 0},
		},
	}

	reading := MapToReading(detail)

	v, ok := reading.Amount(domain.NutrientSugars)
	assert.True(t, ok)
	assert.Zero(t, v)

	_, ok = reading.Amount(domain.NutrientSodium)
	assert.False(t, ok)
}
