package usecase

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renalplate/backend/internal/domain"
)

func reading(amounts map[domain.Nutrient]float64) domain.NutrientReading {
	return domain.NutrientReading{Amounts: amounts, Portion: domain.DefaultPortion}
}

func TestSummarize(t *testing.T) {
	readings := []domain.NutrientReading{
		reading(map[domain.Nutrient]float64{
			domain.NutrientCalories:  89,
			domain.NutrientPotassium: 358,
		}),
		reading(map[domain.Nutrient]float64{
			domain.NutrientCalories:  130,
			domain.NutrientPotassium: 35,
			domain.NutrientSodium:    1,
		}),
	}

	totals := Summarize(readings, []domain.Nutrient{
		domain.NutrientCalories, domain.NutrientPotassium,
		domain.NutrientSodium, domain.NutrientPhosphorus,
	})

	assert.Equal(t, 219.0, totals[domain.NutrientCalories])
	assert.Equal(t, 393.0, totals[domain.NutrientPotassium])
	assert.Equal(t, 1.0, totals[domain.NutrientSodium])
	// Requested but absent from every reading: zero, not an error.
	assert.Equal(t, 0.0, totals[domain.NutrientPhosphorus])
}

func TestSummarize_EmptyInput(t *testing.T) {
	totals := Summarize(nil, domain.AllNutrients)

	for _, n := range domain.AllNutrients {
		v, ok := totals[n]
		assert.True(t, ok, "missing total for %s", n)
		assert.Zero(t, v)
	}
}

func TestSummarize_OrderIndependent(t *testing.T) {
	readings := []domain.NutrientReading{
		reading(map[domain.Nutrient]float64{domain.NutrientSodium: 120.5}),
		reading(map[domain.Nutrient]float64{domain.NutrientSodium: 3.25, domain.NutrientSugars: 9}),
		reading(map[domain.Nutrient]float64{domain.NutrientSugars: 0.75}),
		reading(map[domain.Nutrient]float64{}),
	}

	want := Summarize(readings, domain.AllNutrients)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.NutrientReading, len(readings))
		copy(shuffled, readings)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, want, Summarize(shuffled, domain.AllNutrients))
	}
}

func TestSummarize_ReportedZeroStillSums(t *testing.T) {
	readings := []domain.NutrientReading{
		reading(map[domain.Nutrient]float64{domain.NutrientSugars: 0}),
		reading(map[domain.Nutrient]float64{domain.NutrientSugars: 4}),
	}

	totals := Summarize(readings, []domain.Nutrient{domain.NutrientSugars})
	assert.Equal(t, 4.0, totals[domain.NutrientSugars])
}
