package usecase

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalplate/backend/internal/domain"
)

func TestExportCSV(t *testing.T) {
	log := domain.NewMealLog()
	log.Append(domain.FoodEntry{
		Name: "Banana, raw",
		Reading: domain.NutrientReading{
			Amounts: map[domain.Nutrient]float64{
				domain.NutrientCalories:      89,
				domain.NutrientCarbohydrates: 22.8,
				domain.NutrientSugars:        12.2,
			},
			Portion: domain.DefaultPortion,
		},
		AddedAt: time.Now(),
	})
	log.Append(domain.FailedEntry("xyzzy", time.Now()))

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, log))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header, banana, failed marker, totals

	header := rows[0]
	assert.Equal(t, "Food", header[0])
	assert.Equal(t, "Portion", header[1])
	assert.Equal(t, "Calories", header[2])
	assert.Equal(t, "Diabetes Screen", header[len(header)-1])

	banana := rows[1]
	assert.Equal(t, "Banana, raw", banana[0])
	assert.Equal(t, "89", banana[2])
	// Unreported nutrient renders blank, not zero.
	assert.Equal(t, "", banana[3]) // Protein (g)
	// 12.2 g sugars ≥ the 10 g item cutoff.
	assert.Equal(t, string(VerdictNotSafe), banana[len(banana)-1])

	failed := rows[2]
	assert.Equal(t, "xyzzy (not found)", failed[0])
	assert.Equal(t, "", failed[len(failed)-1])

	totals := rows[3]
	assert.Equal(t, "Total", totals[0])
	assert.Equal(t, "89", totals[2])
	assert.Equal(t, "0", totals[3])
	assert.Equal(t, string(VerdictSafe), totals[len(totals)-1])
}

func TestExportCSV_EmptyLog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, domain.NewMealLog()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2) // header and all-zero totals
	assert.Equal(t, "Total", rows[1][0])
}
