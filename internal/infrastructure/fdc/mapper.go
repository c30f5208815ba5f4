package fdc

import (
	"fmt"

	"github.com/renalplate/backend/internal/domain"
)

// FDC nutrient ids for the tracked set.
const (
	NutrientIDEnergy       = 1008 // Calories (kcal)
	NutrientIDProtein      = 1003 // Protein (g)
	NutrientIDTotalFat     = 1004 // Total Fat (g)
	NutrientIDCarbohydrate = 1005 // Carbohydrates (g)
	NutrientIDWater        = 1051 // Water (g)
	NutrientIDPhosphorus   = 1091 // Phosphorus (mg)
	NutrientIDPotassium    = 1092 // Potassium (mg)
	NutrientIDSodium       = 1093 // Sodium (mg)
	NutrientIDSugars       = 2000 // Total sugars (g)
)

// nutrientIDTable maps provider nutrient ids to canonical labels. Entries
// outside this table are dropped during extraction.
var nutrientIDTable = map[int64]domain.Nutrient{
	NutrientIDEnergy:       domain.NutrientCalories,
	NutrientIDProtein:      domain.NutrientProtein,
	NutrientIDTotalFat:     domain.NutrientTotalFat,
	NutrientIDCarbohydrate: domain.NutrientCarbohydrates,
	NutrientIDWater:        domain.NutrientWater,
	NutrientIDPhosphorus:   domain.NutrientPhosphorus,
	NutrientIDPotassium:    domain.NutrientPotassium,
	NutrientIDSodium:       domain.NutrientSodium,
	NutrientIDSugars:       domain.NutrientSugars,
}

// MapToReading converts an FDC detail payload into a NutrientReading,
// keeping only nutrients in the tracked set. Amounts are taken verbatim,
// no unit conversion.
func MapToReading(detail *domain.FoodDetail) domain.NutrientReading {
	amounts := make(map[domain.Nutrient]float64)
	for _, fn := range detail.FoodNutrients {
		label, ok := nutrientIDTable[fn.Nutrient.ID]
		if !ok {
			continue
		}
		amounts[label] = fn.Amount
	}

	return domain.NutrientReading{
		Amounts: amounts,
		Portion: formatPortion(detail.ServingSize, detail.ServingSizeUnit),
	}
}

// formatPortion renders the provider's serving size, falling back to the
// 100 g basis when either half is missing.
func formatPortion(size float64, unit string) string {
	if size <= 0 || unit == "" {
		return domain.DefaultPortion
	}
	return fmt.Sprintf("%g %s", size, unit)
}
