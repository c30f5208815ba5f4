package usecase

import "github.com/renalplate/backend/internal/domain"

// Summarize sums the requested nutrients across all readings. Nutrients a
// reading does not report contribute zero. The result carries an entry for
// every requested nutrient, so an empty input yields all zeros. Pure and
// order-independent: totals are always recomputed from the full sequence,
// never maintained incrementally.
func Summarize(readings []domain.NutrientReading, nutrients []domain.Nutrient) map[domain.Nutrient]float64 {
	totals := make(map[domain.Nutrient]float64, len(nutrients))
	for _, n := range nutrients {
		totals[n] = 0
	}

	for _, r := range readings {
		for _, n := range nutrients {
			if v, ok := r.Amount(n); ok {
				totals[n] += v
			}
		}
	}

	return totals
}
