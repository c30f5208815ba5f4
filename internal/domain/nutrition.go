package domain

import "time"

// Nutrient is a canonical label for one of the tracked nutrient columns.
// Amounts are per 100 g unless the reading carries an explicit portion.
type Nutrient string

const (
	NutrientCalories      Nutrient = "Calories"
	NutrientProtein       Nutrient = "Protein (g)"
	NutrientTotalFat      Nutrient = "Total Fat (g)"
	NutrientCarbohydrates Nutrient = "Carbohydrates (g)"
	NutrientSodium        Nutrient = "Sodium (mg)"
	NutrientPotassium     Nutrient = "Potassium (mg)"
	NutrientPhosphorus    Nutrient = "Phosphorus (mg)"
	NutrientWater         Nutrient = "Water (g)"
	NutrientSugars        Nutrient = "Sugars (g)"
)

// AllNutrients lists every tracked nutrient in display/column order.
var AllNutrients = []Nutrient{
	NutrientCalories,
	NutrientProtein,
	NutrientTotalFat,
	NutrientCarbohydrates,
	NutrientSodium,
	NutrientPotassium,
	NutrientPhosphorus,
	NutrientWater,
	NutrientSugars,
}

// CKDNutrients are the nutrients the graduated CKD classifier applies to.
var CKDNutrients = []Nutrient{
	NutrientSodium,
	NutrientPotassium,
	NutrientPhosphorus,
}

// DefaultPortion is used when the provider reports no serving size.
const DefaultPortion = "100 g (default)"

// NutrientReading holds the extracted amounts for one resolved food.
// A nutrient absent from Amounts was not reported by the provider, which
// is distinct from a reported zero. Treated as immutable after creation.
type NutrientReading struct {
	Amounts map[Nutrient]float64 `json:"amounts"`
	Portion string               `json:"portion"`
}

// EmptyReading returns a reading that marks a failed lookup.
func EmptyReading() NutrientReading {
	return NutrientReading{Amounts: map[Nutrient]float64{}, Portion: DefaultPortion}
}

// Amount returns the reported value for n and whether it was reported.
func (r NutrientReading) Amount(n Nutrient) (float64, bool) {
	v, ok := r.Amounts[n]
	return v, ok
}

// IsEmpty reports whether the reading carries no nutrient data at all.
func (r NutrientReading) IsEmpty() bool {
	return len(r.Amounts) == 0
}

// CandidateFood is a single search hit from the provider.
type CandidateFood struct {
	FdcID       int64  `json:"fdcId"`
	Description string `json:"description"`
}

// FoodEntry pairs a display name with its reading. When Failed is set the
// name carries the raw query plus an error marker and the reading is empty;
// such entries stay in the log for display but are excluded from totals.
type FoodEntry struct {
	Name    string          `json:"name"`
	Reading NutrientReading `json:"reading"`
	Failed  bool            `json:"failed,omitempty"`
	AddedAt time.Time       `json:"addedAt"`
}

// FailedEntry builds the marker entry recorded when a lookup produced no
// usable data.
func FailedEntry(query string, at time.Time) FoodEntry {
	return FoodEntry{
		Name:    query + " (not found)",
		Reading: EmptyReading(),
		Failed:  true,
		AddedAt: at,
	}
}
