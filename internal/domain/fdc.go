package domain

// Wire types for the USDA FoodData Central API. The search endpoint returns
// flat food summaries; the detail endpoint nests nutrient metadata one level
// deeper, so the two shapes are modeled separately.

// FoodSearchResponse is the payload of GET /v1/foods/search.
type FoodSearchResponse struct {
	Foods       []FoodSummary `json:"foods"`
	TotalHits   int           `json:"totalHits"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
}

// FoodSummary is one search hit.
type FoodSummary struct {
	FdcID       int64  `json:"fdcId"`
	Description string `json:"description"`
	DataType    string `json:"dataType,omitempty"`
}

// FoodDetail is the payload of GET /v1/food/{fdcId}.
type FoodDetail struct {
	FdcID           int64          `json:"fdcId"`
	Description     string         `json:"description"`
	ServingSize     float64        `json:"servingSize,omitempty"`
	ServingSizeUnit string         `json:"servingSizeUnit,omitempty"`
	FoodNutrients   []FoodNutrient `json:"foodNutrients"`
}

// FoodNutrient is one entry of the detail endpoint's nutrient list.
type FoodNutrient struct {
	Nutrient NutrientRef `json:"nutrient"`
	Amount   float64     `json:"amount"`
}

// NutrientRef carries the provider's numeric nutrient identifier.
type NutrientRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name,omitempty"`
	Number string `json:"number,omitempty"`
	Unit   string `json:"unitName,omitempty"`
}
