package domain

import "errors"

var (
	// ErrFoodNotFound is returned when the provider has no match for a query
	// or food id.
	ErrFoodNotFound = errors.New("food not found in FoodData Central")

	// ErrFDCUnavailable is returned when the provider responds with a
	// non-success status or a malformed payload.
	ErrFDCUnavailable = errors.New("FoodData Central request failed")

	// ErrInvalidQuery is returned when a search query is empty after trimming.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrUnknownStage is returned for a CKD stage outside the enumerated set.
	ErrUnknownStage = errors.New("unknown CKD stage")

	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
)
