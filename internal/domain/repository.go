package domain

import "context"

// FDCClient defines the interface for talking to USDA FoodData Central.
type FDCClient interface {
	SearchFoods(ctx context.Context, query string, pageSize int) (*FoodSearchResponse, error)
	GetFood(ctx context.Context, fdcID int64) (*FoodDetail, error)
}

// SessionStore defines the interface for the per-session meal log registry.
type SessionStore interface {
	Create(ctx context.Context) (string, *MealLog)
	Get(ctx context.Context, id string) (*MealLog, error)
	Delete(ctx context.Context, id string) error
}
