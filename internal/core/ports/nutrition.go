package ports

import (
	"context"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// FoodItemInput carries a food item create or update payload.
type FoodItemInput struct {
	Name       string  `json:"name"`
	FoodTypeID int64   `json:"foodTypeId,omitempty"`
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"proteinG,omitempty"`
	CarbsG     float64 `json:"carbsG,omitempty"`
	FatG       float64 `json:"fatG,omitempty"`
	ServingG   float64 `json:"servingG,omitempty"`
	Status     string  `json:"status,omitempty"`
}

// FoodTypeInput carries a food type create or update payload.
type FoodTypeInput struct {
	Name string `json:"name"`
}

// NutrientInput carries a nutrient create or update payload.
type NutrientInput struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// NutritionClient maps the nutrition reference endpoints to HTTP calls.
// Food items are paginated; food types and nutrients are small closed lists
// served unpaginated.
type NutritionClient interface {
	FoodItems(ctx context.Context, q ListQuery) (*domain.Page[domain.FoodItem], error)
	FoodItem(ctx context.Context, id int64) (*domain.FoodItem, error)
	CreateFoodItem(ctx context.Context, in FoodItemInput) (*domain.FoodItem, error)
	UpdateFoodItem(ctx context.Context, id int64, in FoodItemInput) (*domain.FoodItem, error)
	DeleteFoodItem(ctx context.Context, id int64) error

	FoodTypes(ctx context.Context) ([]domain.FoodType, error)
	CreateFoodType(ctx context.Context, in FoodTypeInput) (*domain.FoodType, error)
	UpdateFoodType(ctx context.Context, id int64, in FoodTypeInput) (*domain.FoodType, error)
	DeleteFoodType(ctx context.Context, id int64) error

	Nutrients(ctx context.Context) ([]domain.Nutrient, error)
	Nutrient(ctx context.Context, id int64) (*domain.Nutrient, error)
	CreateNutrient(ctx context.Context, in NutrientInput) (*domain.Nutrient, error)
	UpdateNutrient(ctx context.Context, id int64, in NutrientInput) (*domain.Nutrient, error)
	DeleteNutrient(ctx context.Context, id int64) error
}
