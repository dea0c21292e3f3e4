package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

const nutritionPath = "/api/admin/nutrition"

// Nutrition maps the nutrition reference endpoints to single HTTP calls.
type Nutrition struct {
	c *Client
}

func NewNutrition(c *Client) *Nutrition {
	return &Nutrition{c: c}
}

func (n *Nutrition) FoodItems(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.FoodItem], error) {
	env, err := n.c.do(ctx, http.MethodGet, nutritionPath+"/food-items", q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.FoodItem](env)
}

func (n *Nutrition) FoodItem(ctx context.Context, id int64) (*domain.FoodItem, error) {
	env, err := n.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/food-items/%d", nutritionPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.FoodItem](env)
}

func (n *Nutrition) CreateFoodItem(ctx context.Context, in ports.FoodItemInput) (*domain.FoodItem, error) {
	env, err := n.c.do(ctx, http.MethodPost, nutritionPath+"/food-items", nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.FoodItem](env)
}

func (n *Nutrition) UpdateFoodItem(ctx context.Context, id int64, in ports.FoodItemInput) (*domain.FoodItem, error) {
	env, err := n.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/food-items/%d", nutritionPath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.FoodItem](env)
}

func (n *Nutrition) DeleteFoodItem(ctx context.Context, id int64) error {
	_, err := n.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/food-items/%d", nutritionPath, id), nil, nil)
	return err
}

func (n *Nutrition) FoodTypes(ctx context.Context) ([]domain.FoodType, error) {
	env, err := n.c.do(ctx, http.MethodGet, nutritionPath+"/food-types", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.FoodType](env)
}

func (n *Nutrition) CreateFoodType(ctx context.Context, in ports.FoodTypeInput) (*domain.FoodType, error) {
	env, err := n.c.do(ctx, http.MethodPost, nutritionPath+"/food-types", nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.FoodType](env)
}

func (n *Nutrition) UpdateFoodType(ctx context.Context, id int64, in ports.FoodTypeInput) (*domain.FoodType, error) {
	env, err := n.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/food-types/%d", nutritionPath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.FoodType](env)
}

func (n *Nutrition) DeleteFoodType(ctx context.Context, id int64) error {
	_, err := n.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/food-types/%d", nutritionPath, id), nil, nil)
	return err
}

func (n *Nutrition) Nutrients(ctx context.Context) ([]domain.Nutrient, error) {
	env, err := n.c.do(ctx, http.MethodGet, nutritionPath+"/nutrients", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Nutrient](env)
}

func (n *Nutrition) Nutrient(ctx context.Context, id int64) (*domain.Nutrient, error) {
	env, err := n.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/nutrients/%d", nutritionPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Nutrient](env)
}

func (n *Nutrition) CreateNutrient(ctx context.Context, in ports.NutrientInput) (*domain.Nutrient, error) {
	env, err := n.c.do(ctx, http.MethodPost, nutritionPath+"/nutrients", nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Nutrient](env)
}

func (n *Nutrition) UpdateNutrient(ctx context.Context, id int64, in ports.NutrientInput) (*domain.Nutrient, error) {
	env, err := n.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/nutrients/%d", nutritionPath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Nutrient](env)
}

func (n *Nutrition) DeleteNutrient(ctx context.Context, id int64) error {
	_, err := n.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/nutrients/%d", nutritionPath, id), nil, nil)
	return err
}
