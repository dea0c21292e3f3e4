package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// NutritionHandler drives the nutrition reference section: the paginated
// food item database plus the two small unpaginated catalogs (food types,
// nutrients).
type NutritionHandler struct {
	nutrition ports.NutritionClient
	log       zerolog.Logger
}

func NewNutritionHandler(nutrition ports.NutritionClient, log zerolog.Logger) *NutritionHandler {
	return &NutritionHandler{nutrition: nutrition, log: log}
}

type foodItemRequest struct {
	Name       string  `json:"name" validate:"required"`
	FoodTypeID int64   `json:"foodTypeId"`
	Calories   float64 `json:"calories" validate:"required,gt=0"`
	ProteinG   float64 `json:"proteinG"`
	CarbsG     float64 `json:"carbsG"`
	FatG       float64 `json:"fatG"`
	ServingG   float64 `json:"servingG"`
	Status     string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r foodItemRequest) input() ports.FoodItemInput {
	return ports.FoodItemInput{
		Name:       r.Name,
		FoodTypeID: r.FoodTypeID,
		Calories:   r.Calories,
		ProteinG:   r.ProteinG,
		CarbsG:     r.CarbsG,
		FatG:       r.FatG,
		ServingG:   r.ServingG,
		Status:     r.Status,
	}
}

type foodTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

type nutrientRequest struct {
	Name string `json:"name" validate:"required"`
	Unit string `json:"unit" validate:"required"`
}

// sliceView is the unpaginated counterpart of listView, used for the small
// closed catalogs. The same degradation rule applies: a failed fetch renders
// an empty list with an error toast, still HTTP 200.
type sliceView[T any] struct {
	Items []T    `json:"items"`
	Toast *toast `json:"toast,omitempty"`
}

func renderSlice[T any](c echo.Context, items []T, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		return c.JSON(http.StatusOK, sliceView[T]{Items: []T{}, Toast: errorToast(err)})
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, sliceView[T]{Items: items})
}

func mutatedSlice[T any](c echo.Context, msg string, refetch func() ([]T, error)) error {
	items, err := refetch()
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		items = []T{}
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, sliceView[T]{Items: items, Toast: successToast(msg)})
}

// ── Food items ───────────────────────────────────────────────────────────────

// FoodItems godoc
// @Summary  List food items
// @Tags     nutrition
// @Produce  json
// @Param    page    query     int     false  "Zero-based page index"
// @Param    search  query     string  false  "Free-text filter"
// @Success  200     {object}  listView[domain.FoodItem]
// @Router   /admin/food-items [get]
func (h *NutritionHandler) FoodItems(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.nutrition.FoodItems(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

func (h *NutritionHandler) FoodItem(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	item, err := h.nutrition.FoodItem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(c, item, item.Status)
}

func (h *NutritionHandler) CreateFoodItem(c echo.Context) error {
	var req foodItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.nutrition.CreateFoodItem(ctx, req.input()); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Food item created", func() (*domain.Page[domain.FoodItem], error) {
		return h.nutrition.FoodItems(ctx, q)
	})
}

func (h *NutritionHandler) UpdateFoodItem(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req foodItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.nutrition.UpdateFoodItem(ctx, id, req.input()); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Food item updated", func() (*domain.Page[domain.FoodItem], error) {
		return h.nutrition.FoodItems(ctx, q)
	})
}

func (h *NutritionHandler) DeleteFoodItem(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.nutrition.DeleteFoodItem(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Food item deleted", func() (*domain.Page[domain.FoodItem], error) {
		return h.nutrition.FoodItems(ctx, q)
	})
}

// ── Food types ───────────────────────────────────────────────────────────────

// FoodTypes godoc
// @Summary  List food types
// @Tags     nutrition
// @Produce  json
// @Success  200  {object}  sliceView[domain.FoodType]
// @Router   /admin/food-types [get]
func (h *NutritionHandler) FoodTypes(c echo.Context) error {
	items, err := h.nutrition.FoodTypes(c.Request().Context())
	return renderSlice(c, items, err)
}

func (h *NutritionHandler) CreateFoodType(c echo.Context) error {
	var req foodTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.nutrition.CreateFoodType(ctx, ports.FoodTypeInput{Name: req.Name}); err != nil {
		return err
	}
	return mutatedSlice(c, "Food type created", func() ([]domain.FoodType, error) {
		return h.nutrition.FoodTypes(ctx)
	})
}

func (h *NutritionHandler) UpdateFoodType(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req foodTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.nutrition.UpdateFoodType(ctx, id, ports.FoodTypeInput{Name: req.Name}); err != nil {
		return err
	}
	return mutatedSlice(c, "Food type updated", func() ([]domain.FoodType, error) {
		return h.nutrition.FoodTypes(ctx)
	})
}

func (h *NutritionHandler) DeleteFoodType(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.nutrition.DeleteFoodType(ctx, id); err != nil {
		return err
	}
	return mutatedSlice(c, "Food type deleted", func() ([]domain.FoodType, error) {
		return h.nutrition.FoodTypes(ctx)
	})
}

// ── Nutrients ────────────────────────────────────────────────────────────────

// Nutrients godoc
// @Summary  List tracked nutrients
// @Tags     nutrition
// @Produce  json
// @Success  200  {object}  sliceView[domain.Nutrient]
// @Router   /admin/nutrients [get]
func (h *NutritionHandler) Nutrients(c echo.Context) error {
	items, err := h.nutrition.Nutrients(c.Request().Context())
	return renderSlice(c, items, err)
}

func (h *NutritionHandler) Nutrient(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	nutrient, err := h.nutrition.Nutrient(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailView[domain.Nutrient]{Record: nutrient})
}

func (h *NutritionHandler) CreateNutrient(c echo.Context) error {
	var req nutrientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.nutrition.CreateNutrient(ctx, ports.NutrientInput{Name: req.Name, Unit: req.Unit}); err != nil {
		return err
	}
	return mutatedSlice(c, "Nutrient created", func() ([]domain.Nutrient, error) {
		return h.nutrition.Nutrients(ctx)
	})
}

func (h *NutritionHandler) UpdateNutrient(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req nutrientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.nutrition.UpdateNutrient(ctx, id, ports.NutrientInput{Name: req.Name, Unit: req.Unit}); err != nil {
		return err
	}
	return mutatedSlice(c, "Nutrient updated", func() ([]domain.Nutrient, error) {
		return h.nutrition.Nutrients(ctx)
	})
}

func (h *NutritionHandler) DeleteNutrient(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.nutrition.DeleteNutrient(ctx, id); err != nil {
		return err
	}
	return mutatedSlice(c, "Nutrient deleted", func() ([]domain.Nutrient, error) {
		return h.nutrition.Nutrients(ctx)
	})
}
