package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// The three reference catalogs (dietary restrictions, exercise types,
// medical specialties) share the same table shape and almost the same
// lifecycle, so their handlers live together.

type catalogItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r catalogItemRequest) input() ports.CatalogItemInput {
	return ports.CatalogItemInput{Name: r.Name, Description: r.Description, Status: r.Status}
}

type exerciseTypeRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	CaloriesPerHour float64 `json:"caloriesPerHour" validate:"omitempty,gt=0"`
	Status          string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// ── Dietary restrictions ─────────────────────────────────────────────────────

type DietaryRestrictionsHandler struct {
	catalog ports.DietaryRestrictionClient
	log     zerolog.Logger
}

func NewDietaryRestrictionsHandler(catalog ports.DietaryRestrictionClient, log zerolog.Logger) *DietaryRestrictionsHandler {
	return &DietaryRestrictionsHandler{catalog: catalog, log: log}
}

// List godoc
// @Summary  List dietary restrictions
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  listView[domain.DietaryRestriction]
// @Router   /admin/dietary-restrictions [get]
func (h *DietaryRestrictionsHandler) List(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.catalog.List(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

func (h *DietaryRestrictionsHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	item, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(c, item, item.Status)
}

func (h *DietaryRestrictionsHandler) Create(c echo.Context) error {
	var req catalogItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.catalog.Create(ctx, req.input()); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Dietary restriction created", func() (*domain.Page[domain.DietaryRestriction], error) {
		return h.catalog.List(ctx, q)
	})
}

func (h *DietaryRestrictionsHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req catalogItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.catalog.Update(ctx, id, req.input()); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Dietary restriction updated", func() (*domain.Page[domain.DietaryRestriction], error) {
		return h.catalog.List(ctx, q)
	})
}

func (h *DietaryRestrictionsHandler) ChangeStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	status, err := statusParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.catalog.ChangeStatus(ctx, id, status); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Dietary restriction status updated", func() (*domain.Page[domain.DietaryRestriction], error) {
		return h.catalog.List(ctx, q)
	})
}

func (h *DietaryRestrictionsHandler) Delete(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.catalog.Delete(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Dietary restriction deleted", func() (*domain.Page[domain.DietaryRestriction], error) {
		return h.catalog.List(ctx, q)
	})
}

// ── Exercise types ───────────────────────────────────────────────────────────

type ExerciseTypesHandler struct {
	catalog ports.ExerciseTypeClient
	log     zerolog.Logger
}

func NewExerciseTypesHandler(catalog ports.ExerciseTypeClient, log zerolog.Logger) *ExerciseTypesHandler {
	return &ExerciseTypesHandler{catalog: catalog, log: log}
}

// List godoc
// @Summary  List exercise types
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  listView[domain.ExerciseType]
// @Router   /admin/exercise-types [get]
func (h *ExerciseTypesHandler) List(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.catalog.List(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

func (h *ExerciseTypesHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	item, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(c, item, item.Status)
}

func (h *ExerciseTypesHandler) Create(c echo.Context) error {
	var req exerciseTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.catalog.Create(ctx, ports.ExerciseTypeInput{
		Name:            req.Name,
		Description:     req.Description,
		CaloriesPerHour: req.CaloriesPerHour,
		Status:          req.Status,
	}); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Exercise type created", func() (*domain.Page[domain.ExerciseType], error) {
		return h.catalog.List(ctx, q)
	})
}

func (h *ExerciseTypesHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req exerciseTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.catalog.Update(ctx, id, ports.ExerciseTypeInput{
		Name:            req.Name,
		Description:     req.Description,
		CaloriesPerHour: req.CaloriesPerHour,
		Status:          req.Status,
	}); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Exercise type updated", func() (*domain.Page[domain.ExerciseType], error) {
		return h.catalog.List(ctx, q)
	})
}

// Restore godoc
// @Summary  Restore a soft-deleted exercise type
// @Tags     catalog
// @Produce  json
// @Param    id   path      int  true  "Exercise type id"
// @Success  200  {object}  listView[domain.ExerciseType]
// @Router   /admin/exercise-types/{id}/restore [patch]
func (h *ExerciseTypesHandler) Restore(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.catalog.Restore(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Exercise type restored", func() (*domain.Page[domain.ExerciseType], error) {
		return h.catalog.List(ctx, q)
	})
}

func (h *ExerciseTypesHandler) Delete(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.catalog.Delete(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Exercise type deleted", func() (*domain.Page[domain.ExerciseType], error) {
		return h.catalog.List(ctx, q)
	})
}

// ── Medical specialties ──────────────────────────────────────────────────────

type MedicalSpecialtiesHandler struct {
	catalog ports.MedicalSpecialtyClient
	log     zerolog.Logger
}

func NewMedicalSpecialtiesHandler(catalog ports.MedicalSpecialtyClient, log zerolog.Logger) *MedicalSpecialtiesHandler {
	return &MedicalSpecialtiesHandler{catalog: catalog, log: log}
}

// List godoc
// @Summary  List medical specialties
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  listView[domain.MedicalSpecialty]
// @Router   /admin/medical-specialties [get]
func (h *MedicalSpecialtiesHandler) List(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.catalog.List(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

func (h *MedicalSpecialtiesHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	item, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(c, item, item.Status)
}

func (h *MedicalSpecialtiesHandler) Create(c echo.Context) error {
	var req catalogItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.catalog.Create(ctx, req.input()); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Medical specialty created", func() (*domain.Page[domain.MedicalSpecialty], error) {
		return h.catalog.List(ctx, q)
	})
}

func (h *MedicalSpecialtiesHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req catalogItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.catalog.Update(ctx, id, req.input()); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Medical specialty updated", func() (*domain.Page[domain.MedicalSpecialty], error) {
		return h.catalog.List(ctx, q)
	})
}

func (h *MedicalSpecialtiesHandler) ChangeStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	status, err := statusParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.catalog.ChangeStatus(ctx, id, status); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Medical specialty status updated", func() (*domain.Page[domain.MedicalSpecialty], error) {
		return h.catalog.List(ctx, q)
	})
}

func (h *MedicalSpecialtiesHandler) Delete(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.catalog.Delete(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Medical specialty deleted", func() (*domain.Page[domain.MedicalSpecialty], error) {
		return h.catalog.List(ctx, q)
	})
}
