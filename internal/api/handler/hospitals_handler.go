package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// HospitalsHandler drives the hospitals directory section.
type HospitalsHandler struct {
	hospitals ports.HospitalClient
	log       zerolog.Logger
}

func NewHospitalsHandler(hospitals ports.HospitalClient, log zerolog.Logger) *HospitalsHandler {
	return &HospitalsHandler{hospitals: hospitals, log: log}
}

type hospitalRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Website     string `json:"website" validate:"omitempty,url"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r hospitalRequest) input() ports.HospitalInput {
	return ports.HospitalInput{
		Name:        r.Name,
		Address:     r.Address,
		City:        r.City,
		Phone:       r.Phone,
		Email:       r.Email,
		Website:     r.Website,
		Description: r.Description,
		Status:      r.Status,
	}
}

// List godoc
// @Summary  List partner hospitals
// @Tags     hospitals
// @Produce  json
// @Param    page    query     int     false  "Zero-based page index"
// @Param    search  query     string  false  "Free-text filter"
// @Success  200     {object}  listView[domain.Hospital]
// @Router   /admin/hospitals [get]
func (h *HospitalsHandler) List(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.hospitals.List(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

// Get godoc
// @Summary  Fetch one hospital
// @Tags     hospitals
// @Produce  json
// @Param    id   path      int  true  "Hospital id"
// @Success  200  {object}  detailView[domain.Hospital]
// @Router   /admin/hospitals/{id} [get]
func (h *HospitalsHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	hospital, err := h.hospitals.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(c, hospital, hospital.Status)
}

// Create godoc
// @Summary  Add a hospital to the directory
// @Tags     hospitals
// @Accept   json
// @Produce  json
// @Param    hospital  body      hospitalRequest  true  "New hospital"
// @Success  200       {object}  listView[domain.Hospital]
// @Router   /admin/hospitals [post]
func (h *HospitalsHandler) Create(c echo.Context) error {
	var req hospitalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.hospitals.Create(ctx, req.input()); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Hospital created", func() (*domain.Page[domain.Hospital], error) {
		return h.hospitals.List(ctx, q)
	})
}

// Update godoc
// @Summary  Update a hospital
// @Tags     hospitals
// @Accept   json
// @Produce  json
// @Param    id        path      int              true  "Hospital id"
// @Param    hospital  body      hospitalRequest  true  "Changed fields"
// @Success  200       {object}  listView[domain.Hospital]
// @Router   /admin/hospitals/{id} [put]
func (h *HospitalsHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req hospitalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.hospitals.Update(ctx, id, req.input()); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Hospital updated", func() (*domain.Page[domain.Hospital], error) {
		return h.hospitals.List(ctx, q)
	})
}

// Delete godoc
// @Summary  Remove a hospital from the directory
// @Tags     hospitals
// @Produce  json
// @Param    id       path      int     true  "Hospital id"
// @Param    confirm  query     string  true  "Must be 'true'"
// @Success  200      {object}  listView[domain.Hospital]
// @Router   /admin/hospitals/{id} [delete]
func (h *HospitalsHandler) Delete(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.hospitals.Delete(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Hospital deleted", func() (*domain.Page[domain.Hospital], error) {
		return h.hospitals.List(ctx, q)
	})
}
