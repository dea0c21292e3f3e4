package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// ServicePlansHandler drives the subscription tier section.
type ServicePlansHandler struct {
	plans ports.ServicePlanClient
	log   zerolog.Logger
}

func NewServicePlansHandler(plans ports.ServicePlanClient, log zerolog.Logger) *ServicePlansHandler {
	return &ServicePlansHandler{plans: plans, log: log}
}

type servicePlanRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	DurationDays int     `json:"durationDays" validate:"required,gt=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r servicePlanRequest) input() ports.ServicePlanInput {
	return ports.ServicePlanInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		DurationDays: r.DurationDays,
		Status:       r.Status,
	}
}

// List godoc
// @Summary  List service plans
// @Tags     service-plans
// @Produce  json
// @Param    page    query     int     false  "Zero-based page index"
// @Param    status  query     string  false  "Status filter"
// @Success  200     {object}  listView[domain.ServicePlan]
// @Router   /admin/service-plans [get]
func (h *ServicePlansHandler) List(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.plans.List(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

// Get godoc
// @Summary  Fetch one service plan
// @Tags     service-plans
// @Produce  json
// @Param    id   path      int  true  "Plan id"
// @Success  200  {object}  detailView[domain.ServicePlan]
// @Router   /admin/service-plans/{id} [get]
func (h *ServicePlansHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	plan, err := h.plans.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(c, plan, plan.Status)
}

// Create godoc
// @Summary  Create a service plan
// @Tags     service-plans
// @Accept   json
// @Produce  json
// @Param    plan  body      servicePlanRequest  true  "New plan"
// @Success  200   {object}  listView[domain.ServicePlan]
// @Router   /admin/service-plans [post]
func (h *ServicePlansHandler) Create(c echo.Context) error {
	var req servicePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.plans.Create(ctx, req.input()); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Service plan created", func() (*domain.Page[domain.ServicePlan], error) {
		return h.plans.List(ctx, q)
	})
}

// Update godoc
// @Summary  Update a service plan
// @Tags     service-plans
// @Accept   json
// @Produce  json
// @Param    id    path      int                 true  "Plan id"
// @Param    plan  body      servicePlanRequest  true  "Changed fields"
// @Success  200   {object}  listView[domain.ServicePlan]
// @Router   /admin/service-plans/{id} [put]
func (h *ServicePlansHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req servicePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.plans.Update(ctx, id, req.input()); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Service plan updated", func() (*domain.Page[domain.ServicePlan], error) {
		return h.plans.List(ctx, q)
	})
}

// ChangeStatus godoc
// @Summary  Activate or retire a service plan
// @Tags     service-plans
// @Produce  json
// @Param    id      path      int     true  "Plan id"
// @Param    status  query     string  true  "Target status"
// @Success  200     {object}  listView[domain.ServicePlan]
// @Router   /admin/service-plans/{id}/status [patch]
func (h *ServicePlansHandler) ChangeStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	status, err := statusParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.plans.ChangeStatus(ctx, id, status); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Service plan status updated", func() (*domain.Page[domain.ServicePlan], error) {
		return h.plans.List(ctx, q)
	})
}

// Delete godoc
// @Summary  Delete a service plan
// @Tags     service-plans
// @Produce  json
// @Param    id       path      int     true  "Plan id"
// @Param    confirm  query     string  true  "Must be 'true'"
// @Success  200      {object}  listView[domain.ServicePlan]
// @Router   /admin/service-plans/{id} [delete]
func (h *ServicePlansHandler) Delete(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.plans.Delete(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Service plan deleted", func() (*domain.Page[domain.ServicePlan], error) {
		return h.plans.List(ctx, q)
	})
}
