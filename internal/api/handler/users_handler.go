package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// UsersHandler drives the user management section.
type UsersHandler struct {
	users ports.UserClient
	log   zerolog.Logger
}

func NewUsersHandler(users ports.UserClient, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{users: users, log: log}
}

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Fullname string `json:"fullname" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=ADMIN DOCTOR USER"`
	Status   string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE BANNED"`
}

type updateUserRequest struct {
	Fullname string `json:"fullname"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN DOCTOR USER"`
	Status   string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE BANNED"`
}

// List godoc
// @Summary  List platform users
// @Tags     users
// @Produce  json
// @Param    page    query     int     false  "Zero-based page index"
// @Param    search  query     string  false  "Free-text filter"
// @Param    role    query     string  false  "Role filter"
// @Param    status  query     string  false  "Status filter"
// @Success  200     {object}  listView[domain.AdminUser]
// @Router   /admin/users [get]
func (h *UsersHandler) List(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.users.List(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

// Get godoc
// @Summary  Fetch one user with health profile and recent transactions
// @Tags     users
// @Produce  json
// @Param    id   path      int  true  "User id"
// @Success  200  {object}  detailView[domain.AdminUserDetail]
// @Router   /admin/users/{id} [get]
func (h *UsersHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	detail, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(c, detail, detail.Status)
}

// Create godoc
// @Summary  Create a platform user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    user  body      createUserRequest  true  "New user"
// @Success  200   {object}  listView[domain.AdminUser]
// @Router   /admin/users [post]
func (h *UsersHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.users.Create(ctx, ports.CreateUserInput{
		Email:    req.Email,
		Fullname: req.Fullname,
		Password: req.Password,
		Role:     req.Role,
		Status:   req.Status,
	}); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "User created", func() (*domain.Page[domain.AdminUser], error) {
		return h.users.List(ctx, q)
	})
}

// Update godoc
// @Summary  Update a platform user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    id    path      int                true  "User id"
// @Param    user  body      updateUserRequest  true  "Changed fields"
// @Success  200   {object}  listView[domain.AdminUser]
// @Router   /admin/users/{id} [put]
func (h *UsersHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.users.Update(ctx, id, ports.UpdateUserInput{
		Fullname: req.Fullname,
		Role:     req.Role,
		Status:   req.Status,
	}); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "User updated", func() (*domain.Page[domain.AdminUser], error) {
		return h.users.List(ctx, q)
	})
}

// ChangeStatus godoc
// @Summary  Change a user's status
// @Tags     users
// @Produce  json
// @Param    id      path      int     true  "User id"
// @Param    status  query     string  true  "Target status"
// @Success  200     {object}  listView[domain.AdminUser]
// @Router   /admin/users/{id}/status [patch]
func (h *UsersHandler) ChangeStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	status, err := statusParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.users.ChangeStatus(ctx, id, status); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "User status updated", func() (*domain.Page[domain.AdminUser], error) {
		return h.users.List(ctx, q)
	})
}

// Delete godoc
// @Summary  Delete a platform user
// @Tags     users
// @Produce  json
// @Param    id       path      int     true  "User id"
// @Param    confirm  query     string  true  "Must be 'true'"
// @Success  200      {object}  listView[domain.AdminUser]
// @Router   /admin/users/{id} [delete]
func (h *UsersHandler) Delete(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.users.Delete(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "User deleted", func() (*domain.Page[domain.AdminUser], error) {
		return h.users.List(ctx, q)
	})
}
