package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

const usersPath = "/api/admin/users"

// Users maps user management operations to single HTTP calls.
type Users struct {
	c *Client
}

func NewUsers(c *Client) *Users {
	return &Users{c: c}
}

func (u *Users) List(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.AdminUser], error) {
	env, err := u.c.do(ctx, http.MethodGet, usersPath, q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.AdminUser](env)
}

func (u *Users) Get(ctx context.Context, id int64) (*domain.AdminUserDetail, error) {
	env, err := u.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", usersPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.AdminUserDetail](env)
}

func (u *Users) Create(ctx context.Context, in ports.CreateUserInput) (*domain.AdminUser, error) {
	env, err := u.c.do(ctx, http.MethodPost, usersPath, nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.AdminUser](env)
}

func (u *Users) Update(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.AdminUser, error) {
	env, err := u.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", usersPath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.AdminUser](env)
}

func (u *Users) ChangeStatus(ctx context.Context, id int64, status string) (*domain.AdminUser, error) {
	env, err := u.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/status", usersPath, id), nil, statusBody{Status: status})
	if err != nil {
		return nil, err
	}
	return decodeData[domain.AdminUser](env)
}

func (u *Users) Delete(ctx context.Context, id int64) error {
	_, err := u.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", usersPath, id), nil, nil)
	return err
}

// statusBody is the shared {status} patch payload used by the resources
// whose status changes travel in the request body.
type statusBody struct {
	Status string `json:"status"`
}
