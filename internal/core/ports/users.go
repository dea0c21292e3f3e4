package ports

import (
	"context"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// CreateUserInput carries a new platform account. Role and status are the
// raw enumeration strings the backend expects.
type CreateUserInput struct {
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// UpdateUserInput carries a partial update; empty fields are omitted from
// the upstream payload.
type UpdateUserInput struct {
	Fullname string `json:"fullname,omitempty"`
	Role     string `json:"role,omitempty"`
	Status   string `json:"status,omitempty"`
}

// UserClient maps user management operations to HTTP calls.
type UserClient interface {
	List(ctx context.Context, q ListQuery) (*domain.Page[domain.AdminUser], error)
	Get(ctx context.Context, id int64) (*domain.AdminUserDetail, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.AdminUser, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.AdminUser, error)
	ChangeStatus(ctx context.Context, id int64, status string) (*domain.AdminUser, error)
	Delete(ctx context.Context, id int64) error
}
