package ports

import (
	"context"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// LoginResult carries the bearer token and the normalized account record
// produced by a successful login call.
type LoginResult struct {
	Token   string
	Account domain.Account
}

// AuthClient maps the authentication endpoints to HTTP calls.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CurrentAccount(ctx context.Context) (*domain.Account, error)
}
