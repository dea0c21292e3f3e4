package ports

import (
	"context"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// SessionStore is the single source of truth for "who is logged in". It is
// injected into the HTTP layer and the route guard so tests can substitute a
// fake instead of reaching for ambient global state.
type SessionStore interface {
	// Login authenticates against the backend and establishes the session.
	// Fails with domain.ErrInvalidCredentials, domain.ErrNotPermitted (role
	// other than ADMIN; nothing is written), or a transport error.
	Login(ctx context.Context, email, password string) error

	// Logout clears in-memory and persisted state unconditionally.
	// Idempotent.
	Logout(ctx context.Context)

	// CheckAuth hydrates the session from the vault without calling the
	// backend. It never fails: an unreadable or non-ADMIN record leaves the
	// session unauthenticated and clears the vault.
	CheckAuth(ctx context.Context) bool

	// Expire force-clears the session. Called by the HTTP client when an
	// authenticated upstream request comes back 401.
	Expire(ctx context.Context)

	// Current returns a snapshot of the session state.
	Current() domain.Session

	// Token returns the bearer token, or "" when unauthenticated.
	Token() string
}

// SessionVault persists the session outside the process so it survives
// restarts. The token and the serialized account live under two fixed keys
// that are always written and cleared together.
type SessionVault interface {
	Store(ctx context.Context, token string, account []byte) error
	// Load returns ("", nil, nil) when no session is persisted.
	Load(ctx context.Context) (token string, account []byte, err error)
	Clear(ctx context.Context) error
}
