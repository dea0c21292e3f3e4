// Package session owns the gateway's only mutable shared state: the
// administrator session. The in-memory copy and the persisted vault copy are
// kept consistent by construction — the vault is written before the
// in-memory authenticated flag flips, and both are cleared together.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// Store implements ports.SessionStore. Safe for concurrent use: echo serves
// requests from many goroutines and all of them share this one session.
type Store struct {
	mu      sync.RWMutex
	token   string
	account *domain.Account
	sid     string
	authed  bool

	auth  ports.AuthClient
	vault ports.SessionVault
	log   zerolog.Logger
}

func NewStore(auth ports.AuthClient, vault ports.SessionVault, log zerolog.Logger) *Store {
	return &Store{auth: auth, vault: vault, log: log}
}

// Login authenticates against the backend and establishes the session. On a
// non-ADMIN role nothing is written anywhere: the session is never partially
// populated. The vault write happens before the in-memory flag flips so a
// crash between the two leaves a recoverable, not a phantom, session.
func (s *Store) Login(ctx context.Context, email, password string) error {
	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if !res.Account.IsAdmin() {
		s.log.Warn().Str("email", email).Str("role", res.Account.Role).
			Msg("login rejected: role is not ADMIN")
		return domain.ErrNotPermitted
	}

	raw, err := json.Marshal(res.Account)
	if err != nil {
		return fmt.Errorf("serialize account: %w", err)
	}
	if err := s.vault.Store(ctx, res.Token, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	account := res.Account
	s.mu.Lock()
	s.token = res.Token
	s.account = &account
	s.sid = uuid.NewString()
	s.authed = true
	s.mu.Unlock()

	s.log.Info().Str("session_id", s.sid).Str("email", account.Email).Msg("administrator session established")
	return nil
}

// Logout clears in-memory and persisted state unconditionally. Idempotent.
func (s *Store) Logout(ctx context.Context) {
	s.clear(ctx)
}

// Expire is Logout under another name, kept separate so the HTTP client's
// 401 handling reads as what it is.
func (s *Store) Expire(ctx context.Context) {
	s.clear(ctx)
}

func (s *Store) clear(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.account = nil
	s.sid = ""
	s.authed = false
	s.mu.Unlock()

	if err := s.vault.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("session vault clear failed")
	}
}

// CheckAuth hydrates the session from the vault without calling the
// backend. It never fails past this boundary: an unreadable record, a
// non-ADMIN role, or an expired token clears the vault and reports false.
func (s *Store) CheckAuth(ctx context.Context) bool {
	s.mu.RLock()
	if s.authed {
		s.mu.RUnlock()
		return true
	}
	s.mu.RUnlock()

	token, raw, err := s.vault.Load(ctx)
	if err != nil {
		// Storage being unreachable is not grounds to wipe it.
		s.log.Warn().Err(err).Msg("session vault unavailable")
		return false
	}
	if token == "" || len(raw) == 0 {
		return false
	}

	var account domain.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		s.log.Warn().Err(err).Msg("persisted account record unreadable, clearing session")
		s.clear(ctx)
		return false
	}
	if !account.IsAdmin() {
		s.log.Warn().Str("role", account.Role).Msg("persisted session is not ADMIN, clearing")
		s.clear(ctx)
		return false
	}
	if tokenExpired(token) {
		s.log.Info().Msg("persisted token expired, clearing session")
		s.clear(ctx)
		return false
	}

	s.mu.Lock()
	s.token = token
	s.account = &account
	if s.sid == "" {
		s.sid = uuid.NewString()
	}
	s.authed = true
	s.mu.Unlock()
	return true
}

// Current returns a snapshot of the session state.
func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := domain.Session{ID: s.sid, Token: s.token, Authenticated: s.authed}
	if s.account != nil {
		account := *s.account
		snap.Account = &account
	}
	return snap
}

// Token returns the bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// tokenExpired inspects the token's exp claim without verifying the
// signature — the gateway holds no signing key; the backend remains the
// authority and will still 401 a forged token. Tokens without a parseable
// exp claim are given the benefit of the doubt.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
