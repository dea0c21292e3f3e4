package backend

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// Auth maps the authentication endpoints. Unlike the admin resources these
// respond with a bare JSON document, not the envelope.
type Auth struct {
	c *Client
}

func NewAuth(c *Client) *Auth {
	return &Auth{c: c}
}

// loginResponse mirrors the auth endpoint payload. The token and the user
// id each arrive under one of two field names depending on backend version.
// Compatibility shim for API drift, not a permanent contract.
type loginResponse struct {
	AccessToken string `json:"accessToken"`
	Token       string `json:"token"`
	UserID      int64  `json:"userId"`
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Fullname    string `json:"fullname"`
	Role        string `json:"role"`
	TokenType   string `json:"tokenType"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend. 400/401 responses on this
// endpoint mean bad credentials, never an expired session.
func (a *Auth) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var resp loginResponse
	err := a.c.doInto(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var ue *UpstreamError
		if errors.As(err, &ue) &&
			(ue.StatusCode == http.StatusBadRequest || ue.StatusCode == http.StatusUnauthorized) {
			return nil, &UpstreamError{
				Kind:       domain.ErrInvalidCredentials,
				StatusCode: ue.StatusCode,
				Message:    ue.Message,
				Detail:     ue.Detail,
			}
		}
		return nil, err
	}

	token := strings.TrimSpace(resp.AccessToken)
	if token == "" {
		token = strings.TrimSpace(resp.Token)
	}
	if token == "" {
		return nil, &UpstreamError{Kind: domain.ErrMalformedResponse, Message: "login response carried no token"}
	}

	id := resp.UserID
	if id == 0 {
		id = resp.ID
	}

	return &ports.LoginResult{
		Token: token,
		Account: domain.Account{
			ID:       id,
			Email:    resp.Email,
			Fullname: resp.Fullname,
			Role:     resp.Role,
			// The login payload carries no status; accounts that can log in
			// are active by definition.
			Status: "ACTIVE",
		},
	}, nil
}

// CurrentAccount fetches the authenticated account record.
func (a *Auth) CurrentAccount(ctx context.Context) (*domain.Account, error) {
	var account domain.Account
	if err := a.c.doInto(ctx, http.MethodGet, "/api/accounts/me", nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
