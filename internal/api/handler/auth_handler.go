package handler

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/api/metrics"
	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// AuthHandler owns the login, logout and session introspection endpoints.
type AuthHandler struct {
	store ports.SessionStore
	log   zerolog.Logger
}

func NewAuthHandler(store ports.SessionStore, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{store: store, log: log}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginResponse struct {
	Account *domain.Account `json:"account"`
	Toast   *toast          `json:"toast"`
}

// Login godoc
// @Summary      Authenticate an administrator
// @Description  Validates credentials against the LanhCare backend and establishes the gateway session. Only ADMIN accounts are accepted.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      loginRequest  true  "Administrator credentials"
// @Success      200          {object}  loginResponse
// @Failure      400          {object}  map[string]string
// @Failure      401          {object}  map[string]string
// @Failure      403          {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.store.Login(c.Request().Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrNotPermitted):
			metrics.LoginsTotal.WithLabelValues("not_permitted").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	snap := h.store.Current()
	return c.JSON(http.StatusOK, loginResponse{
		Account: snap.Account,
		Toast:   successToast("Welcome back"),
	})
}

// Logout godoc
// @Summary  End the administrator session
// @Tags     auth
// @Produce  json
// @Success  200  {object}  map[string]any
// @Router   /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.store.Logout(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{
		"toast":    successToast("Signed out"),
		"redirect": "/login",
	})
}

// sessionView is the introspection payload. The raw token never leaves the
// gateway; only a masked prefix and the unverified claims are exposed.
type sessionView struct {
	Authenticated bool            `json:"authenticated"`
	SessionID     string          `json:"sessionId,omitempty"`
	Account       *domain.Account `json:"account,omitempty"`
	TokenPrefix   string          `json:"tokenPrefix,omitempty"`
	Claims        jwt.MapClaims   `json:"claims,omitempty"`
}

// Session godoc
// @Summary      Inspect the current session
// @Description  Returns the session snapshot with a masked token prefix and the unverified JWT claims, for operator debugging.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionView
// @Router       /admin/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	snap := h.store.Current()
	view := sessionView{
		Authenticated: snap.Authenticated,
		SessionID:     snap.ID,
		Account:       snap.Account,
	}
	if snap.Token != "" {
		view.TokenPrefix = maskToken(snap.Token)
		claims := jwt.MapClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(snap.Token, claims); err == nil {
			view.Claims = claims
		}
	}
	return c.JSON(http.StatusOK, view)
}

func maskToken(token string) string {
	const visible = 8
	if len(token) <= visible {
		return "********"
	}
	return token[:visible] + "..."
}
