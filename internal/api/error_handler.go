package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/backend"
	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all gateway errors. The
// error string doubles as the toast text; Redirect is set only when the
// session has expired and the client must return to the login entry point.
type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the error taxonomy to deterministic HTTP status codes.
//   - Logs unexpected errors internally without leaking details.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusBadRequest, errorResponse{Error: "destructive action requires confirmation"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid email or password"}
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, errorResponse{Error: backend.UserMessage(err), Redirect: "/login"}
	case errors.Is(err, domain.ErrNotPermitted):
		return http.StatusForbidden, errorResponse{Error: "only administrators may access this dashboard"}
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, errorResponse{Error: backend.UserMessage(err)}
	case errors.Is(err, domain.ErrRequestRejected):
		return http.StatusBadRequest, errorResponse{Error: backend.UserMessage(err)}
	case errors.Is(err, domain.ErrUpstreamServer), errors.Is(err, domain.ErrMalformedResponse):
		return http.StatusBadGateway, errorResponse{Error: backend.UserMessage(err)}
	case errors.Is(err, domain.ErrUpstreamUnreachable):
		return http.StatusServiceUnavailable, errorResponse{Error: backend.UserMessage(err)}
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, errorResponse{Error: backend.UserMessage(err)}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
