package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/backend"
	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

func TestResolveErrorMapsTheTaxonomy(t *testing.T) {
	tests := []struct {
		err          error
		wantCode     int
		wantRedirect string
	}{
		{fmt.Errorf("%w: email is required", domain.ErrValidation), http.StatusBadRequest, ""},
		{domain.ErrConfirmationRequired, http.StatusBadRequest, ""},
		{&backend.UpstreamError{Kind: domain.ErrInvalidCredentials, StatusCode: 401}, http.StatusUnauthorized, ""},
		{&backend.UpstreamError{Kind: domain.ErrSessionExpired, StatusCode: 401}, http.StatusUnauthorized, "/login"},
		{domain.ErrNotPermitted, http.StatusForbidden, ""},
		{&backend.UpstreamError{Kind: domain.ErrPermissionDenied, StatusCode: 403}, http.StatusForbidden, ""},
		{&backend.UpstreamError{Kind: domain.ErrRequestRejected, StatusCode: 409}, http.StatusBadRequest, ""},
		{&backend.UpstreamError{Kind: domain.ErrMalformedResponse}, http.StatusBadGateway, ""},
		{&backend.UpstreamError{Kind: domain.ErrUpstreamServer, StatusCode: 500}, http.StatusBadGateway, ""},
		{&backend.UpstreamError{Kind: domain.ErrUpstreamUnreachable}, http.StatusServiceUnavailable, ""},
		{&backend.UpstreamError{Kind: domain.ErrUpstreamTimeout}, http.StatusGatewayTimeout, ""},
		{fmt.Errorf("unexpected"), http.StatusInternalServerError, ""},
	}

	e := echo.New()
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		code, resp := resolveError(tt.err, zerolog.Nop(), c)
		if code != tt.wantCode {
			t.Errorf("%v: code = %d, want %d", tt.err, code, tt.wantCode)
		}
		if resp.Redirect != tt.wantRedirect {
			t.Errorf("%v: redirect = %q, want %q", tt.err, resp.Redirect, tt.wantRedirect)
		}
		if resp.Error == "" {
			t.Errorf("%v: empty error message", tt.err)
		}
	}
}

func TestErrorHandlerRendersJSONEnvelope(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(&backend.UpstreamError{Kind: domain.ErrUpstreamServer, StatusCode: 500, Message: "boom"}, c)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if body := rec.Body.String(); body == "" {
		t.Error("empty response body")
	}
}

func TestErrorHandlerSkipsCommittedResponses(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.NoContent(http.StatusOK)

	handler(domain.ErrValidation, c)
	if rec.Code != http.StatusOK {
		t.Errorf("status rewritten to %d after commit", rec.Code)
	}
}
