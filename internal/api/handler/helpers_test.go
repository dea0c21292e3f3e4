package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// newContext builds an echo context wired with the real validator so request
// validation behaves exactly as in production.
func newContext(t *testing.T, method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func onePage[T any](items []T, total int64) *domain.Page[T] {
	return &domain.Page[T]{
		Content: items,
		Pageable: domain.Pageable{
			PageNumber:    0,
			PageSize:      pageSize,
			TotalElements: total,
			TotalPages:    1,
			First:         true,
			Last:          true,
		},
	}
}
