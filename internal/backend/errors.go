package backend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// UpstreamError is a failed upstream call. Kind is always one of the domain
// sentinels so callers can match with errors.Is; the remaining fields feed
// the user-visible message.
type UpstreamError struct {
	Kind       error
	StatusCode int
	Message    string // backend envelope "message" field
	Detail     string // backend envelope "error" field
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v (HTTP %d)", e.Kind, e.StatusCode)
	}
	return e.Kind.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Kind
}

// UserMessage derives the single toast string for a failure, in priority
// order: backend message field, backend error field, HTTP status line,
// generic fallback.
func UserMessage(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		switch {
		case ue.Message != "":
			return ue.Message
		case ue.Detail != "":
			return ue.Detail
		case ue.StatusCode != 0:
			return fmt.Sprintf("%d %s", ue.StatusCode, http.StatusText(ue.StatusCode))
		}
	}
	switch {
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return "Request timed out. Please try again."
	case errors.Is(err, domain.ErrUpstreamUnreachable):
		return "Cannot reach the server. Please check your connection."
	case errors.Is(err, domain.ErrMalformedResponse):
		return "The server returned an unexpected response."
	case errors.Is(err, domain.ErrSessionExpired):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, domain.ErrPermissionDenied):
		return "You do not have permission to perform this action."
	case err != nil:
		return "Something went wrong. Please try again."
	}
	return ""
}
