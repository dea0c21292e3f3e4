package domain

import "errors"

// Sentinel errors for every failure class the gateway distinguishes.
// Resource clients and the HTTP client wrap these; handlers and the central
// error handler match on them with errors.Is.
var (
	// ErrValidation marks input rejected before any upstream call is made.
	ErrValidation = errors.New("invalid input")

	// ErrConfirmationRequired marks a destructive action submitted without
	// the explicit confirmation step.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrInvalidCredentials marks a login rejected by the upstream backend.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotPermitted marks a successful authentication whose account role
	// is not ADMIN. No session is established.
	ErrNotPermitted = errors.New("administrator role required")

	// ErrSessionExpired marks a 401 on an authenticated upstream call. The
	// session has already been cleared when this error is observed.
	ErrSessionExpired = errors.New("session expired")

	// ErrPermissionDenied marks a 403. The session is preserved.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUpstreamServer marks a 5xx from the backend.
	ErrUpstreamServer = errors.New("upstream server error")

	// ErrRequestRejected marks any other 4xx from the backend.
	ErrRequestRejected = errors.New("request rejected by upstream")

	// ErrUpstreamUnreachable marks a transport failure with no response.
	ErrUpstreamUnreachable = errors.New("cannot reach server")

	// ErrUpstreamTimeout marks a request that exceeded the fixed timeout.
	ErrUpstreamTimeout = errors.New("upstream request timed out")

	// ErrMalformedResponse marks a 2xx whose body does not match the
	// expected envelope shape. List views degrade to an empty page.
	ErrMalformedResponse = errors.New("malformed upstream response")
)
