// Package backend implements the outbound side of the gateway: a single
// configured HTTP client through which every LanhCare API call flows, plus
// one thin resource client per backend resource.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/api/metrics"
	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// DefaultTimeout bounds every upstream request. There is no per-operation
// override and no automatic retry.
const DefaultTimeout = 30 * time.Second

// Session is the slice of the session store the client needs: a token to
// attach and a hook to fire when the backend says that token is dead.
type Session interface {
	Token() string
	Expire(ctx context.Context)
}

// Client is the single point of outbound request construction and the only
// point of global upstream error policy.
type Client struct {
	base    string
	http    *http.Client
	session Session
	log     zerolog.Logger
}

// New builds a Client for the given base URL. The session is bound later
// with BindSession because the session store itself needs an auth client
// built on top of this Client.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("backend base url: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}, nil
}

// BindSession attaches the session store. Until bound, every request goes
// out unauthenticated and 401 responses expire nothing.
func (c *Client) BindSession(s Session) {
	c.session = s
}

// roundTrip performs one upstream call and applies the global error policy.
// It returns the raw response body for 2xx responses; every failure comes
// back as an *UpstreamError wrapping a domain sentinel.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	authenticated := false
	if c.session != nil {
		if token := strings.TrimSpace(c.session.Token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	resource := resourceLabel(path)
	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		kind := domain.ErrUpstreamUnreachable
		if isTimeout(err) {
			kind = domain.ErrUpstreamTimeout
		}
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, method, "transport_error").Inc()
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("upstream transport failure")
		return nil, &UpstreamError{Kind: kind}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, method, "transport_error").Inc()
		return nil, &UpstreamError{Kind: domain.ErrUpstreamUnreachable}
	}

	if resp.StatusCode >= 400 {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, method, outcomeLabel(resp.StatusCode)).Inc()
		return nil, c.statusError(ctx, resp.StatusCode, raw, authenticated, method, path)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(resource, method, "ok").Inc()
	return raw, nil
}

// statusError maps an upstream HTTP status to the error taxonomy. A 401 on
// an authenticated request force-clears the session; unauthenticated calls
// (login itself) can never expire a session, which is what prevents the
// redirect loop on the login view.
func (c *Client) statusError(ctx context.Context, status int, raw []byte, authenticated bool, method, path string) error {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(raw, &envelope)

	ue := &UpstreamError{
		StatusCode: status,
		Message:    envelope.Message,
		Detail:     envelope.Error,
	}

	switch {
	case status == http.StatusUnauthorized:
		if authenticated && c.session != nil {
			c.session.Expire(ctx)
			metrics.SessionExpiriesTotal.Inc()
		}
		ue.Kind = domain.ErrSessionExpired
	case status == http.StatusForbidden:
		ue.Kind = domain.ErrPermissionDenied
	case status >= 500:
		ue.Kind = domain.ErrUpstreamServer
		c.log.Error().Int("status", status).Str("method", method).Str("path", path).
			Str("message", envelope.Message).Msg("upstream server error")
	default:
		ue.Kind = domain.ErrRequestRejected
	}
	return ue
}

// do performs a call whose 2xx body is the standard {status, message, data}
// envelope.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*Envelope, error) {
	raw, err := c.roundTrip(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(raw)
}

// doInto performs a call whose 2xx body is a bare JSON document (the auth
// endpoints respond without the envelope).
func (c *Client) doInto(ctx context.Context, method, path string, query url.Values, body, out any) error {
	raw, err := c.roundTrip(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s %s", domain.ErrMalformedResponse, method, path)
	}
	return nil
}

// stream performs a call whose response body is binary and must not be
// buffered. The caller owns the returned response body.
func (c *Client) stream(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	authenticated := false
	if c.session != nil {
		if token := strings.TrimSpace(c.session.Token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		kind := domain.ErrUpstreamUnreachable
		if isTimeout(err) {
			kind = domain.ErrUpstreamTimeout
		}
		return nil, &UpstreamError{Kind: kind}
	}

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		resp.Body.Close()
		return nil, c.statusError(ctx, resp.StatusCode, raw, authenticated, http.MethodGet, path)
	}
	return resp, nil
}

// Reachable reports whether the backend answers at all. Any HTTP response,
// including an error status, counts as reachable; only transport failures do
// not. Used by the readiness probe.
func (c *Client) Reachable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return domain.ErrUpstreamTimeout
		}
		return domain.ErrUpstreamUnreachable
	}
	resp.Body.Close()
	return nil
}

// isTimeout distinguishes the fixed-timeout case from a plain transport
// failure (DNS, refused connection).
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Timeout()
	}
	return false
}

// resourceLabel derives the metrics resource label from the request path,
// e.g. /api/admin/users/7 -> "users", /api/auth/login -> "auth".
func resourceLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		if p == "admin" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	if len(parts) >= 2 && parts[0] == "api" {
		return parts[1]
	}
	return "unknown"
}

// outcomeLabel buckets an error status for the request counter.
func outcomeLabel(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "unauthorized"
	case status == http.StatusForbidden:
		return "forbidden"
	case status >= 500:
		return "server_error"
	default:
		return "rejected"
	}
}
