package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

type stubSession struct {
	token   string
	expired bool
}

func (s *stubSession) Token() string            { return s.token }
func (s *stubSession) Expire(_ context.Context) { s.expired = true }

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(baseURL, 2*time.Second, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestRoundTripAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":200,"message":"ok","data":{}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.BindSession(&stubSession{token: "tok-123"})

	if _, err := c.roundTrip(context.Background(), http.MethodGet, "/api/admin/users", nil, nil); err != nil {
		t.Fatalf("roundTrip() error = %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestRoundTripWithoutTokenSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.BindSession(&stubSession{token: ""})

	if _, err := c.roundTrip(context.Background(), http.MethodGet, "/api/auth/login", nil, nil); err != nil {
		t.Fatalf("roundTrip() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestUnauthorizedExpiresAuthenticatedSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess := &stubSession{token: "stale"}
	c := newTestClient(t, srv.URL)
	c.BindSession(sess)

	_, err := c.roundTrip(context.Background(), http.MethodGet, "/api/admin/users", nil, nil)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("error = %v, want ErrSessionExpired", err)
	}
	if !sess.expired {
		t.Error("session was not expired on 401")
	}
}

func TestUnauthorizedWithoutTokenDoesNotExpireSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	// The login call itself goes out without a token. A 401 there must never
	// clear the session or the login page bounces in a redirect loop.
	sess := &stubSession{token: ""}
	c := newTestClient(t, srv.URL)
	c.BindSession(sess)

	_, err := c.roundTrip(context.Background(), http.MethodPost, "/api/auth/login", nil, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if sess.expired {
		t.Error("unauthenticated 401 expired the session")
	}
}

func TestForbiddenIsPreservedAndDoesNotExpire(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"admins only"}`))
	}))
	defer srv.Close()

	sess := &stubSession{token: "tok"}
	c := newTestClient(t, srv.URL)
	c.BindSession(sess)

	_, err := c.roundTrip(context.Background(), http.MethodGet, "/api/admin/users", nil, nil)
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("error = %v, want ErrPermissionDenied", err)
	}
	if sess.expired {
		t.Error("403 must not expire the session")
	}
	if got := UserMessage(err); got != "admins only" {
		t.Errorf("UserMessage = %q, want %q", got, "admins only")
	}
}

func TestServerErrorExtractsBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database connection lost"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.roundTrip(context.Background(), http.MethodGet, "/api/admin/users", nil, nil)
	if !errors.Is(err, domain.ErrUpstreamServer) {
		t.Fatalf("error = %v, want ErrUpstreamServer", err)
	}
	if got := UserMessage(err); got != "database connection lost" {
		t.Errorf("UserMessage = %q, want backend message", got)
	}
}

func TestRejectedFallsBackToErrorFieldThenStatusLine(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"duplicate email"}`, "duplicate email"},
		{"status line", `{}`, "409 Conflict"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			_, err := c.roundTrip(context.Background(), http.MethodPost, "/api/admin/users", nil, nil)
			if !errors.Is(err, domain.ErrRequestRejected) {
				t.Fatalf("error = %v, want ErrRequestRejected", err)
			}
			if got := UserMessage(err); got != tt.want {
				t.Errorf("UserMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeoutIsDistinguishedFromUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	slow, err := New(srv.URL, 20*time.Millisecond, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := slow.roundTrip(context.Background(), http.MethodGet, "/api/admin/users", nil, nil); !errors.Is(err, domain.ErrUpstreamTimeout) {
		t.Errorf("slow server error = %v, want ErrUpstreamTimeout", err)
	}

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	c := newTestClient(t, deadURL)
	if _, err := c.roundTrip(context.Background(), http.MethodGet, "/api/admin/users", nil, nil); !errors.Is(err, domain.ErrUpstreamUnreachable) {
		t.Errorf("closed server error = %v, want ErrUpstreamUnreachable", err)
	}
}

func TestResourceLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/admin/users/7", "users"},
		{"/api/admin/revenue/transactions", "revenue"},
		{"/api/auth/login", "auth"},
		{"/ping", "unknown"},
	}
	for _, tt := range tests {
		if got := resourceLabel(tt.path); got != tt.want {
			t.Errorf("resourceLabel(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
