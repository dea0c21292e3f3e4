package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

type fakeAuth struct {
	result *ports.LoginResult
	err    error
	calls  int
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (*ports.LoginResult, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeAuth) CurrentAccount(_ context.Context) (*domain.Account, error) {
	return nil, errors.New("not implemented")
}

type fakeVault struct {
	token   string
	account []byte

	storeErr error
	loadErr  error

	stores  int
	clears  int
	onStore func()
}

func (f *fakeVault) Store(_ context.Context, token string, account []byte) error {
	f.stores++
	if f.onStore != nil {
		f.onStore()
	}
	if f.storeErr != nil {
		return f.storeErr
	}
	f.token = token
	f.account = account
	return nil
}

func (f *fakeVault) Load(_ context.Context) (string, []byte, error) {
	if f.loadErr != nil {
		return "", nil, f.loadErr
	}
	return f.token, f.account, nil
}

func (f *fakeVault) Clear(_ context.Context) error {
	f.clears++
	f.token = ""
	f.account = nil
	return nil
}

func adminResult() *ports.LoginResult {
	return &ports.LoginResult{
		Token: "jwt-admin",
		Account: domain.Account{
			ID: 1, Email: "admin@lanhcare.vn", Fullname: "Admin", Role: domain.RoleAdmin, Status: "ACTIVE",
		},
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestLoginEstablishesSession(t *testing.T) {
	vault := &fakeVault{}
	store := NewStore(&fakeAuth{result: adminResult()}, vault, zerolog.Nop())

	if err := store.Login(context.Background(), "admin@lanhcare.vn", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if !store.CheckAuth(context.Background()) {
		t.Error("CheckAuth() = false after login")
	}
	if store.Token() != "jwt-admin" {
		t.Errorf("Token() = %q", store.Token())
	}
	if vault.stores != 1 {
		t.Errorf("vault stores = %d, want 1", vault.stores)
	}

	snap := store.Current()
	if !snap.Authenticated || snap.Account == nil || snap.Account.Email != "admin@lanhcare.vn" {
		t.Errorf("Current() = %+v", snap)
	}
	if snap.ID == "" {
		t.Error("session id not assigned")
	}
}

func TestLoginPersistsBeforeFlippingTheFlag(t *testing.T) {
	vault := &fakeVault{}
	store := NewStore(&fakeAuth{result: adminResult()}, vault, zerolog.Nop())

	// Observed at the moment of the vault write: the in-memory session must
	// still be unauthenticated, or a crash between the two steps could leave
	// a live session that no restart can recover.
	var authedDuringStore bool
	vault.onStore = func() {
		authedDuringStore = store.Current().Authenticated
	}

	if err := store.Login(context.Background(), "admin@lanhcare.vn", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if authedDuringStore {
		t.Error("in-memory session flipped before the vault write")
	}
}

func TestLoginNonAdminWritesNothing(t *testing.T) {
	result := adminResult()
	result.Account.Role = "USER"
	vault := &fakeVault{}
	store := NewStore(&fakeAuth{result: result}, vault, zerolog.Nop())

	err := store.Login(context.Background(), "user@lanhcare.vn", "secret")
	if !errors.Is(err, domain.ErrNotPermitted) {
		t.Fatalf("error = %v, want ErrNotPermitted", err)
	}
	if vault.stores != 0 {
		t.Errorf("vault stores = %d, want 0", vault.stores)
	}
	if store.CheckAuth(context.Background()) {
		t.Error("session authenticated after rejected login")
	}
	if store.Token() != "" {
		t.Error("token retained after rejected login")
	}
}

func TestLoginVaultFailureLeavesSessionOut(t *testing.T) {
	vault := &fakeVault{storeErr: errors.New("redis down")}
	store := NewStore(&fakeAuth{result: adminResult()}, vault, zerolog.Nop())

	if err := store.Login(context.Background(), "admin@lanhcare.vn", "secret"); err == nil {
		t.Fatal("expected an error")
	}
	if store.Current().Authenticated {
		t.Error("session authenticated despite failed persistence")
	}
}

func TestLogoutClearsEverythingAndIsIdempotent(t *testing.T) {
	vault := &fakeVault{}
	store := NewStore(&fakeAuth{result: adminResult()}, vault, zerolog.Nop())

	if err := store.Login(context.Background(), "admin@lanhcare.vn", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	store.Logout(context.Background())
	store.Logout(context.Background())

	if store.CheckAuth(context.Background()) {
		t.Error("CheckAuth() = true after logout")
	}
	if store.Token() != "" {
		t.Error("token survived logout")
	}
	if vault.token != "" || vault.account != nil {
		t.Error("vault not cleared")
	}
}

func TestCheckAuthHydratesFromVault(t *testing.T) {
	account := adminResult().Account
	vault := &fakeVault{token: "persisted-jwt", account: nil}
	vault.account = mustMarshal(t, account)

	store := NewStore(&fakeAuth{}, vault, zerolog.Nop())

	if !store.CheckAuth(context.Background()) {
		t.Fatal("CheckAuth() = false with a valid persisted session")
	}
	if store.Token() != "persisted-jwt" {
		t.Errorf("Token() = %q", store.Token())
	}
	snap := store.Current()
	if snap.Account == nil || snap.Account.Email != account.Email {
		t.Errorf("Current() = %+v", snap)
	}
}

func TestCheckAuthClearsBadRecords(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		account []byte
	}{
		{"unreadable account", "jwt", []byte("{not json")},
		{"non-admin account", "jwt", []byte(`{"id":2,"email":"u@l.vn","role":"USER"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := &fakeVault{token: tt.token, account: tt.account}
			store := NewStore(&fakeAuth{}, vault, zerolog.Nop())

			if store.CheckAuth(context.Background()) {
				t.Error("CheckAuth() = true for a bad record")
			}
			if vault.clears != 1 {
				t.Errorf("vault clears = %d, want 1", vault.clears)
			}
		})
	}
}

func TestCheckAuthExpiredTokenClears(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("any-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	vault := &fakeVault{token: tokenString}
	vault.account = mustMarshal(t, adminResult().Account)
	store := NewStore(&fakeAuth{}, vault, zerolog.Nop())

	if store.CheckAuth(context.Background()) {
		t.Error("CheckAuth() = true with an expired token")
	}
	if vault.clears != 1 {
		t.Errorf("vault clears = %d, want 1", vault.clears)
	}
}

func TestCheckAuthVaultErrorDoesNotWipeStorage(t *testing.T) {
	vault := &fakeVault{loadErr: errors.New("redis timeout")}
	store := NewStore(&fakeAuth{}, vault, zerolog.Nop())

	if store.CheckAuth(context.Background()) {
		t.Error("CheckAuth() = true while the vault is unreachable")
	}
	if vault.clears != 0 {
		t.Errorf("vault clears = %d, want 0: an unreachable vault is not a bad record", vault.clears)
	}
}

func TestExpireForcesTheSessionOut(t *testing.T) {
	vault := &fakeVault{}
	store := NewStore(&fakeAuth{result: adminResult()}, vault, zerolog.Nop())

	if err := store.Login(context.Background(), "admin@lanhcare.vn", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	store.Expire(context.Background())

	if store.CheckAuth(context.Background()) {
		t.Error("CheckAuth() = true after Expire")
	}
}

func TestTokenExpired(t *testing.T) {
	if tokenExpired("not-a-jwt") {
		t.Error("unparseable tokens get the benefit of the doubt")
	}

	future := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := future.SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if tokenExpired(tokenString) {
		t.Error("future exp reported as expired")
	}
}
