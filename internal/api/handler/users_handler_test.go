package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/backend"
	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

type fakeUserClient struct {
	page    *domain.Page[domain.AdminUser]
	listErr error

	lists   int
	creates int
	deletes int
	lastQ   ports.ListQuery
}

func (f *fakeUserClient) List(_ context.Context, q ports.ListQuery) (*domain.Page[domain.AdminUser], error) {
	f.lists++
	f.lastQ = q
	return f.page, f.listErr
}

func (f *fakeUserClient) Get(_ context.Context, id int64) (*domain.AdminUserDetail, error) {
	return &domain.AdminUserDetail{AdminUser: domain.AdminUser{ID: id, Status: "ACTIVE"}}, nil
}

func (f *fakeUserClient) Create(_ context.Context, _ ports.CreateUserInput) (*domain.AdminUser, error) {
	f.creates++
	return &domain.AdminUser{ID: 99}, nil
}

func (f *fakeUserClient) Update(_ context.Context, id int64, _ ports.UpdateUserInput) (*domain.AdminUser, error) {
	return &domain.AdminUser{ID: id}, nil
}

func (f *fakeUserClient) ChangeStatus(_ context.Context, id int64, status string) (*domain.AdminUser, error) {
	return &domain.AdminUser{ID: id, Status: status}, nil
}

func (f *fakeUserClient) Delete(_ context.Context, _ int64) error {
	f.deletes++
	return nil
}

func TestUsersListRendersPage(t *testing.T) {
	fake := &fakeUserClient{page: onePage([]domain.AdminUser{
		{ID: 1, Email: "a@lanhcare.vn"},
		{ID: 2, Email: "b@lanhcare.vn"},
	}, 2)}
	h := NewUsersHandler(fake, zerolog.Nop())

	c, rec := newContext(t, http.MethodGet, "/admin/users?page=0&search=lanh", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	view := decodeBody[listView[domain.AdminUser]](t, rec)
	if len(view.Items) != 2 || view.TotalElements != 2 {
		t.Errorf("view = %+v", view)
	}
	if view.CanPrev || view.CanNext {
		t.Error("single page must disable both pagination controls")
	}
	if fake.lastQ.Size != pageSize || fake.lastQ.Search != "lanh" {
		t.Errorf("query = %+v", fake.lastQ)
	}
}

func TestUsersListNegativePageClampsToZero(t *testing.T) {
	fake := &fakeUserClient{page: onePage([]domain.AdminUser{}, 0)}
	h := NewUsersHandler(fake, zerolog.Nop())

	c, _ := newContext(t, http.MethodGet, "/admin/users?page=-3", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if fake.lastQ.Page != 0 {
		t.Errorf("page = %d, want 0", fake.lastQ.Page)
	}
}

func TestUsersListFailureDegradesToEmptyPageWithToast(t *testing.T) {
	fake := &fakeUserClient{listErr: &backend.UpstreamError{Kind: domain.ErrMalformedResponse}}
	h := NewUsersHandler(fake, zerolog.Nop())

	c, rec := newContext(t, http.MethodGet, "/admin/users", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	view := decodeBody[listView[domain.AdminUser]](t, rec)
	if len(view.Items) != 0 {
		t.Errorf("items = %v, want empty", view.Items)
	}
	if view.Toast == nil || view.Toast.Level != "error" {
		t.Errorf("toast = %+v, want one error toast", view.Toast)
	}
}

func TestUsersListSessionExpiryBubbles(t *testing.T) {
	fake := &fakeUserClient{listErr: &backend.UpstreamError{Kind: domain.ErrSessionExpired}}
	h := NewUsersHandler(fake, zerolog.Nop())

	c, _ := newContext(t, http.MethodGet, "/admin/users", nil)
	if err := h.List(c); !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("error = %v, want ErrSessionExpired to bubble", err)
	}
}

func TestUsersCreateValidatesBeforeCalling(t *testing.T) {
	fake := &fakeUserClient{page: onePage([]domain.AdminUser{}, 0)}
	h := NewUsersHandler(fake, zerolog.Nop())

	c, _ := newContext(t, http.MethodPost, "/admin/users",
		strings.NewReader(`{"email":"not-an-email","fullname":"X","password":"secret1","role":"USER"}`))
	if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if fake.creates != 0 {
		t.Error("invalid input reached the backend")
	}
}

func TestUsersCreateRefetchesWithSuccessToast(t *testing.T) {
	fake := &fakeUserClient{page: onePage([]domain.AdminUser{{ID: 99}}, 1)}
	h := NewUsersHandler(fake, zerolog.Nop())

	c, rec := newContext(t, http.MethodPost, "/admin/users?page=0",
		strings.NewReader(`{"email":"new@lanhcare.vn","fullname":"New User","password":"secret1","role":"USER","status":"ACTIVE"}`))
	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if fake.creates != 1 || fake.lists != 1 {
		t.Errorf("creates = %d, lists = %d; want 1 and 1", fake.creates, fake.lists)
	}
	view := decodeBody[listView[domain.AdminUser]](t, rec)
	if view.Toast == nil || view.Toast.Level != "success" {
		t.Errorf("toast = %+v, want success", view.Toast)
	}
}

func TestUsersDeleteRequiresConfirmation(t *testing.T) {
	fake := &fakeUserClient{page: onePage([]domain.AdminUser{}, 0)}
	h := NewUsersHandler(fake, zerolog.Nop())

	c, _ := newContext(t, http.MethodDelete, "/admin/users/7", nil)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Delete(c); !errors.Is(err, domain.ErrConfirmationRequired) {
		t.Fatalf("error = %v, want ErrConfirmationRequired", err)
	}
	if fake.deletes != 0 {
		t.Error("delete was issued without confirmation")
	}
}

func TestUsersDeleteSuccessToastSurvivesFailedRefetch(t *testing.T) {
	fake := &fakeUserClient{listErr: &backend.UpstreamError{Kind: domain.ErrUpstreamServer, StatusCode: 500}}
	h := NewUsersHandler(fake, zerolog.Nop())

	c, rec := newContext(t, http.MethodDelete, "/admin/users/7?confirm=true", nil)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if fake.deletes != 1 {
		t.Errorf("deletes = %d, want 1", fake.deletes)
	}

	// One toast per action: the delete succeeded, so the success toast
	// stands even though the refetch came back empty.
	view := decodeBody[listView[domain.AdminUser]](t, rec)
	if view.Toast == nil || view.Toast.Level != "success" {
		t.Errorf("toast = %+v, want success", view.Toast)
	}
	if len(view.Items) != 0 {
		t.Errorf("items = %v, want empty degraded page", view.Items)
	}
}

func TestUsersIDParamRejectsGarbage(t *testing.T) {
	h := NewUsersHandler(&fakeUserClient{}, zerolog.Nop())

	for _, bad := range []string{"abc", "-4", "0"} {
		c, _ := newContext(t, http.MethodGet, "/admin/users/"+bad, nil)
		c.SetParamNames("id")
		c.SetParamValues(bad)

		if err := h.Get(c); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("id %q: error = %v, want ErrValidation", bad, err)
		}
	}
}

func TestUsersChangeStatusRequiresStatus(t *testing.T) {
	h := NewUsersHandler(&fakeUserClient{page: onePage([]domain.AdminUser{}, 0)}, zerolog.Nop())

	c, _ := newContext(t, http.MethodPatch, "/admin/users/7/status", nil)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.ChangeStatus(c); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}
