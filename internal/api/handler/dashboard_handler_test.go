package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/backend"
	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

type fakePostClient struct {
	stats    *domain.PostStats
	statsErr error
}

func (f *fakePostClient) List(_ context.Context, _ ports.ListQuery) (*domain.Page[domain.Post], error) {
	return onePage([]domain.Post{}, 0), nil
}
func (f *fakePostClient) Get(_ context.Context, id int64) (*domain.Post, error) {
	return &domain.Post{ID: id}, nil
}
func (f *fakePostClient) Approve(_ context.Context, id int64) (*domain.Post, error) {
	return &domain.Post{ID: id}, nil
}
func (f *fakePostClient) Reject(_ context.Context, id int64, _ string) (*domain.Post, error) {
	return &domain.Post{ID: id}, nil
}
func (f *fakePostClient) Restore(_ context.Context, id int64) (*domain.Post, error) {
	return &domain.Post{ID: id}, nil
}
func (f *fakePostClient) Delete(_ context.Context, _ int64) error { return nil }
func (f *fakePostClient) Stats(_ context.Context, _ ports.ListQuery) (*domain.PostStats, error) {
	return f.stats, f.statsErr
}

type fakePlanClient struct {
	page *domain.Page[domain.ServicePlan]
}

func (f *fakePlanClient) List(_ context.Context, _ ports.ListQuery) (*domain.Page[domain.ServicePlan], error) {
	return f.page, nil
}
func (f *fakePlanClient) Get(_ context.Context, id int64) (*domain.ServicePlan, error) {
	return &domain.ServicePlan{ID: id}, nil
}
func (f *fakePlanClient) Create(_ context.Context, _ ports.ServicePlanInput) (*domain.ServicePlan, error) {
	return &domain.ServicePlan{}, nil
}
func (f *fakePlanClient) Update(_ context.Context, id int64, _ ports.ServicePlanInput) (*domain.ServicePlan, error) {
	return &domain.ServicePlan{ID: id}, nil
}
func (f *fakePlanClient) ChangeStatus(_ context.Context, id int64, _ string) (*domain.ServicePlan, error) {
	return &domain.ServicePlan{ID: id}, nil
}
func (f *fakePlanClient) Delete(_ context.Context, _ int64) error { return nil }

func dashboardFakes() (*fakeUserClient, *fakePostClient, *fakePlanClient, *fakeRevenueClient) {
	users := &fakeUserClient{page: onePage([]domain.AdminUser{{ID: 1}}, 321)}
	posts := &fakePostClient{stats: &domain.PostStats{Total: 50, Pending: 7}}
	plans := &fakePlanClient{page: onePage([]domain.ServicePlan{{ID: 1}}, 4)}
	revenue := &fakeRevenueClient{stats: &domain.RevenueStats{TotalRevenue: 98765.43}}
	return users, posts, plans, revenue
}

func TestDashboardAggregatesAllCards(t *testing.T) {
	users, posts, plans, revenue := dashboardFakes()
	h := NewDashboardHandler(users, posts, plans, revenue, zerolog.Nop())

	c, rec := newContext(t, http.MethodGet, "/admin/dashboard", nil)
	if err := h.Stats(c); err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	view := decodeBody[dashboardView](t, rec)
	if !view.TotalUsers.OK || view.TotalUsers.Value != 321 {
		t.Errorf("TotalUsers = %+v", view.TotalUsers)
	}
	if !view.PendingPosts.OK || view.PendingPosts.Value != 7 {
		t.Errorf("PendingPosts = %+v", view.PendingPosts)
	}
	if !view.TotalRevenue.OK || view.TotalRevenue.Value != 98765.43 {
		t.Errorf("TotalRevenue = %+v", view.TotalRevenue)
	}
	if !view.ActivePlans.OK || view.ActivePlans.Value != 4 {
		t.Errorf("ActivePlans = %+v", view.ActivePlans)
	}
}

func TestDashboardCardsSettleIndependently(t *testing.T) {
	users, posts, plans, revenue := dashboardFakes()
	revenue.statsErr = &backend.UpstreamError{Kind: domain.ErrUpstreamServer, StatusCode: 500, Message: "stats offline"}
	h := NewDashboardHandler(users, posts, plans, revenue, zerolog.Nop())

	c, rec := newContext(t, http.MethodGet, "/admin/dashboard", nil)
	if err := h.Stats(c); err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	view := decodeBody[dashboardView](t, rec)
	if view.TotalRevenue.OK || view.TotalRevenue.Error != "stats offline" {
		t.Errorf("TotalRevenue = %+v, want failed card with message", view.TotalRevenue)
	}
	if !view.TotalUsers.OK || !view.PendingPosts.OK || !view.ActivePlans.OK {
		t.Error("an unrelated card failed alongside the revenue source")
	}
}

func TestDashboardSessionExpiryBubbles(t *testing.T) {
	users, posts, plans, revenue := dashboardFakes()
	posts.statsErr = &backend.UpstreamError{Kind: domain.ErrSessionExpired}
	h := NewDashboardHandler(users, posts, plans, revenue, zerolog.Nop())

	c, _ := newContext(t, http.MethodGet, "/admin/dashboard", nil)
	if err := h.Stats(c); !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("error = %v, want ErrSessionExpired to bubble", err)
	}
}
