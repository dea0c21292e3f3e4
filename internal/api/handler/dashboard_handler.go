package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/backend"
	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// DashboardHandler aggregates the landing-page stat cards. The four counts
// come from four independent backend calls issued concurrently; each card
// settles on its own so one failing source never blanks the others.
type DashboardHandler struct {
	users ports.UserClient
	posts ports.PostClient
	plans ports.ServicePlanClient
	rev   ports.RevenueClient
	log   zerolog.Logger
}

func NewDashboardHandler(
	users ports.UserClient,
	posts ports.PostClient,
	plans ports.ServicePlanClient,
	rev ports.RevenueClient,
	log zerolog.Logger,
) *DashboardHandler {
	return &DashboardHandler{users: users, posts: posts, plans: plans, rev: rev, log: log}
}

// statCard is one dashboard tile. A failed source renders with OK=false and
// the error message instead of a value.
type statCard struct {
	Value float64 `json:"value"`
	OK    bool    `json:"ok"`
	Error string  `json:"error,omitempty"`
}

type dashboardView struct {
	TotalUsers   statCard `json:"totalUsers"`
	PendingPosts statCard `json:"pendingPosts"`
	TotalRevenue statCard `json:"totalRevenue"`
	ActivePlans  statCard `json:"activePlans"`
}

// Stats godoc
// @Summary      Dashboard overview counters
// @Description  Total users, pending posts, total revenue and active service plans, each fetched independently.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardView
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	// A size-1 page is the cheapest way to read a total: only the pageable
	// counters matter.
	countQuery := func(status string) ports.ListQuery {
		return ports.ListQuery{Page: 0, Size: 1, Status: status}
	}

	var (
		wg         sync.WaitGroup
		view       dashboardView
		sessionErr error
		mu         sync.Mutex
	)

	fetch := func(card *statCard, fn func() (float64, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := fn()
			if err != nil {
				if errors.Is(err, domain.ErrSessionExpired) {
					mu.Lock()
					sessionErr = err
					mu.Unlock()
				}
				*card = statCard{Error: backend.UserMessage(err)}
				return
			}
			*card = statCard{Value: value, OK: true}
		}()
	}

	fetch(&view.TotalUsers, func() (float64, error) {
		pg, err := h.users.List(ctx, countQuery(""))
		if err != nil {
			return 0, err
		}
		return float64(pg.Pageable.TotalElements), nil
	})
	fetch(&view.PendingPosts, func() (float64, error) {
		stats, err := h.posts.Stats(ctx, ports.ListQuery{})
		if err != nil {
			return 0, err
		}
		return float64(stats.Pending), nil
	})
	fetch(&view.TotalRevenue, func() (float64, error) {
		stats, err := h.rev.Statistics(ctx, ports.ListQuery{})
		if err != nil {
			return 0, err
		}
		return stats.TotalRevenue, nil
	})
	fetch(&view.ActivePlans, func() (float64, error) {
		pg, err := h.plans.List(ctx, countQuery("ACTIVE"))
		if err != nil {
			return 0, err
		}
		return float64(pg.Pageable.TotalElements), nil
	})

	wg.Wait()

	// An expired session anywhere in the fan-out means the whole dashboard
	// must bounce to login, not render three cards and an error tile.
	if sessionErr != nil {
		return sessionErr
	}
	return c.JSON(http.StatusOK, view)
}
