package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Upstream is the slice of the backend client the readiness probe needs.
type Upstream interface {
	Reachable(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes. Readiness requires
// the session vault and the upstream API: a gateway that cannot reach Redis
// would silently drop every login it accepts, and one that cannot reach the
// backend serves nothing but error toasts.
type HealthHandler struct {
	redis    *redis.Client
	upstream Upstream
}

func NewHealthHandler(redisClient *redis.Client, upstream Upstream) *HealthHandler {
	return &HealthHandler{redis: redisClient, upstream: upstream}
}

// Live godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /healthz [get]
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Ready godoc
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  map[string]string
// @Router   /readyz [get]
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"status": "degraded",
				"redis":  err.Error(),
			})
		}
	}
	if h.upstream != nil {
		if err := h.upstream.Reachable(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"status":   "degraded",
				"upstream": err.Error(),
			})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
}
