// Package middleware holds the gateway's request middleware. The only custom
// piece is the session guard; everything else comes from echo's stock set.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// Guard protects the admin surface. Every request re-checks the session,
// which also re-hydrates it from the vault after a restart. Unauthenticated
// requests get a 401 with the login redirect; they never reach a handler.
func Guard(store ports.SessionStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if store.CheckAuth(c.Request().Context()) {
				return next(c)
			}

			log.Debug().
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unauthenticated request blocked")

			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error":    "authentication required",
				"redirect": "/login",
			})
		}
	}
}
