package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/confgate/internal/correlation"
	"github.com/pscheid92/confgate/internal/metrics"
	"github.com/pscheid92/confgate/internal/secret"
)

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := correlation.WithID(c.Request().Context(), correlation.NewID())
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequireKey gates a handler behind the shared master secret, read from
// the "key" query parameter. On a missing or mismatched key the wrapped
// handler is never invoked and no storage access happens.
func RequireKey(sec *secret.Secret) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sec.Matches(c.QueryParam("key")) {
				metrics.AuthFailuresTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			return next(c)
		}
	}
}
