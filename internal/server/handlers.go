package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/confgate/internal/metrics"
)

// handleListApps serves GET /:env with the application names stored in
// the environment's partition.
func (s *Server) handleListApps(c echo.Context) error {
	env := c.Param("env")

	apps, err := s.resolver.ListApps(c.Request().Context(), env)
	if err != nil {
		metrics.ConfigReadsTotal.WithLabelValues("list", "error").Inc()
		return err
	}

	metrics.ConfigReadsTotal.WithLabelValues("list", "ok").Inc()
	if err := c.JSON(http.StatusOK, apps); err != nil {
		return fmt.Errorf("failed to write app list: %w", err)
	}
	return nil
}

// handleGetApp serves GET /:env/:app with the shaped configuration
// document. An application without a record renders as an empty object,
// not a 404.
func (s *Server) handleGetApp(c echo.Context) error {
	env := c.Param("env")
	app := c.Param("app")

	view, err := s.resolver.GetApp(c.Request().Context(), env, app)
	if err != nil {
		metrics.ConfigReadsTotal.WithLabelValues("detail", "error").Inc()
		return err
	}

	metrics.ConfigReadsTotal.WithLabelValues("detail", "ok").Inc()
	if err := c.JSON(http.StatusOK, view); err != nil {
		return fmt.Errorf("failed to write config view: %w", err)
	}
	return nil
}

// handleNotImplemented is the fixed landing spot for mutating verbs.
func (s *Server) handleNotImplemented(c echo.Context) error {
	return echo.NewHTTPError(http.StatusNotImplemented, "not implemented")
}
