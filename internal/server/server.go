package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/pscheid92/confgate/internal/config"
	"github.com/pscheid92/confgate/internal/domain"
	"github.com/pscheid92/confgate/internal/secret"
)

type configResolver interface {
	ListApps(ctx context.Context, env string) ([]string, error)
	GetApp(ctx context.Context, env, app string) (domain.ConfigView, error)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	resolver configResolver
	secret   *secret.Secret

	healthChecks []HealthCheck
	clock        clockwork.Clock
	startTime    time.Time
}

func NewServer(cfg *config.Config, resolver configResolver, sec *secret.Secret, healthChecks []HealthCheck, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		resolver:     resolver,
		secret:       sec,
		healthChecks: healthChecks,
		clock:        clock,
		startTime:    clock.Now(),
	}

	e.HTTPErrorHandler = srv.httpErrorHandler
	srv.registerRoutes()

	return srv
}

// Start serves HTTPS on the configured address. Plaintext HTTP is never
// served.
func (s *Server) Start() error {
	slog.Info("Starting server", "addr", s.config.ListenAddr())
	if err := s.echo.StartTLS(s.config.ListenAddr(), s.config.CertFile, s.config.KeyFile); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
