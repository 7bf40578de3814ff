package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/confgate/internal/app"
	"github.com/pscheid92/confgate/internal/config"
	"github.com/pscheid92/confgate/internal/domain"
	"github.com/pscheid92/confgate/internal/logging"
	"github.com/pscheid92/confgate/internal/mongo"
	"github.com/pscheid92/confgate/internal/secret"
	"github.com/pscheid92/confgate/internal/server"
	gomongo "go.mongodb.org/mongo-driver/mongo"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupSecret(cfg *config.Config) *secret.Secret {
	sec, err := secret.LoadFromFile(cfg.SecretFile)
	if err != nil {
		slog.Error("Failed to load secret", "error", err)
		os.Exit(1)
	}
	return sec
}

// checkTLSArtifacts fails fast when the certificate or key is missing,
// before any listener is opened.
func checkTLSArtifacts(cfg *config.Config) {
	for _, path := range []string{cfg.CertFile, cfg.KeyFile} {
		if _, err := os.Stat(path); err != nil {
			slog.Error("Missing TLS artifact", "path", path, "error", err)
			os.Exit(1)
		}
	}
}

func setupMongo(cfg *config.Config) *gomongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.MongoURL)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	return client
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "addr", cfg.ListenAddr())

	sec := setupSecret(cfg)
	checkTLSArtifacts(cfg)

	client := setupMongo(cfg)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			slog.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	repo := mongo.NewConfigRepo(client, cfg.DatabaseName)
	envs := domain.NewEnvironments(cfg.Environments)
	resolver := app.NewResolver(repo, envs)

	healthChecks := []server.HealthCheck{
		{Name: "mongodb", Check: repo.HealthCheck},
	}

	srv := server.NewServer(cfg, resolver, sec, healthChecks, clock)
	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "addr", cfg.ListenAddr(), "environments", cfg.Environments)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
