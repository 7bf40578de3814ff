package app

import (
	"context"
	"fmt"

	"github.com/pscheid92/confgate/internal/domain"
)

// ConfigReader is the read-only view of the configuration store. No
// update, replace or delete operation exists on this interface, so the
// HTTP surface has no write capability to expose.
type ConfigReader interface {
	ListRecords(ctx context.Context, env string) ([]domain.ConfigRecord, error)
	FindByApp(ctx context.Context, env, app string) (domain.ConfigRecord, error)
}

// Resolver maps (environment, application) path pairs to repository
// queries. Unknown environments are rejected before any storage call.
type Resolver struct {
	repo ConfigReader
	envs domain.Environments
}

func NewResolver(repo ConfigReader, envs domain.Environments) *Resolver {
	return &Resolver{repo: repo, envs: envs}
}

// ListApps returns the application names in the environment, in
// storage-returned order. Records missing an "app" field are listed by
// their internal identifier.
func (r *Resolver) ListApps(ctx context.Context, env string) ([]string, error) {
	if !r.envs.IsPermitted(env) {
		return nil, fmt.Errorf("environment %q: %w", env, domain.ErrUnknownEnvironment)
	}

	records, err := r.repo.ListRecords(ctx, env)
	if err != nil {
		return nil, err
	}

	apps := make([]string, 0, len(records))
	for _, record := range records {
		apps = append(apps, record.AppName())
	}
	return apps, nil
}

// GetApp returns the shaped configuration for the named application. An
// application with no record resolves to an empty view, not an error.
func (r *Resolver) GetApp(ctx context.Context, env, app string) (domain.ConfigView, error) {
	if !r.envs.IsPermitted(env) {
		return nil, fmt.Errorf("environment %q: %w", env, domain.ErrUnknownEnvironment)
	}

	record, err := r.repo.FindByApp(ctx, env, app)
	if err != nil {
		return nil, err
	}

	return record.View(env), nil
}
