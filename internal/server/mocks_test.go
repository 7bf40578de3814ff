package server

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/confgate/internal/config"
	"github.com/pscheid92/confgate/internal/domain"
	"github.com/pscheid92/confgate/internal/secret"
	"github.com/stretchr/testify/require"
)

const testKey = "open-sesame"

// --- Mock implementations ---

type mockResolver struct {
	listAppsFn func(ctx context.Context, env string) ([]string, error)
	getAppFn   func(ctx context.Context, env, app string) (domain.ConfigView, error)
	listCalls  int
	getCalls   int
}

func (m *mockResolver) ListApps(ctx context.Context, env string) ([]string, error) {
	m.listCalls++
	if m.listAppsFn != nil {
		return m.listAppsFn(ctx, env)
	}
	return nil, errors.New("not implemented")
}

func (m *mockResolver) GetApp(ctx context.Context, env, app string) (domain.ConfigView, error) {
	m.getCalls++
	if m.getAppFn != nil {
		return m.getAppFn(ctx, env, app)
	}
	return nil, errors.New("not implemented")
}

func testSecret(t *testing.T) *secret.Secret {
	t.Helper()
	path := filepath.Join(t.TempDir(), "confgate.pass")
	require.NoError(t, os.WriteFile(path, []byte(testKey+"\n"), 0o600))

	sec, err := secret.LoadFromFile(path)
	require.NoError(t, err)
	return sec
}

func newTestServer(t *testing.T, resolver configResolver, healthChecks ...HealthCheck) *Server {
	t.Helper()
	cfg := &config.Config{
		AppEnv:       "test",
		ListenHost:   "127.0.0.1",
		Port:         "8000",
		Environments: []string{"dev", "test", "prod"},
	}
	return NewServer(cfg, resolver, testSecret(t), healthChecks, clockwork.NewFakeClock())
}
