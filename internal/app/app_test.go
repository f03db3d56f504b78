//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kooply/label-service/config"
	"github.com/kooply/label-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with default config",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
		},
		{
			name: "creates router with API key auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
		},
		{
			name: "creates router with bearer auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Auth: config.AuthConfig{
					Enabled:      true,
					JWTSecretKey: "secret",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)
			require.NotNil(t, router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestInitializeServicesWithoutDatabase(t *testing.T) {
	components := InitializeServices(config.Load(), nil)

	require.NotNil(t, components)
	require.NotNil(t, components.Labels)
	require.NotNil(t, components.Export)

	// Generation works against the in-memory allocator.
	batch, err := components.Labels.GenerateBatch(context.Background(), service.GenerateBatchInput{
		Supplier:      'B',
		PackagingType: 'M',
		Size:          '2',
		At:            time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		Count:         2,
	})
	require.NoError(t, err)
	assert.Equal(t, "KBM2b1", batch.Prefix)
	assert.Len(t, batch.Labels, 2)

	// Lookups require persistence and degrade with a clear error.
	_, err = components.Labels.Get(context.Background(), batch.Labels[0].LabelID)
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}

func TestInitializeDatabaseDisabled(t *testing.T) {
	assert.Nil(t, InitializeDatabase(config.DatabaseConfig{Enabled: false}))
}

func TestInitializeRouterWithoutDatabase(t *testing.T) {
	cfg := config.Load()
	components := InitializeRouter(InitializeServices(cfg, nil), nil, cfg)

	require.NotNil(t, components)
	assert.NotNil(t, components.Handler)
	assert.NotNil(t, components.HealthHandler)
	assert.Equal(t, cfg.Server.RateLimit, components.Config.RateLimit)
}
