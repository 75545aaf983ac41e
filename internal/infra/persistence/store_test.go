package persistence

import (
	"io"
	"log/slog"
	"testing"

	"destinos/config"
	"destinos/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func storeParams(t *testing.T, store *config.StoreConfig) StoreParams {
	return StoreParams{
		Lc:       fxtest.NewLifecycle(t),
		Config:   &config.Config{Store: store},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry: metrics.NewRegistry(),
	}
}

func TestNewRepositories_Memory(t *testing.T) {
	for _, store := range []*config.StoreConfig{nil, {Driver: config.StoreDriverMemory}} {
		repos, err := NewRepositories(storeParams(t, store))
		require.NoError(t, err)

		assert.NotNil(t, repos.ProfileRepo)
		assert.NotNil(t, repos.InteractionRepo)
		assert.NotNil(t, repos.PointsRepo)
		assert.NotNil(t, repos.RewardRepo)
		assert.NotNil(t, repos.RedemptionRepo)
		assert.NotNil(t, repos.SubmissionRepo)
		assert.NotNil(t, repos.TxManager)
	}
}

func TestNewRepositories_PostgresRequiresConfig(t *testing.T) {
	_, err := NewRepositories(storeParams(t, &config.StoreConfig{Driver: config.StoreDriverPostgres}))
	assert.Error(t, err)
}

func TestNewRepositories_UnknownDriver(t *testing.T) {
	_, err := NewRepositories(storeParams(t, &config.StoreConfig{Driver: "mongo"}))
	assert.ErrorContains(t, err, "unknown store driver: mongo")
}
