package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, first non-zero value winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App: App{TokenSignKey: "from-env"},
		},
		&StructuredConfig{
			App:    App{TokenSignKey: "from-flags", TokenDuration: time.Hour},
			Server: Server{HTTPAddress: "localhost:8080"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the already-set value, so env wins over flags here
	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// TestWithJSON_NoPathSpecified verifies that withJSON is a no-op when no
// previously loaded config carries a JSON file path.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_BadPathSetsError verifies that a dangling JSON path is
// recorded as a builder error instead of being silently ignored.
func TestWithJSON_BadPathSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/cfg.json"})

	b.withJSON()

	require.Error(t, b.err)
}

// TestClientConfigValidate verifies ClientConfig validation rules.
func TestClientConfigValidate(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 15 * time.Second},
		Workers: ClientWorkers{RefreshInterval: 5 * time.Minute},
	}
	require.NoError(t, valid.validate())

	noAddr := &ClientConfig{}
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)

	badInterval := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080"},
		Workers: ClientWorkers{RefreshInterval: -time.Minute},
	}
	assert.ErrorIs(t, badInterval.validate(), ErrInvalidWorkerConfigs)
}
