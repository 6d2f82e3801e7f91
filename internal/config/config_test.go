package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Upstream.BaseURL)
	assert.Equal(t, 5, cfg.Search.DefaultLimit)
	assert.Equal(t, 50, cfg.Search.MaxLimit)
	assert.Empty(t, cfg.Search.InitialQuery)
	assert.Equal(t, 60*time.Second, cfg.UpstreamTimeout())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://search.internal:9000")
	t.Setenv("UPSTREAM_TIMEOUT", "15")
	t.Setenv("SEARCH_DEFAULT_LIMIT", "8")
	t.Setenv("SEARCH_MAX_LIMIT", "20")
	t.Setenv("SEARCH_INITIAL_QUERY", "houses in Carlton")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://search.internal:9000", cfg.Upstream.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.UpstreamTimeout())
	assert.Equal(t, 8, cfg.Search.DefaultLimit)
	assert.Equal(t, 20, cfg.Search.MaxLimit)
	assert.Equal(t, "houses in Carlton", cfg.Search.InitialQuery)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SEARCH_DEFAULT_LIMIT", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Search.DefaultLimit)
}

func TestLoad_RejectsInconsistentLimits(t *testing.T) {
	t.Setenv("SEARCH_DEFAULT_LIMIT", "30")
	t.Setenv("SEARCH_MAX_LIMIT", "10")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEARCH_MAX_LIMIT")
}
