package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SlotAnchorNow, cfg.SlotAnchor)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
}

func TestLoadRateLimitFromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestLoadRateLimitMalformed(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "fast")
	t.Setenv("RATE_LIMIT_BURST", "lots")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
}

func TestLoadSlotAnchorFallback(t *testing.T) {
	t.Setenv("SLOT_ANCHOR", "yesterday")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SlotAnchorNow, cfg.SlotAnchor)
}
