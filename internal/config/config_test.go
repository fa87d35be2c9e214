package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.AstroAPIKey)
	assert.Empty(t, cfg.TideAPIKey)
	assert.Equal(t, "America/Los_Angeles", cfg.TimeZone)
	assert.Equal(t, "data/cache.json", cfg.CachePath)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, 15, cfg.PageSeconds)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Zero(t, cfg.RunInterval)
	assert.False(t, cfg.ForceAstronomy)
	assert.False(t, cfg.ForceTides)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ASTRO_API_KEY", "astro-key")
	t.Setenv("TIDE_API_KEY", "tide-key")
	t.Setenv("TIDE_LAT", "50.2083")
	t.Setenv("TIDE_LON", "-5.4909")
	t.Setenv("TIME_ZONE", "Europe/London")
	t.Setenv("FORCE_ASTRO", "true")
	t.Setenv("FORCE_TIDES", "1")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("RUN_INTERVAL", "30m")
	t.Setenv("PAGE_SECONDS", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "astro-key", cfg.AstroAPIKey)
	assert.Equal(t, "tide-key", cfg.TideAPIKey)
	assert.InDelta(t, 50.2083, cfg.Lat, 1e-9)
	assert.InDelta(t, -5.4909, cfg.Lon, 1e-9)
	assert.Equal(t, "Europe/London", cfg.TimeZone)
	assert.True(t, cfg.ForceAstronomy)
	assert.True(t, cfg.ForceTides)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 30*time.Minute, cfg.RunInterval)
	assert.Equal(t, 20, cfg.PageSeconds)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("unparseable latitude", func(t *testing.T) {
		t.Setenv("TIDE_LAT", "north-a-bit")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		t.Setenv("TIDE_LAT", "123.4")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("HTTP_TIMEOUT", "soonish")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad interval", func(t *testing.T) {
		t.Setenv("RUN_INTERVAL", "whenever")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestForceFlagsIgnoreGarbage(t *testing.T) {
	t.Setenv("FORCE_ASTRO", "yes please")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.ForceAstronomy)
}
