package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, 10*time.Second, cfg.PollInterval)
	require.Equal(t, 5*time.Second, cfg.FeedCacheTTL)
}

func TestOverridesFromEnv(t *testing.T) {
	t.Setenv("FLP_ADDR", ":9999")
	t.Setenv("FLP_POLL_INTERVAL", "30s")
	t.Setenv("FLP_FEED_API_KEY", "secret")

	cfg := Load()
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, 30*time.Second, cfg.PollInterval)
	require.Equal(t, "secret", cfg.FeedAPIKey)
}

func TestBadDurationFallsBack(t *testing.T) {
	t.Setenv("FLP_POLL_INTERVAL", "not-a-duration")
	cfg := Load()
	require.Equal(t, 10*time.Second, cfg.PollInterval)
}
