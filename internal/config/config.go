// Package config loads service configuration from the environment,
// with a .env file picked up when present.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	FeedBaseURL  string
	FeedAPIKey   string
	FeedCacheTTL time.Duration
	PollInterval time.Duration
	CatalogPath  string
	Debug        bool
}

func Load() Config {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	return Config{
		Addr:         getEnv("FLP_ADDR", ":8080"),
		FeedBaseURL:  getEnv("FLP_FEED_BASE_URL", "https://v3.football.api-sports.io"),
		FeedAPIKey:   os.Getenv("FLP_FEED_API_KEY"),
		FeedCacheTTL: getDuration("FLP_FEED_CACHE_TTL", 5*time.Second),
		PollInterval: getDuration("FLP_POLL_INTERVAL", 10*time.Second),
		CatalogPath:  os.Getenv("FLP_CATALOG_PATH"),
		Debug:        os.Getenv("FLP_DEBUG") != "",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
