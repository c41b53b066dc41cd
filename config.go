package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the marketplace server.
type Config struct {
	Port      string
	JWTSecret string

	// How long a freshly created listing keeps its "new" badge.
	NewListingTTL time.Duration

	// Simulated backend latencies. Set to 0 to disable.
	SignInDelay  time.Duration
	ListingDelay time.Duration
	OrderDelay   time.Duration
	SupportDelay time.Duration

	RequestTimeout time.Duration
}

// LoadConfig reads configuration from the environment, with a .env file as
// fallback for local development.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		NewListingTTL:  getDurationEnv("NEW_LISTING_TTL", 30*time.Second),
		SignInDelay:    getDurationEnv("SIGNIN_DELAY", 1*time.Second),
		ListingDelay:   getDurationEnv("LISTING_DELAY", 2*time.Second),
		OrderDelay:     getDurationEnv("ORDER_DELAY", 2*time.Second),
		SupportDelay:   getDurationEnv("SUPPORT_DELAY", 1*time.Second),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 30*time.Second),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
