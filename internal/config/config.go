package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	LedgerAPIURL  string
	LedgerTimeout time.Duration
	DatabaseURL   string
	PollInterval  time.Duration
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local runs.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file, using system environment variables")
	}

	return Config{
		Port:          getEnv("PORT", ":8000"),
		LedgerAPIURL:  os.Getenv("LEDGER_API_URL"),
		LedgerTimeout: getDuration("LEDGER_TIMEOUT", 10*time.Second),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		PollInterval:  getDuration("POLL_INTERVAL", 30*time.Second),
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
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return d
}
