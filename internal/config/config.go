package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment
type Config struct {
	ListenAddr        string
	AdminPasswordHash string // hex-encoded SHA-256 of the admin password
	JWTSecret         string
	Location          *time.Location
}

// Load reads .env (when present) and builds the configuration
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:        getEnv("LISTEN_ADDR", ":8080"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", "472a30d4eaa7050fdbbeb8a00f0a50c9b0c94c04bfac65a985075b72f120b2b1"),
		JWTSecret:         getEnv("JWT_SECRET", "kelime-uygulama-secret"),
	}

	// Study days roll over at local midnight for the students
	tz := getEnv("APP_TIMEZONE", "Europe/Istanbul")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	cfg.Location = loc

	return cfg
}

// Today returns the current study date in the configured timezone
func (c *Config) Today() time.Time {
	return time.Now().In(c.Location)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
