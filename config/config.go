package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Data       DataConfig
	Session    SessionConfig
	CORS       CORSConfig
	Reconciler ReconcilerConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

// DataConfig locates the flat JSON documents the service persists.
type DataConfig struct {
	Dir string
}

type SessionConfig struct {
	Secret       string
	CookieName   string
	Expiry       time.Duration
	CookieSecure bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// ReconcilerConfig controls the background rating reconciler.
// An empty schedule disables it.
type ReconcilerConfig struct {
	Schedule string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "data"),
		},
		Session: SessionConfig{
			Secret:       getEnv("SESSION_SECRET", "change-this-secret-key-later"),
			CookieName:   getEnv("SESSION_COOKIE_NAME", "session"),
			Expiry:       parseDuration(getEnv("SESSION_EXPIRY", "168h")),
			CookieSecure: getEnv("SESSION_COOKIE_SECURE", "false") == "true",
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Reconciler: ReconcilerConfig{
			Schedule: getEnv("RECONCILE_SCHEDULE", ""),
		},
	}

	return config, nil
}

// BusinessesFile returns the path of the business collection document.
func (c *DataConfig) BusinessesFile() string {
	return filepath.Join(c.Dir, "businesses.json")
}

// ReviewsFile returns the path of the review collection document.
func (c *DataConfig) ReviewsFile() string {
	return filepath.Join(c.Dir, "reviews.json")
}

// UsersFile returns the path of the user collection document.
func (c *DataConfig) UsersFile() string {
	return filepath.Join(c.Dir, "users.json")
}

// CouponsFile returns the path of the coupon collection document.
func (c *DataConfig) CouponsFile() string {
	return filepath.Join(c.Dir, "coupons.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default 168h", s)
		return 168 * time.Hour
	}
	return duration
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for i := 0; i < len(s); {
		end := i
		for end < len(s) && s[end] != ',' {
			end++
		}
		result = append(result, s[i:end])
		i = end + 1
	}
	return result
}
