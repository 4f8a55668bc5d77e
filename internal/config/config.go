package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort        int
	DatabasePath      string
	ImageDir          string // Base path for uploaded product images
	JWTSecret         string
	JWTExpiresDays    int // Token validity
	CookieExpiresDays int // Session cookie validity
	BcryptCost        int
	Production        bool
}

// Load loads configuration from environment variables or sets defaults.
// The JWT secret has no default: a missing secret is a fatal
// misconfiguration, not something to paper over.
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	jwtDays, err := strconv.Atoi(getEnv("JWT_EXPIRES_IN_DAYS", "90"))
	if err != nil {
		return nil, err
	}

	cookieDays, err := strconv.Atoi(getEnv("JWT_COOKIE_EXPIRES_IN_DAYS", "90"))
	if err != nil {
		return nil, err
	}

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "12"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:        port,
		DatabasePath:      getEnv("DATABASE_PATH", "./shopcore.db"),
		ImageDir:          getEnv("IMAGE_DIR", "./images"),
		JWTSecret:         secret,
		JWTExpiresDays:    jwtDays,
		CookieExpiresDays: cookieDays,
		BcryptCost:        cost,
		Production:        getEnv("APP_ENV", "development") == "production",
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
