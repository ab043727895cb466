package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	AdminPassword  string
	ServerPort     string
	MigrationsPath string
	DefaultLocale  string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		ServerPort:     os.Getenv("SERVER_PORT"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all business rules to the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/carbonx?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.AdminPassword) == "" {
		// Matches the password the original deployment shipped with. A real
		// deployment must override it; the admin gate is a plain string
		// comparison with no session or rate limit.
		c.AdminPassword = "carbonx2026"
	}

	if strings.TrimSpace(c.ServerPort) == "" {
		c.ServerPort = "8080"
	}
	for _, r := range c.ServerPort {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: SERVER_PORT must be a port number (digits only)")
		}
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "db/migrations"
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}

	return nil
}
