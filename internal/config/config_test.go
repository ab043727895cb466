package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "ADMIN_PASSWORD", "SERVER_PORT", "MIGRATIONS_PATH", "DEFAULT_LOCALE"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/carbonx?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "carbonx2026", cfg.AdminPassword)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "db/migrations", cfg.MigrationsPath)
	assert.Equal(t, "en", cfg.DefaultLocale)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://db:5432/hackathon?sslmode=disable")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "postgres://db:5432/hackathon?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.AdminPassword)
	assert.Equal(t, "9090", cfg.ServerPort)
}

func TestLoad_InvalidDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "://missing-scheme")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_InvalidServerPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "eighty")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
}
