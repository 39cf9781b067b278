package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "freshstock", cfg.AppName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "freshstock.db", cfg.DBPath)
	assert.True(t, cfg.Debug())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_MAX_OPEN_CONN", "25")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, 25, cfg.DBMaxOpenConn)
	assert.False(t, cfg.Debug())
}

func TestGetenvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("DATABASE_MAX_OPEN_CONN", "not-a-number")

	cfg := Load()
	assert.Equal(t, 10, cfg.DBMaxOpenConn)
}
