package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "memory", cfg.Session.Driver)
	assert.Equal(t, 8*time.Hour, cfg.Session.Expiry())
	assert.Equal(t, 800*time.Millisecond, cfg.Auth.LoginDelay())
	assert.False(t, cfg.Export.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("AUTH_LOGIN_DELAY_MS", "0")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("EXPORT_S3_BUCKET", "reportes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, time.Duration(0), cfg.Auth.LoginDelay())
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.True(t, cfg.Export.Enabled())
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss", DBName: "gpro", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:p%40ss@db:5432/gpro?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
