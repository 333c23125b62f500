package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	v := newViper()

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.NotEmpty(t, cfg.JWTSecret, "development falls back to a default secret")
}

func TestFromViperOverrides(t *testing.T) {
	v := newViper()
	v.Set("DB_DRIVER", "Postgres")
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	v.Set("JWT_SECRET", "s3cret")
	v.Set("SEED_DATA", "true")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.True(t, cfg.SeedData)
}

func TestFromViperRejectsMissingSecretInProduction(t *testing.T) {
	v := newViper()
	v.Set("APP_ENV", "production")
	v.Set("JWT_SECRET", "")

	_, err := FromViper(v)
	assert.Error(t, err)
}

func TestFromViperRejectsUnknownDriver(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "oracle")
	v.Set("JWT_SECRET", "x")
	v.Set("RATE_LIMIT_RPS", 1)
	v.Set("RATE_LIMIT_BURST", 1)

	_, err := FromViper(v)
	assert.Error(t, err)
}

func TestDialectSqlite(t *testing.T) {
	d, err := Dialect(Config{DBDriver: "sqlite", DBName: "file::memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	_, err = Dialect(Config{DBDriver: "mssql"})
	assert.Error(t, err)
}
