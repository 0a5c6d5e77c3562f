package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_SSLMODE", "DB_MAX_OPEN_CONNS", "DB_MAX_LIFETIME", "RUN_MIGRATIONS", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.MaxLifetime)
	assert.True(t, cfg.Database.RunMigrations)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=news_board sslmode=disable", cfg.Database.GetDSN())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_MAX_OPEN_CONNS", "10")
	t.Setenv("DB_MAX_LIFETIME", "90s")
	t.Setenv("RUN_MIGRATIONS", "false")
	t.Setenv("DATABASE_URL", "postgres://board:secret@db:5432/board?sslmode=disable")
	t.Setenv("LOG_FORMAT", "pretty")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 90*time.Second, cfg.Database.MaxLifetime)
	assert.False(t, cfg.Database.RunMigrations)
	assert.Equal(t, "pretty", cfg.Log.Format)
	assert.Equal(t, "postgres://board:secret@db:5432/board?sslmode=disable", cfg.Database.GetDSN())
}

func TestLoad_IgnoresUnparseableValues(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		db      DatabaseConfig
		wantErr string
	}{
		{
			name: "valid parts",
			db:   DatabaseConfig{Host: "localhost", Name: "board", MaxOpenConns: 1},
		},
		{
			name: "url without parts",
			db:   DatabaseConfig{URL: "postgres://localhost/board", MaxOpenConns: 1},
		},
		{
			name:    "missing host",
			db:      DatabaseConfig{Name: "board", MaxOpenConns: 1},
			wantErr: "DB_HOST is required",
		},
		{
			name:    "missing name",
			db:      DatabaseConfig{Host: "localhost", MaxOpenConns: 1},
			wantErr: "DB_NAME is required",
		},
		{
			name:    "zero pool",
			db:      DatabaseConfig{Host: "localhost", Name: "board"},
			wantErr: "DB_MAX_OPEN_CONNS must be positive",
		},
		{
			name:    "negative idle",
			db:      DatabaseConfig{Host: "localhost", Name: "board", MaxOpenConns: 1, MaxIdleConns: -1},
			wantErr: "DB_MAX_IDLE_CONNS must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Database: tt.db}
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
