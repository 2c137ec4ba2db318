package config

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsProduction(t *testing.T) {
	tests := []struct {
		name        string
		render      string
		environment string
		want        bool
	}{
		{"neither", "", "", false},
		{"render present", "true", "", true},
		{"environment production", "", "production", true},
		{"environment other", "", "staging", false},
		{"environment case sensitive", "", "Production", false},
		{"both", "1", "production", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RENDER", tt.render)
			t.Setenv("ENVIRONMENT", tt.environment)
			assert.Equal(t, tt.want, IsProduction())
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RENDER", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	assert.False(t, cfg.Production)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, devSessionSecret, cfg.SessionSecret)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSOrigins())
	assert.True(t, cfg.SeedOnStartup)
	assert.Empty(t, cfg.Problems)
}

func TestLoad_InvalidValuesFallBackAndAreReported(t *testing.T) {
	t.Setenv("RENDER", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("SEED_ON_STARTUP", "sometimes")
	t.Setenv("DB_MAX_CONNS", "ten")
	t.Setenv("DB_MAX_CONN_LIFETIME", "forever")
	t.Setenv("DB_MIN_CONNS", "2")

	cfg := Load()

	assert.True(t, cfg.SeedOnStartup)
	assert.Equal(t, int32(10), cfg.DB.MaxConns)
	assert.Equal(t, int32(2), cfg.DB.MinConns)
	assert.Equal(t, time.Hour, cfg.DB.MaxConnLife)
	require.Len(t, cfg.Problems, 3)
	assert.Contains(t, cfg.Problems[0].Error(), "SEED_ON_STARTUP")
	assert.Contains(t, cfg.Problems[1].Error(), "DB_MAX_CONNS")
	assert.Contains(t, cfg.Problems[2].Error(), "DB_MAX_CONN_LIFETIME")
}

func TestLoad_ProductionRequiresExplicitSecret(t *testing.T) {
	t.Setenv("RENDER", "true")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	assert.True(t, cfg.Production)
	assert.Equal(t, "production", cfg.Env)
	assert.Empty(t, cfg.SessionSecret)
}

func TestCORSOrigins_TrimsEntries(t *testing.T) {
	cfg := &Config{FrontendURL: " https://onlearn.app/ , ,http://localhost:5173"}
	assert.Equal(t, []string{"https://onlearn.app", "http://localhost:5173"}, cfg.CORSOrigins())
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "onlearn", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/onlearn?sslmode=disable", cfg.DSN())

	cfg.URL = "postgres://render/onlearn"
	assert.Equal(t, "postgres://render/onlearn", cfg.DSN())
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestAutoMigrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(pgxmock.NewResult("CREATE", 0))

	assert.NoError(t, AutoMigrate(context.Background(), mock, quietLogger()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAutoMigrate_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE`).WillReturnError(errors.New("permission denied"))

	err = AutoMigrate(context.Background(), mock, quietLogger())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unable to apply migrations")
}
