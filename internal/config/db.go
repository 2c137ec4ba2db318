package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	URL         string // DATABASE_URL, takes precedence over the parts below
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	MaxConnLife time.Duration
}

// DSN returns a connection string compatible with pgx
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// ConnectDB establishes a connection pool to PostgreSQL, retrying while the
// database is still starting up
func ConnectDB(ctx context.Context, cfg DBConfig, logger *logrus.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLife

	maxRetries := 5
	retryInterval := 5 * time.Second

	var pool *pgxpool.Pool
	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = pool.Ping(pingCtx)
			cancel()
			if err == nil {
				logger.Info("successfully connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		logger.WithFields(logrus.Fields{"attempt": i + 1, "max": maxRetries, "error": err.Error()}).
			Warnf("failed to connect to database, retrying in %v", retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// Schema creates the tables if they don't exist. The UNIQUE constraint on
// enrollments is what keeps concurrent enroll requests from double-inserting.
const Schema = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('student', 'teacher', 'admin')) DEFAULT 'student',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS courses (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		teacher_id INTEGER NOT NULL REFERENCES users(id),
		is_published BOOLEAN NOT NULL DEFAULT FALSE,
		image TEXT,
		rating DOUBLE PRECISION,
		review_count INTEGER,
		price TEXT,
		level TEXT
	);

	CREATE TABLE IF NOT EXISTS enrollments (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		course_id INTEGER NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		progress_percent INTEGER NOT NULL DEFAULT 0 CHECK (progress_percent BETWEEN 0 AND 100),
		CONSTRAINT uq_enrollments_user_course UNIQUE (user_id, course_id)
	);

	CREATE TABLE IF NOT EXISTS comments (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		course_id INTEGER NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		text TEXT NOT NULL CHECK (length(btrim(text)) > 0),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_courses_is_published ON courses(is_published);
	CREATE INDEX IF NOT EXISTS idx_enrollments_user_id ON enrollments(user_id);
	CREATE INDEX IF NOT EXISTS idx_comments_course_id ON comments(course_id);
`

// Execer is satisfied by *pgxpool.Pool
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// AutoMigrate applies Schema
func AutoMigrate(ctx context.Context, db Execer, logger *logrus.Logger) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	logger.Info("AutoMigrate applied successfully")
	return nil
}
