package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"inventory-service/pkg/log"
)

// PostgresConfig holds the connection parameters for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// ConnectAttempts is how many times the initial ping is tried. Defaults to 10.
	ConnectAttempts int
	// RetryDelay is the pause between attempts. Defaults to 2s.
	RetryDelay time.Duration
}

// DSN renders cfg as a lib/pq key/value connection string.
func (cfg PostgresConfig) DSN() string {
	parts := []string{
		fmt.Sprintf("host=%s", quoteValue(cfg.Host)),
		fmt.Sprintf("port=%d", cfg.Port),
		fmt.Sprintf("user=%s", quoteValue(cfg.User)),
		fmt.Sprintf("dbname=%s", quoteValue(cfg.Database)),
	}
	if cfg.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", quoteValue(cfg.Password)))
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	parts = append(parts, fmt.Sprintf("sslmode=%s", sslMode))
	return strings.Join(parts, " ")
}

// quoteValue quotes a conninfo value when it contains spaces, quotes or backslashes.
func quoteValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// OpenPostgres opens a pool and waits until the server answers a ping.
func OpenPostgres(ctx context.Context, cfg PostgresConfig, l log.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	attempts := cfg.ConnectAttempts
	if attempts <= 0 {
		attempts = 10
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	for i := range attempts {
		err = db.PingContext(ctx)
		if err == nil {
			l.Infof(ctx, "Connected to Postgres at %s:%d/%s", cfg.Host, cfg.Port, cfg.Database)
			return db, nil
		}
		l.Warnf(ctx, "Postgres connection attempt %d/%d failed: %v", i+1, attempts, err)

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	db.Close()
	return nil, fmt.Errorf("connecting to postgres: %w", err)
}
