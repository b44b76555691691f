// Package database provides database connectivity checks for the
// goServiceKit service. The service stores nothing; the only database
// interaction is an optional reachability probe, so a plain single
// connection is opened per probe instead of a pool.
package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/chybatronik/goServiceKit/internal/config"
	"github.com/chybatronik/goServiceKit/internal/health"
	"github.com/chybatronik/goServiceKit/pkg/errors"
)

// Ping connects to the database at url, pings it, and closes the connection.
// Failures are mapped into the error taxonomy.
func Ping(ctx context.Context, url string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return MapError(err)
	}
	defer conn.Close(ctx)

	if err := conn.Ping(ctx); err != nil {
		return MapError(err)
	}
	return nil
}

// Probe adapts Ping into a health.CheckFunc using the database section of
// the configuration.
func Probe(cfg config.DatabaseConfig) health.CheckFunc {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return func() error {
		return Ping(context.Background(), cfg.URL, timeout)
	}
}

// MapError classifies a database failure into the taxonomy without exposing
// driver internals in the message.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if isConnectionError(err) {
		return errors.WrapNetwork("database unreachable", err)
	}
	return errors.WrapDatabase("database operation failed", err)
}
