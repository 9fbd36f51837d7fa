package repository

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/UnknownOlympus/focuslearn/internal/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DSN builds a PostgreSQL connection URL from its parts.
func DSN(host, port, username, password, dbName string) string {
	dbURL := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + dbName,
		RawQuery: "sslmode=disable",
	}

	return dbURL.String()
}

// NewDatabase creates a new PostgreSQL database connection pool using the provided host, port, username,
// password, and database name. The first connection is retried a few times so that the service survives
// a database that starts slower than the application.
func NewDatabase(log *slog.Logger, host, port, username, password, dbName string) (*pgxpool.Pool, error) {
	const retryTimeout = 2 * time.Second
	const retries = 3

	var err error
	var dbpool *pgxpool.Pool

	dsn := DSN(host, port, username, password, dbName)

	for index := range retries {
		dbpool, err = Connect(context.Background(), dsn)
		if err == nil {
			return dbpool, nil
		}

		log.Warn("Failed to connect to PostgreSQL, retrying...", "attempt", index+1, "of", retries, "error", err.Error())
		time.Sleep(retryTimeout)
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", retries, err)
}

// Connect opens a pool for the given DSN and verifies it with a ping.
func Connect(pctx context.Context, dsn string) (*pgxpool.Pool, error) {
	var (
		ctxTimeout = 5 * time.Second
		idleTime   = 30 * time.Second
		hcPeriod   = 30 * time.Second
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MinConns = 1
	poolConfig.MaxConnIdleTime = idleTime
	poolConfig.HealthCheckPeriod = hcPeriod

	ctx, cancel := context.WithTimeout(pctx, ctxTimeout)
	defer cancel()

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection to PostgreSQL: %w", err)
	}

	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL DB: %w", err)
	}

	return dbpool, nil
}

func metricsTimer(m *metrics.Metrics, queryType string) func() {
	startTime := time.Now()
	return func() {
		if m == nil {
			return
		}
		m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
	}
}
