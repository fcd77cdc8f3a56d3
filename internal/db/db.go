// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package db // import "github.com/toeirei/dataentry/internal/db"

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// SQL drivers for the supported backends.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// SupportedTypes lists the accepted values for the database type setting.
var SupportedTypes = []string{"sqlite", "postgres", "mysql"}

// driverName maps a database type to the registered database/sql driver.
// The pgx stdlib registers driver name "pgx".
func driverName(dbType string) (string, error) {
	switch dbType {
	case "sqlite", "mysql":
		return dbType, nil
	case "postgres":
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported database type '%s' (want one of %s)", dbType, strings.Join(SupportedTypes, ", "))
	}
}

// Open connects to the store described by dbType and dsn and verifies the
// connection with a ping. The schema is not touched; call EnsureSchema.
// Every failure is wrapped in ErrConnection.
func Open(ctx context.Context, dbType, dsn string) (*BunStore, error) {
	name, err := driverName(dbType)
	if err != nil {
		return nil, wrap(ErrConnection, err)
	}

	start := time.Now()
	sqlDB, err := sqlOpenFunc(name, dsn)
	if err != nil {
		return nil, wrap(ErrConnection, fmt.Errorf("failed to open database: %w", err))
	}
	configurePool(sqlDB, dbType, dsn)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, wrap(ErrConnection, err)
	}
	dbLogf("db: opened %s driver in %s", name, time.Since(start))

	return NewStore(sqlDB, dbType), nil
}

// NewStore wraps an already opened *sql.DB. It is used by Open and by tests
// that bring their own driver (go-sqlmock).
func NewStore(sqlDB *sql.DB, dbType string) *BunStore {
	return &BunStore{
		bun:    createBunDB(sqlDB, dbType),
		dbType: dbType,
	}
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// configurePool applies connection limits. The program is single-threaded and
// owns exactly one connection by default; server backends may raise the limit
// through DATAENTRY_DB_MAX_OPEN_CONNS.
func configurePool(sqlDB *sql.DB, dbType, dsn string) {
	const (
		defaultMaxOpenConns    = 1
		defaultConnMaxLifetime = 30 * time.Minute
	)

	if dbType == "sqlite" {
		// One connection and no recycling: an in-memory database lives and
		// dies with its connection, and a file needs a single writer anyway.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
		dbLogf("db: sqlite pool pinned to one connection (dsn=%s)", dsn)
		return
	}

	maxOpen := envInt("DATAENTRY_DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	connMax := defaultConnMaxLifetime
	if n := envInt("DATAENTRY_DB_CONN_MAX_LIFETIME_SECONDS", -1); n >= 0 {
		connMax = time.Duration(n) * time.Second
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	sqlDB.SetConnMaxLifetime(connMax)
	dbLogf("db: %s pool max open=%d maxLifetime=%s", dbType, maxOpen, connMax)
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
