// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" database/sql driver
)

// sqliteBusyTimeout makes concurrent writers wait for the file lock instead
// of failing with SQLITE_BUSY.
const sqliteBusyTimeout = "_busy_timeout=5000"

// NewConnectSQLite opens a SQLite database file. It is meant for local runs
// and tests; PostgreSQL is the production store.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := openPool(ctx, config.DriverSQLite, sqliteDSN(cfg.ConnectionString()), cfg.MaxConns, log)
	if err != nil {
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	return &DB{
		DB:                 conn,
		driver:             config.DriverSQLite,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}, nil
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteBusyTimeout
	}
	return "file:" + strings.TrimPrefix(dsn, "file:") + "?" + sqliteBusyTimeout
}
