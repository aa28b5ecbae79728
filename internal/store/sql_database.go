// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a pooled database/sql handle together with the driver-specific
// pieces the repositories need: the SQL builder configured with the right
// placeholder format and the error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the driver of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name of db.
func (db *DB) Driver() string {
	return db.driver
}

// HealthCheck pings the database.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}

// openPool opens a connection pool for driver and caps the number of open
// connections at maxConns. Callers beyond the cap wait for a free connection.
func openPool(ctx context.Context, driver, dsn string, maxConns int, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", driver).Msg("error occured during database connection")
		return nil, err
	}

	conn.SetMaxOpenConns(maxConns)
	conn.SetMaxIdleConns(maxConns)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", driver).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}

	log.Info().Str("driver", driver).Int("max_conns", maxConns).Msg("connected to database successfully")
	return conn, nil
}
