// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-request-inbox/internal/config"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/migrations"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a PostgreSQL connection for postgres:// URLs and keyword
// DSNs, and a SQLite database for anything that looks like a file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch DialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
	}
}

// DialectFromDSN guesses the backend from the shape of dsn. It returns an
// empty dialect for an empty dsn.
func DialectFromDSN(dsn string) Dialect {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return DialectPostgres
	default:
		return DialectSQLite
	}
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.gooseDialect())
}

func (db *DB) gooseDialect() string {
	if db.dialect == DialectSQLite {
		return migrations.DialectSQLite
	}
	return migrations.DialectPostgres
}

// placeholder returns the bind variable style understood by the driver.
func (db *DB) placeholder() squirrel.PlaceholderFormat {
	if db.dialect == DialectSQLite {
		return squirrel.Question
	}
	return squirrel.Dollar
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
