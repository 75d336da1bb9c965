// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const (
	maxTxAttempts = 3
	txRetryDelay  = 50 * time.Millisecond
)

// DB is a database handle shared by all SQL repositories. It knows its
// dialect so that queries get the right placeholder format and driver
// errors get the right translation.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// newDB wraps conn for the given dialect.
func newDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Dollar
	if dialect == DialectSQLite {
		placeholder = sq.Question
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Dialect reports the SQL backend of the handle.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the handle's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	dialect := migrations.DialectPostgres
	if db.dialect == DialectSQLite {
		dialect = migrations.DialectSQLite
	}

	return migrations.Migrate(ctx, db.DB, dialect)
}

// querier is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txCtxKey struct{}

// conn returns the transaction bound to ctx by WithTx, or the pool.
func (db *DB) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

// WithTx implements [Transactor]. It begins a transaction, runs fn with a
// context carrying it, then commits on success or rolls back on error or
// panic. Panics are rethrown. A call nested inside another WithTx joins the
// outer transaction.
//
// Failures classified as [Retryable] (serialization failures, deadlocks,
// busy database) restart the whole transaction, up to three attempts.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; ; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || attempt == maxTxAttempts || !db.isRetryable(err) {
			return err
		}

		log.Warn().Err(err).Str("func", "*DB.WithTx").Int("attempt", attempt).Msg("retrying transaction")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * txRetryDelay):
		}
	}
}

func (db *DB) runTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	return fn(context.WithValue(ctx, txCtxKey{}, tx))
}

func (db *DB) isRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// isUniqueViolation reports whether err is a unique constraint violation of
// the handle's dialect.
func (db *DB) isUniqueViolation(err error) bool {
	if db.dialect == DialectSQLite {
		return sqliteUniqueViolation(err)
	}
	return postgresUniqueViolation(err)
}
