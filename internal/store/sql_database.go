// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/MKhiriev/go-artist-manager/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// poolOpener opens a connection pool to the named database. An empty name
// means the database named in the DSN.
type poolOpener func(ctx context.Context, database string) (*sql.DB, error)

// schemaMigrator brings the schema of the working database up to date.
type schemaMigrator func(ctx context.Context, db *sql.DB) error

// DB is the connection manager. It owns two pools: the server pool bound
// to the maintenance database of the DSN, used to create databases, and the
// working pool bound to the selected application database, used by every
// repository.
//
// All statements go through [DB.Exec], [DB.Query] or [DB.QueryRow], which
// retry transient failures with a fixed delay. DB is safe for concurrent
// use.
type DB struct {
	cfg                config.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	open    poolOpener
	migrate schemaMigrator

	mu          sync.RWMutex
	server      *sql.DB
	pool        *sql.DB
	selected    string
	schemaReady bool
	closed      bool
}

// NewDB opens the server pool described by cfg.DSN and returns a manager
// with no database selected yet.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	db := newDB(cfg, log, openPostgres(cfg), migrations.Migrate)
	if err := db.connect(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

func newDB(cfg config.DB, log *logger.Logger, open poolOpener, migrate schemaMigrator) *DB {
	return &DB{
		cfg:                cfg,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
		open:               open,
		migrate:            migrate,
	}
}

func (db *DB) connect(ctx context.Context) error {
	server, err := db.open(ctx, "")
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.connect").Msg("error connecting to database server")
		return fmt.Errorf("error connecting to database server: %w", err)
	}

	db.mu.Lock()
	db.server = server
	db.mu.Unlock()

	db.logger.Info().Str("func", "*DB.connect").Msg("connected to database server successfully")
	return nil
}

// openPostgres returns a poolOpener that builds pgx-backed pools from cfg.
// Each pool is pinged through the retry loop before it is handed out.
func openPostgres(cfg config.DB) poolOpener {
	return func(ctx context.Context, database string) (*sql.DB, error) {
		connConfig, err := pgx.ParseConfig(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("error parsing database DSN: %w", err)
		}
		if database != "" {
			connConfig.Database = database
		}
		connConfig.ConnectTimeout = cfg.ConnectTimeout

		pool := stdlib.OpenDB(*connConfig)
		pool.SetMaxOpenConns(cfg.MaxOpenConns)
		pool.SetConnMaxIdleTime(cfg.IdleTimeout)

		err = withRetry(ctx, "ping", retrySettingsFrom(cfg), NewPostgresErrorClassifier(), func(ctx context.Context) error {
			return pool.PingContext(ctx)
		})
		if err != nil {
			_ = pool.Close()
			return nil, err
		}

		return pool, nil
	}
}

// EnsureDatabase creates the database name unless it already exists. A
// concurrent creation by another process counts as success.
func (db *DB) EnsureDatabase(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if name == "" {
		return ErrInvalidDatabaseName
	}

	db.mu.RLock()
	server, closed := db.server, db.closed
	db.mu.RUnlock()
	if closed {
		return ErrDatabaseClosed
	}

	var exists bool
	err := db.run(ctx, databaseExists, nil, func(ctx context.Context) error {
		return server.QueryRowContext(ctx, databaseExists, name).Scan(&exists)
	})
	if err != nil {
		log.Err(err).Str("func", "*DB.EnsureDatabase").Str("database", name).Msg("error probing database")
		return err
	}
	if exists {
		return nil
	}

	statement := "CREATE DATABASE " + pgx.Identifier{name}.Sanitize()
	err = db.run(ctx, statement, nil, func(ctx context.Context) error {
		_, err := server.ExecContext(ctx, statement)
		return err
	})
	if err != nil && postgresError(err) != pgerrcode.DuplicateDatabase {
		log.Err(err).Str("func", "*DB.EnsureDatabase").Str("database", name).Msg("error creating database")
		return err
	}

	log.Info().Str("func", "*DB.EnsureDatabase").Str("database", name).Msg("database is ready")
	return nil
}

// SelectDatabase points the working pool at name. Selecting the current
// database is a no-op; switching closes the previous working pool.
func (db *DB) SelectDatabase(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if name == "" {
		return ErrInvalidDatabaseName
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return ErrDatabaseClosed
	}
	if db.pool != nil && db.selected == name {
		return nil
	}

	pool, err := db.open(ctx, name)
	if err != nil {
		log.Err(err).Str("func", "*DB.SelectDatabase").Str("database", name).Msg("error opening database pool")
		return fmt.Errorf("error selecting database %s: %w", name, err)
	}

	if db.pool != nil {
		if err = db.pool.Close(); err != nil {
			log.Warn().Err(err).Str("func", "*DB.SelectDatabase").Str("database", db.selected).Msg("error closing previous pool")
		}
	}

	db.pool = pool
	db.selected = name
	db.schemaReady = false

	log.Info().Str("func", "*DB.SelectDatabase").Str("database", name).Msg("database selected")
	return nil
}

// Selected returns the name of the working database, or "" if none.
func (db *DB) Selected() string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.selected
}

// InitializeSchema applies the embedded migrations to the working database
// once per selected database.
func (db *DB) InitializeSchema(ctx context.Context) error {
	log := logger.FromContext(ctx)

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return ErrDatabaseClosed
	}
	if db.pool == nil {
		return ErrNoDatabaseSelected
	}
	if db.schemaReady {
		return nil
	}

	if err := db.migrate(ctx, db.pool); err != nil {
		log.Err(err).Str("func", "*DB.InitializeSchema").Msg("error initializing schema")
		return err
	}
	db.schemaReady = true

	log.Info().Str("func", "*DB.InitializeSchema").Str("database", db.selected).Msg("schema initialized")
	return nil
}

// Exec runs a statement that returns no rows on the working database.
func (db *DB) Exec(ctx context.Context, statement string, args []any, opts ...RetryOption) (sql.Result, error) {
	var result sql.Result
	err := db.execute(ctx, statement, opts, func(ctx context.Context, pool *sql.DB) error {
		var err error
		result, err = pool.ExecContext(ctx, statement, args...)
		return err
	})

	return result, err
}

// Query runs a statement and hands the rows to scan. Rows are closed and
// their iteration error checked after scan returns. If a transient failure
// is retried, scan is called again on the new rows, so it must reset any
// state it accumulates.
func (db *DB) Query(ctx context.Context, statement string, args []any, scan func(*sql.Rows) error, opts ...RetryOption) error {
	return db.execute(ctx, statement, opts, func(ctx context.Context, pool *sql.DB) error {
		rows, err := pool.QueryContext(ctx, statement, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		if err = scan(rows); err != nil {
			return err
		}

		return rows.Err()
	})
}

// QueryRow runs a statement expected to return at most one row and hands
// it to scan. [sql.ErrNoRows] from scan is returned unchanged.
func (db *DB) QueryRow(ctx context.Context, statement string, args []any, scan func(*sql.Row) error, opts ...RetryOption) error {
	return db.execute(ctx, statement, opts, func(ctx context.Context, pool *sql.DB) error {
		return scan(pool.QueryRowContext(ctx, statement, args...))
	})
}

// execute resolves the working pool and runs fn through the retry loop.
func (db *DB) execute(ctx context.Context, statement string, opts []RetryOption, fn func(ctx context.Context, pool *sql.DB) error) error {
	db.mu.RLock()
	pool, closed := db.pool, db.closed
	db.mu.RUnlock()

	if closed {
		return ErrDatabaseClosed
	}
	if pool == nil {
		return ErrNoDatabaseSelected
	}

	return db.run(ctx, statement, opts, func(ctx context.Context) error {
		return fn(ctx, pool)
	})
}

func (db *DB) run(ctx context.Context, statement string, opts []RetryOption, fn func(ctx context.Context) error) error {
	settings := retrySettingsFrom(db.cfg)
	for _, opt := range opts {
		opt(&settings)
	}

	err := withRetry(ctx, statement, settings, db.errorClassificator, fn)
	if errors.Is(err, ErrRetriesExhausted) {
		logger.FromContext(ctx).Err(err).Str("func", "*DB.run").Msg("giving up on statement")
	}

	return err
}

// Close releases both pools. Calling Close more than once is safe.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return nil
	}
	db.closed = true

	var errs []error
	if db.pool != nil {
		errs = append(errs, db.pool.Close())
		db.pool = nil
	}
	if db.server != nil {
		errs = append(errs, db.server.Close())
		db.server = nil
	}

	return errors.Join(errs...)
}

// execAffectingOne runs statement and reports sql.ErrNoRows, mapped
// through mapErr, when no row matched.
func execAffectingOne(ctx context.Context, db *DB, funcName string, mapErr func(error) error, statement string, args ...any) error {
	result, err := db.Exec(ctx, statement, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error executing statement")
		return mapErr(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return mapErr(sql.ErrNoRows)
	}

	return nil
}
