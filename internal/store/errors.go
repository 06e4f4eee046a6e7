// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned when no account matches the lookup, or
	// when a conditional update (token redemption, password reset) finds no
	// row whose token slot still holds the expected hash.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE violates the
	// unique constraint on accounts.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrArtistNotFound is returned when no artist matches the lookup.
	ErrArtistNotFound = errors.New("artist was not found")

	// ErrArtistAlreadyExists is returned when the owning account already has
	// an artist profile.
	ErrArtistAlreadyExists = errors.New("account already owns an artist profile")

	// ErrSongNotFound is returned when no song matches the lookup.
	ErrSongNotFound = errors.New("song was not found")

	// ErrReferenceNotFound is returned when a foreign key points at a row
	// that does not exist (an artist for a missing account, a song for a
	// missing artist).
	ErrReferenceNotFound = errors.New("referenced record does not exist")
)

// Connection manager errors.
var (
	// ErrRetriesExhausted is returned when a statement kept failing with
	// transient errors until the retry budget ran out. The wrapped error
	// names the statement and the number of attempts.
	ErrRetriesExhausted = errors.New("database retries exhausted")

	// ErrNoDatabaseSelected is returned by operations that need a working
	// database before SelectDatabase has succeeded.
	ErrNoDatabaseSelected = errors.New("no database selected")

	// ErrDatabaseClosed is returned by any operation on a closed manager.
	ErrDatabaseClosed = errors.New("database manager is closed")

	// ErrInvalidDatabaseName is returned for an empty database name.
	ErrInvalidDatabaseName = errors.New("invalid database name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails with an
	// error that has no domain meaning.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
