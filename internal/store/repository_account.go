// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/MKhiriev/go-artist-manager/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository] over the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (models.Account, error) {
	var account models.Account
	var gender, role string
	err := s.Scan(
		&account.AccountID,
		&account.FirstName,
		&account.LastName,
		&account.Email,
		&account.PasswordHash,
		&account.Phone,
		&account.DateOfBirth,
		&gender,
		&account.Address,
		&role,
		&account.IsVerified,
		&account.OneTimeTokenHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	account.Gender = models.Gender(gender)
	account.Role = models.Role(role)

	return account, err
}

// accountWriteError maps driver errors of INSERT/UPDATE statements.
func accountWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrEmailAlreadyExists
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}
	return wrapDBError(err)
}

// Create inserts account and returns the stored row with server-assigned
// fields (AccountID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	args := []any{
		account.FirstName,
		account.LastName,
		account.Email,
		account.PasswordHash,
		account.Phone,
		account.DateOfBirth,
		string(account.Gender),
		account.Address,
		string(account.Role),
		account.IsVerified,
		account.OneTimeTokenHash,
	}

	var created models.Account
	err := r.db.QueryRow(ctx, createAccount, args, func(row *sql.Row) error {
		var err error
		created, err = scanAccount(row)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Create").Str("email", account.Email).Msg("error creating account")
		return models.Account{}, accountWriteError(err)
	}

	return created, nil
}

func (r *accountRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.Account, error) {
	var account models.Account
	err := r.db.QueryRow(ctx, query, []any{arg}, func(row *sql.Row) error {
		var err error
		account, err = scanAccount(row)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error finding account")
		return models.Account{}, accountWriteError(err)
	}

	return account, nil
}

// FindByID returns the account with accountID.
func (r *accountRepository) FindByID(ctx context.Context, accountID int64) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByID", findAccountByID, accountID)
}

// FindByEmail returns the account registered with email.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByEmail", findAccountByEmail, email)
}

// FindByOneTimeToken returns the account whose token slot holds hash.
func (r *accountRepository) FindByOneTimeToken(ctx context.Context, hash string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByOneTimeToken", findAccountByOneTimeToken, hash)
}

// Update applies the non-nil fields of patch and returns the stored row.
// An empty patch returns the current row unchanged.
func (r *accountRepository) Update(ctx context.Context, accountID int64, patch models.AccountPatch) (models.Account, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		return r.FindByID(ctx, accountID)
	}

	query, args, err := buildUpdateAccountQuery(accountID, patch)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Update").Msg("error building update query")
		return models.Account{}, err
	}

	var updated models.Account
	err = r.db.QueryRow(ctx, query, args, func(row *sql.Row) error {
		var err error
		updated, err = scanAccount(row)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Update").Int64("account_id", accountID).Msg("error updating account")
		return models.Account{}, accountWriteError(err)
	}

	return updated, nil
}

// SetOneTimeToken overwrites the token slot of the account.
func (r *accountRepository) SetOneTimeToken(ctx context.Context, accountID int64, hash string) error {
	return execAffectingOne(ctx, r.db, "*accountRepository.SetOneTimeToken", accountWriteError, setOneTimeToken, accountID, hash)
}

// MarkVerified verifies the account and clears the token slot, only if
// the slot still holds hash. A lost race reports [ErrAccountNotFound].
func (r *accountRepository) MarkVerified(ctx context.Context, accountID int64, hash string) error {
	return execAffectingOne(ctx, r.db, "*accountRepository.MarkVerified", accountWriteError, markAccountVerified, accountID, hash)
}

// ResetPassword stores passwordHash and clears the token slot in a single
// statement conditioned on the slot still holding hash.
func (r *accountRepository) ResetPassword(ctx context.Context, accountID int64, hash, passwordHash string) error {
	return execAffectingOne(ctx, r.db, "*accountRepository.ResetPassword", accountWriteError, resetAccountPassword, accountID, hash, passwordHash)
}

// Delete removes the account. The owned artist profile and its songs are
// removed by ON DELETE CASCADE.
func (r *accountRepository) Delete(ctx context.Context, accountID int64) error {
	return execAffectingOne(ctx, r.db, "*accountRepository.Delete", accountWriteError, deleteAccount, accountID)
}

// List returns one page of accounts matching filter, ordered by id.
func (r *accountRepository) List(ctx context.Context, filter models.AccountFilter, page models.Page) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery(filter, page)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.List").Msg("error building list query")
		return nil, err
	}

	var accounts []models.Account
	err = r.db.Query(ctx, query, args, func(rows *sql.Rows) error {
		accounts = accounts[:0]
		for rows.Next() {
			account, err := scanAccount(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			accounts = append(accounts, account)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.List").Msg("error listing accounts")
		return nil, accountWriteError(err)
	}

	return accounts, nil
}

// Count returns the number of accounts matching filter.
func (r *accountRepository) Count(ctx context.Context, filter models.AccountFilter) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountAccountsQuery(filter)
	if err != nil {
		return 0, err
	}

	var total int
	err = r.db.QueryRow(ctx, query, args, func(row *sql.Row) error {
		return row.Scan(&total)
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Count").Msg("error counting accounts")
		return 0, accountWriteError(err)
	}

	return total, nil
}
