// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-artist-manager/models"
)

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// AccountRepository persists accounts.
//
// Lookups return [ErrAccountNotFound] when nothing matches. Emails are
// expected to be normalized by the caller.
type AccountRepository interface {
	Create(ctx context.Context, account models.Account) (models.Account, error)
	FindByID(ctx context.Context, accountID int64) (models.Account, error)
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	// FindByOneTimeToken returns the account whose token slot holds hash.
	FindByOneTimeToken(ctx context.Context, hash string) (models.Account, error)
	// Update applies patch and returns the stored result.
	Update(ctx context.Context, accountID int64, patch models.AccountPatch) (models.Account, error)
	// SetOneTimeToken overwrites the token slot.
	SetOneTimeToken(ctx context.Context, accountID int64, hash string) error
	// MarkVerified sets the verified flag and clears the token slot only if
	// the slot still holds hash.
	MarkVerified(ctx context.Context, accountID int64, hash string) error
	// ResetPassword replaces the password hash and clears the token slot in
	// one statement, only if the slot still holds hash.
	ResetPassword(ctx context.Context, accountID int64, hash, passwordHash string) error
	// Delete removes the account; owned artist and songs cascade.
	Delete(ctx context.Context, accountID int64) error
	List(ctx context.Context, filter models.AccountFilter, page models.Page) ([]models.Account, error)
	Count(ctx context.Context, filter models.AccountFilter) (int, error)
}

// ArtistRepository persists artist profiles.
type ArtistRepository interface {
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	FindByID(ctx context.Context, artistID int64) (models.Artist, error)
	FindByAccountID(ctx context.Context, accountID int64) (models.Artist, error)
	Update(ctx context.Context, artistID int64, patch models.ArtistPatch) (models.Artist, error)
	// Delete removes the artist; its songs cascade.
	Delete(ctx context.Context, artistID int64) error
	List(ctx context.Context, page models.Page) ([]models.Artist, error)
	Count(ctx context.Context) (int, error)
}

// SongRepository persists songs.
type SongRepository interface {
	Create(ctx context.Context, song models.Song) (models.Song, error)
	FindByID(ctx context.Context, songID int64) (models.Song, error)
	Update(ctx context.Context, songID int64, patch models.SongPatch) (models.Song, error)
	Delete(ctx context.Context, songID int64) error
	ListByArtist(ctx context.Context, artistID int64, page models.Page) ([]models.Song, error)
	CountByArtist(ctx context.Context, artistID int64) (int, error)
}
