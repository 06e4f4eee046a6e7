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

// artistRepository is the PostgreSQL-backed implementation of
// [ArtistRepository] over the "artists" table.
type artistRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewArtistRepository constructs an [ArtistRepository] backed by db.
func NewArtistRepository(db *DB, logger *logger.Logger) ArtistRepository {
	logger.Debug().Msg("creating artist repository")
	return &artistRepository{
		db:     db,
		logger: logger,
	}
}

func scanArtist(s scanner) (models.Artist, error) {
	var artist models.Artist
	var gender string
	var firstReleaseYear sql.NullInt32
	err := s.Scan(
		&artist.ArtistID,
		&artist.Name,
		&artist.DateOfBirth,
		&gender,
		&artist.Address,
		&firstReleaseYear,
		&artist.AlbumsReleased,
		&artist.AccountID,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	artist.Gender = models.Gender(gender)
	if firstReleaseYear.Valid {
		year := int(firstReleaseYear.Int32)
		artist.FirstReleaseYear = &year
	}

	return artist, err
}

func artistError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrArtistAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrReferenceNotFound
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrArtistNotFound
	}
	return wrapDBError(err)
}

// Create inserts artist and returns the stored row.
//
// Error handling:
//   - unique_violation on account_id → [ErrArtistAlreadyExists].
//   - foreign_key_violation → [ErrReferenceNotFound].
func (r *artistRepository) Create(ctx context.Context, artist models.Artist) (models.Artist, error) {
	log := logger.FromContext(ctx)

	args := []any{
		artist.Name,
		artist.DateOfBirth,
		string(artist.Gender),
		artist.Address,
		artist.FirstReleaseYear,
		artist.AlbumsReleased,
		artist.AccountID,
	}

	var created models.Artist
	err := r.db.QueryRow(ctx, createArtist, args, func(row *sql.Row) error {
		var err error
		created, err = scanArtist(row)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*artistRepository.Create").Int64("account_id", artist.AccountID).Msg("error creating artist")
		return models.Artist{}, artistError(err)
	}

	return created, nil
}

func (r *artistRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.Artist, error) {
	var artist models.Artist
	err := r.db.QueryRow(ctx, query, []any{arg}, func(row *sql.Row) error {
		var err error
		artist, err = scanArtist(row)
		return err
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error finding artist")
	}
	if err != nil {
		return models.Artist{}, artistError(err)
	}

	return artist, nil
}

// FindByID returns the artist with artistID.
func (r *artistRepository) FindByID(ctx context.Context, artistID int64) (models.Artist, error) {
	return r.findOne(ctx, "*artistRepository.FindByID", findArtistByID, artistID)
}

// FindByAccountID returns the artist profile owned by accountID.
func (r *artistRepository) FindByAccountID(ctx context.Context, accountID int64) (models.Artist, error) {
	return r.findOne(ctx, "*artistRepository.FindByAccountID", findArtistByAccountID, accountID)
}

// Update applies the non-nil fields of patch and returns the stored row.
func (r *artistRepository) Update(ctx context.Context, artistID int64, patch models.ArtistPatch) (models.Artist, error) {
	if patch.IsEmpty() {
		return r.FindByID(ctx, artistID)
	}

	query, args, err := buildUpdateArtistQuery(artistID, patch)
	if err != nil {
		return models.Artist{}, err
	}

	var updated models.Artist
	err = r.db.QueryRow(ctx, query, args, func(row *sql.Row) error {
		var err error
		updated, err = scanArtist(row)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*artistRepository.Update").Int64("artist_id", artistID).Msg("error updating artist")
		return models.Artist{}, artistError(err)
	}

	return updated, nil
}

// Delete removes the artist; its songs are removed by ON DELETE CASCADE.
func (r *artistRepository) Delete(ctx context.Context, artistID int64) error {
	return execAffectingOne(ctx, r.db, "*artistRepository.Delete", artistError, deleteArtist, artistID)
}

// List returns one page of artists ordered by id.
func (r *artistRepository) List(ctx context.Context, page models.Page) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.Query(ctx, listArtists, []any{page.Limit, page.Offset()}, func(rows *sql.Rows) error {
		artists = artists[:0]
		for rows.Next() {
			artist, err := scanArtist(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			artists = append(artists, artist)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*artistRepository.List").Msg("error listing artists")
		return nil, artistError(err)
	}

	return artists, nil
}

// Count returns the total number of artists.
func (r *artistRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, countArtists, nil, func(row *sql.Row) error {
		return row.Scan(&total)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*artistRepository.Count").Msg("error counting artists")
		return 0, wrapDBError(err)
	}

	return total, nil
}
