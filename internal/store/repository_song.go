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

// songRepository is the PostgreSQL-backed implementation of
// [SongRepository] over the "songs" table.
type songRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSongRepository constructs a [SongRepository] backed by db.
func NewSongRepository(db *DB, logger *logger.Logger) SongRepository {
	logger.Debug().Msg("creating song repository")
	return &songRepository{
		db:     db,
		logger: logger,
	}
}

func scanSong(s scanner) (models.Song, error) {
	var song models.Song
	var genre sql.NullString
	err := s.Scan(
		&song.SongID,
		&song.ArtistID,
		&song.Title,
		&song.AlbumName,
		&genre,
		&song.CreatedAt,
		&song.UpdatedAt,
	)
	if genre.Valid {
		g := models.Genre(genre.String)
		song.Genre = &g
	}

	return song, err
}

func songError(err error) error {
	if postgresError(err) == pgerrcode.ForeignKeyViolation {
		return ErrReferenceNotFound
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSongNotFound
	}
	return wrapDBError(err)
}

func genreArg(genre *models.Genre) any {
	if genre == nil {
		return nil
	}
	return string(*genre)
}

// Create inserts song and returns the stored row. A missing artist is
// reported as [ErrReferenceNotFound].
func (r *songRepository) Create(ctx context.Context, song models.Song) (models.Song, error) {
	args := []any{song.ArtistID, song.Title, song.AlbumName, genreArg(song.Genre)}

	var created models.Song
	err := r.db.QueryRow(ctx, createSong, args, func(row *sql.Row) error {
		var err error
		created, err = scanSong(row)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*songRepository.Create").Int64("artist_id", song.ArtistID).Msg("error creating song")
		return models.Song{}, songError(err)
	}

	return created, nil
}

// FindByID returns the song with songID.
func (r *songRepository) FindByID(ctx context.Context, songID int64) (models.Song, error) {
	var song models.Song
	err := r.db.QueryRow(ctx, findSongByID, []any{songID}, func(row *sql.Row) error {
		var err error
		song, err = scanSong(row)
		return err
	})
	if err != nil {
		return models.Song{}, songError(err)
	}

	return song, nil
}

// Update applies the non-nil fields of patch and returns the stored row.
func (r *songRepository) Update(ctx context.Context, songID int64, patch models.SongPatch) (models.Song, error) {
	if patch.IsEmpty() {
		return r.FindByID(ctx, songID)
	}

	query, args, err := buildUpdateSongQuery(songID, patch)
	if err != nil {
		return models.Song{}, err
	}

	var updated models.Song
	err = r.db.QueryRow(ctx, query, args, func(row *sql.Row) error {
		var err error
		updated, err = scanSong(row)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*songRepository.Update").Int64("song_id", songID).Msg("error updating song")
		return models.Song{}, songError(err)
	}

	return updated, nil
}

// Delete removes the song.
func (r *songRepository) Delete(ctx context.Context, songID int64) error {
	return execAffectingOne(ctx, r.db, "*songRepository.Delete", songError, deleteSong, songID)
}

// ListByArtist returns one page of the songs of artistID ordered by id.
func (r *songRepository) ListByArtist(ctx context.Context, artistID int64, page models.Page) ([]models.Song, error) {
	var songs []models.Song
	err := r.db.Query(ctx, listSongsByArtist, []any{artistID, page.Limit, page.Offset()}, func(rows *sql.Rows) error {
		songs = songs[:0]
		for rows.Next() {
			song, err := scanSong(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			songs = append(songs, song)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*songRepository.ListByArtist").Int64("artist_id", artistID).Msg("error listing songs")
		return nil, songError(err)
	}

	return songs, nil
}

// CountByArtist returns the number of songs of artistID.
func (r *songRepository) CountByArtist(ctx context.Context, artistID int64) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, countSongsByArtist, []any{artistID}, func(row *sql.Row) error {
		return row.Scan(&total)
	})
	if err != nil {
		return 0, wrapDBError(err)
	}

	return total, nil
}
