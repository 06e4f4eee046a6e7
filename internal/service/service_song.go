// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/MKhiriev/go-artist-manager/internal/store"
	"github.com/MKhiriev/go-artist-manager/internal/validators"
	"github.com/MKhiriev/go-artist-manager/models"
)

type songService struct {
	artists   store.ArtistRepository
	songs     store.SongRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewSongService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) SongService {
	return &songService{
		artists:   storages.ArtistRepository,
		songs:     storages.SongRepository,
		validator: validator,
		logger:    logger,
	}
}

// authorize rejects artist actors that do not own artistID. Other roles
// pass.
func (s *songService) authorize(ctx context.Context, actor models.Identity, artistID int64) error {
	if actor.Role != models.RoleArtist {
		return nil
	}

	own, err := s.artists.FindByAccountID(ctx, actor.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			return ErrArtistProfileAbsent
		}
		return fmt.Errorf("authorize song access: %w", err)
	}
	if own.ArtistID != artistID {
		return ErrNotYourArtist
	}
	return nil
}

func (s *songService) CreateSong(ctx context.Context, actor models.Identity, song models.Song) (models.Song, error) {
	if err := s.validator.Validate(ctx, song); err != nil {
		return models.Song{}, ValidationError(err)
	}
	if err := s.authorize(ctx, actor, song.ArtistID); err != nil {
		return models.Song{}, err
	}

	created, err := s.songs.Create(ctx, song)
	if err != nil {
		if errors.Is(err, store.ErrReferenceNotFound) {
			return models.Song{}, artistNotFound(song.ArtistID)
		}
		return models.Song{}, fmt.Errorf("create song: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("song_id", created.SongID).Int64("artist_id", created.ArtistID).Msg("song created")
	return created, nil
}

func (s *songService) GetSong(ctx context.Context, songID int64) (models.Song, error) {
	song, err := s.songs.FindByID(ctx, songID)
	if err != nil {
		if errors.Is(err, store.ErrSongNotFound) {
			return models.Song{}, ErrSongNotFound
		}
		return models.Song{}, fmt.Errorf("get song: %w", err)
	}
	return song, nil
}

func (s *songService) UpdateSong(ctx context.Context, actor models.Identity, songID int64, patch models.SongPatch) (models.Song, error) {
	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.Song{}, ValidationError(err)
	}

	existing, err := s.GetSong(ctx, songID)
	if err != nil {
		return models.Song{}, err
	}
	if err = s.authorize(ctx, actor, existing.ArtistID); err != nil {
		return models.Song{}, err
	}

	updated, err := s.songs.Update(ctx, songID, patch)
	if err != nil {
		if errors.Is(err, store.ErrSongNotFound) {
			return models.Song{}, ErrSongNotFound
		}
		return models.Song{}, fmt.Errorf("update song: %w", err)
	}

	return updated, nil
}

func (s *songService) DeleteSong(ctx context.Context, actor models.Identity, songID int64) error {
	existing, err := s.GetSong(ctx, songID)
	if err != nil {
		return err
	}
	if err = s.authorize(ctx, actor, existing.ArtistID); err != nil {
		return err
	}

	if err = s.songs.Delete(ctx, songID); err != nil {
		if errors.Is(err, store.ErrSongNotFound) {
			return ErrSongNotFound
		}
		return fmt.Errorf("delete song: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("song_id", songID).Msg("song deleted")
	return nil
}

// ListSongsByArtist returns a page of the artist's songs. A missing artist
// is reported as not found rather than as an empty page.
func (s *songService) ListSongsByArtist(ctx context.Context, artistID int64, page models.Page) ([]models.Song, models.Pagination, error) {
	if _, err := s.artists.FindByID(ctx, artistID); err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			return nil, models.Pagination{}, artistNotFound(artistID)
		}
		return nil, models.Pagination{}, fmt.Errorf("list songs: %w", err)
	}

	page = normalizePage(page)
	total, err := s.songs.CountByArtist(ctx, artistID)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list songs: %w", err)
	}
	songs, err := s.songs.ListByArtist(ctx, artistID, page)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list songs: %w", err)
	}

	return songs, models.NewPagination(total, page), nil
}
