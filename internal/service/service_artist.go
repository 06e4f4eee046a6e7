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

type artistService struct {
	accounts  store.AccountRepository
	artists   store.ArtistRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewArtistService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) ArtistService {
	return &artistService{
		accounts:  storages.AccountRepository,
		artists:   storages.ArtistRepository,
		validator: validator,
		logger:    logger,
	}
}

// CreateArtist stores a profile for an account with the artist role. Each
// account owns at most one profile.
func (s *artistService) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	if err := s.validator.Validate(ctx, artist); err != nil {
		return models.Artist{}, ValidationError(err)
	}

	owner, err := s.accounts.FindByID(ctx, artist.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Artist{}, accountNotFound(artist.AccountID)
		}
		return models.Artist{}, fmt.Errorf("create artist: %w", err)
	}
	if owner.Role != models.RoleArtist {
		return models.Artist{}, ErrArtistOwnerInvalid
	}

	created, err := s.artists.Create(ctx, artist)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrArtistAlreadyExists):
			return models.Artist{}, ErrArtistAlreadyExists
		case errors.Is(err, store.ErrReferenceNotFound):
			return models.Artist{}, accountNotFound(artist.AccountID)
		}
		return models.Artist{}, fmt.Errorf("create artist: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("artist_id", created.ArtistID).Int64("account_id", created.AccountID).Msg("artist created")
	return created, nil
}

func (s *artistService) GetArtist(ctx context.Context, artistID int64) (models.Artist, error) {
	artist, err := s.artists.FindByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			return models.Artist{}, artistNotFound(artistID)
		}
		return models.Artist{}, fmt.Errorf("get artist: %w", err)
	}
	return artist, nil
}

func (s *artistService) ListArtists(ctx context.Context, page models.Page) ([]models.Artist, models.Pagination, error) {
	page = normalizePage(page)

	total, err := s.artists.Count(ctx)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list artists: %w", err)
	}
	artists, err := s.artists.List(ctx, page)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list artists: %w", err)
	}

	return artists, models.NewPagination(total, page), nil
}

func (s *artistService) UpdateArtist(ctx context.Context, artistID int64, patch models.ArtistPatch) (models.Artist, error) {
	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.Artist{}, ValidationError(err)
	}

	updated, err := s.artists.Update(ctx, artistID, patch)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			return models.Artist{}, artistNotFound(artistID)
		}
		return models.Artist{}, fmt.Errorf("update artist: %w", err)
	}

	return updated, nil
}

// DeleteArtist removes the profile and, by cascade, its songs.
func (s *artistService) DeleteArtist(ctx context.Context, artistID int64) error {
	if err := s.artists.Delete(ctx, artistID); err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			return artistNotFound(artistID)
		}
		return fmt.Errorf("delete artist: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("artist_id", artistID).Msg("artist deleted")
	return nil
}
