// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-artist-manager/models"
)

// CredentialService owns every cryptographic operation on account secrets.
type CredentialService interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool

	// IssueOneTimeToken returns a fresh random token and its storage hash.
	IssueOneTimeToken() (models.OneTimeToken, error)
	// HashOneTimeToken returns the storage hash of a presented raw token.
	HashOneTimeToken(raw string) string

	IssueSessionToken(identity models.Identity) (models.Token, error)
	// VerifySessionToken fails with ErrInvalidSessionToken for any malformed,
	// tampered or expired token.
	VerifySessionToken(token string) (models.Token, error)
}

// AccountService is the account lifecycle workflow.
//
// actor is nil for anonymous callers (registration bootstrap).
type AccountService interface {
	Register(ctx context.Context, req models.RegisterRequest, actor *models.Identity) (int64, error)
	VerifyEmail(ctx context.Context, rawToken string) error
	Authenticate(ctx context.Context, email, password string) (models.LoginResult, error)
	InitiatePasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, rawToken, newPassword string) error

	GetProfile(ctx context.Context, accountID int64) (models.Profile, error)
	ListAccounts(ctx context.Context, actor models.Identity, filter models.AccountFilter, page models.Page) ([]models.Account, models.Pagination, error)
	UpdateProfile(ctx context.Context, actor models.Identity, targetID int64, patch models.AccountPatch) (models.Account, error)
	RemoveAccount(ctx context.Context, actor models.Identity, targetID int64) error
}

// ArtistService manages artist profiles.
type ArtistService interface {
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	GetArtist(ctx context.Context, artistID int64) (models.Artist, error)
	ListArtists(ctx context.Context, page models.Page) ([]models.Artist, models.Pagination, error)
	UpdateArtist(ctx context.Context, artistID int64, patch models.ArtistPatch) (models.Artist, error)
	DeleteArtist(ctx context.Context, artistID int64) error
}

// SongService manages songs. Actors with the artist role may only touch
// songs of their own artist profile.
type SongService interface {
	CreateSong(ctx context.Context, actor models.Identity, song models.Song) (models.Song, error)
	GetSong(ctx context.Context, songID int64) (models.Song, error)
	UpdateSong(ctx context.Context, actor models.Identity, songID int64, patch models.SongPatch) (models.Song, error)
	DeleteSong(ctx context.Context, actor models.Identity, songID int64) error
	ListSongsByArtist(ctx context.Context, artistID int64, page models.Page) ([]models.Song, models.Pagination, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
