// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName      = errors.New("first_name is required")
	ErrEmptyLastName       = errors.New("last_name is required")
	ErrInvalidEmail        = errors.New("email must be a valid address")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrInvalidGender       = errors.New("gender must be one of male, female, other")
	ErrInvalidRole         = errors.New("role must be one of super_admin, artist_manager, artist")
	ErrDateOfBirthInFuture = errors.New("dob cannot be in the future")
	ErrEmptyName           = errors.New("name is required")
	ErrInvalidReleaseYear  = errors.New("first_release_year is out of range")
	ErrNegativeAlbumCount  = errors.New("no_of_album_released cannot be negative")
	ErrInvalidAccountID    = errors.New("user_id is required")
	ErrEmptyTitle          = errors.New("title is required")
	ErrInvalidArtistID     = errors.New("artist_id is required")
	ErrInvalidGenre        = errors.New("genre must be one of rnb, country, rock, jazz, classic")
	ErrEmptyToken          = errors.New("token is required")
)
