// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-artist-manager/models"
)

// DomainValidator checks request payloads for accounts, artists and songs
// before they reach the repositories.
type DomainValidator struct {
	now func() time.Time
}

// NewDomainValidator returns a [Validator] for the artist-manager models.
func NewDomainValidator() Validator {
	return &DomainValidator{now: time.Now}
}

func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.AccountPatch:
		return v.validateAccountPatch(value, fields...)
	case *models.AccountPatch:
		return v.validateAccountPatch(*value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPasswordRequest(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPasswordRequest(*value, fields...)

	case models.Artist:
		return v.validateArtist(value, fields...)
	case *models.Artist:
		return v.validateArtist(*value, fields...)

	case models.ArtistPatch:
		return v.validateArtistPatch(value, fields...)
	case *models.ArtistPatch:
		return v.validateArtistPatch(*value, fields...)

	case models.Song:
		return v.validateSong(value, fields...)
	case *models.Song:
		return v.validateSong(*value, fields...)

	case models.SongPatch:
		return v.validateSongPatch(value, fields...)
	case *models.SongPatch:
		return v.validateSongPatch(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func isValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

func (v *DomainValidator) isValidDateOfBirth(dob *time.Time) bool {
	return dob == nil || !dob.After(v.now())
}

func (v *DomainValidator) isValidReleaseYear(year *int) bool {
	return year == nil || (*year >= MinReleaseYear && *year <= v.now().Year())
}

func (v *DomainValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldDateOfBirth, FieldGender, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if req.FirstName == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if req.LastName == "" {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !isValidPassword(req.Password) {
				return ErrPasswordTooShort
			}
		case FieldDateOfBirth:
			if !v.isValidDateOfBirth(req.DateOfBirth) {
				return ErrDateOfBirthInFuture
			}
		case FieldGender:
			if !req.Gender.IsValid() {
				return ErrInvalidGender
			}
		case FieldRole:
			if !req.Role.IsValid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAccountPatch checks only the fields present in the patch.
func (v *DomainValidator) validateAccountPatch(patch models.AccountPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldDateOfBirth, FieldGender, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if patch.FirstName != nil && *patch.FirstName == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if patch.LastName != nil && *patch.LastName == "" {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if patch.Email != nil && !isValidEmail(*patch.Email) {
				return ErrInvalidEmail
			}
		case FieldDateOfBirth:
			if !v.isValidDateOfBirth(patch.DateOfBirth) {
				return ErrDateOfBirthInFuture
			}
		case FieldGender:
			if patch.Gender != nil && !patch.Gender.IsValid() {
				return ErrInvalidGender
			}
		case FieldRole:
			if patch.Role != nil && !patch.Role.IsValid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateResetPasswordRequest(req models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if req.Token == "" {
				return ErrEmptyToken
			}
		case FieldPassword:
			if !isValidPassword(req.NewPassword) {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateArtist(artist models.Artist, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDateOfBirth, FieldGender, FieldFirstReleaseYear, FieldAlbumsReleased, FieldAccountID}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if artist.Name == "" {
				return ErrEmptyName
			}
		case FieldDateOfBirth:
			if !v.isValidDateOfBirth(artist.DateOfBirth) {
				return ErrDateOfBirthInFuture
			}
		case FieldGender:
			if artist.Gender != "" && !artist.Gender.IsValid() {
				return ErrInvalidGender
			}
		case FieldFirstReleaseYear:
			if !v.isValidReleaseYear(artist.FirstReleaseYear) {
				return ErrInvalidReleaseYear
			}
		case FieldAlbumsReleased:
			if artist.AlbumsReleased < 0 {
				return ErrNegativeAlbumCount
			}
		case FieldAccountID:
			if artist.AccountID <= 0 {
				return ErrInvalidAccountID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateArtistPatch(patch models.ArtistPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDateOfBirth, FieldGender, FieldFirstReleaseYear, FieldAlbumsReleased}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if patch.Name != nil && *patch.Name == "" {
				return ErrEmptyName
			}
		case FieldDateOfBirth:
			if !v.isValidDateOfBirth(patch.DateOfBirth) {
				return ErrDateOfBirthInFuture
			}
		case FieldGender:
			if patch.Gender != nil && !patch.Gender.IsValid() {
				return ErrInvalidGender
			}
		case FieldFirstReleaseYear:
			if !v.isValidReleaseYear(patch.FirstReleaseYear) {
				return ErrInvalidReleaseYear
			}
		case FieldAlbumsReleased:
			if patch.AlbumsReleased != nil && *patch.AlbumsReleased < 0 {
				return ErrNegativeAlbumCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateSong(song models.Song, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldArtistID, FieldGenre}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if song.Title == "" {
				return ErrEmptyTitle
			}
		case FieldArtistID:
			if song.ArtistID <= 0 {
				return ErrInvalidArtistID
			}
		case FieldGenre:
			if song.Genre != nil && !song.Genre.IsValid() {
				return ErrInvalidGenre
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateSongPatch(patch models.SongPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldGenre}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if patch.Title != nil && *patch.Title == "" {
				return ErrEmptyTitle
			}
		case FieldGenre:
			if patch.Genre != nil && !patch.Genre.IsValid() {
				return ErrInvalidGenre
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
