// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to restrict validation to a subset of fields.
// They match the JSON names of the validated structures.
const (
	FieldFirstName        = "first_name"
	FieldLastName         = "last_name"
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldDateOfBirth      = "dob"
	FieldGender           = "gender"
	FieldRole             = "role"
	FieldName             = "name"
	FieldFirstReleaseYear = "first_release_year"
	FieldAlbumsReleased   = "no_of_album_released"
	FieldAccountID        = "user_id"
	FieldTitle            = "title"
	FieldArtistID         = "artist_id"
	FieldGenre            = "genre"
	FieldToken            = "token"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// MinReleaseYear is the earliest accepted first release year.
const MinReleaseYear = 1900
