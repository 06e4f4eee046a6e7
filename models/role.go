// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the privilege level of an [Account].
type Role string

const (
	// RoleSuperAdmin has unrestricted access to every account, artist and song.
	RoleSuperAdmin Role = "super_admin"

	// RoleArtistManager manages artist accounts and artist profiles but
	// cannot create or remove other managers or administrators.
	RoleArtistManager Role = "artist_manager"

	// RoleArtist owns at most one artist profile and its songs.
	RoleArtist Role = "artist"
)

// Roles lists every valid role in descending order of privilege.
var Roles = []Role{RoleSuperAdmin, RoleArtistManager, RoleArtist}

// IsValid reports whether r is one of the enumerated roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleArtistManager, RoleArtist:
		return true
	}
	return false
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}

// Gender is shared by accounts and artist profiles.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid reports whether g is one of the enumerated genders.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Genre classifies a [Song].
type Genre string

const (
	GenreRnB     Genre = "rnb"
	GenreCountry Genre = "country"
	GenreRock    Genre = "rock"
	GenreJazz    Genre = "jazz"
	GenreClassic Genre = "classic"
)

// IsValid reports whether g is one of the enumerated genres.
func (g Genre) IsValid() bool {
	switch g {
	case GenreRnB, GenreCountry, GenreRock, GenreJazz, GenreClassic:
		return true
	}
	return false
}
