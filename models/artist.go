// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Artist is a performer profile owned by exactly one account with the
// artist role. Deleting the owner deletes the profile.
type Artist struct {
	ArtistID         int64      `json:"id"`
	Name             string     `json:"name"`
	DateOfBirth      *time.Time `json:"dob,omitempty"`
	Gender           Gender     `json:"gender,omitempty"`
	Address          string     `json:"address,omitempty"`
	FirstReleaseYear *int       `json:"first_release_year,omitempty"`
	AlbumsReleased   int        `json:"no_of_album_released"`
	AccountID        int64      `json:"user_id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Artist model.
func (a Artist) TableName() string {
	return "artists"
}

// ArtistPatch is a partial update of an [Artist]. The owning account
// cannot be changed.
type ArtistPatch struct {
	Name             *string    `json:"name,omitempty"`
	DateOfBirth      *time.Time `json:"dob,omitempty"`
	Gender           *Gender    `json:"gender,omitempty"`
	Address          *string    `json:"address,omitempty"`
	FirstReleaseYear *int       `json:"first_release_year,omitempty"`
	AlbumsReleased   *int       `json:"no_of_album_released,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ArtistPatch) IsEmpty() bool {
	return p.Name == nil && p.DateOfBirth == nil && p.Gender == nil &&
		p.Address == nil && p.FirstReleaseYear == nil && p.AlbumsReleased == nil
}

// Apply returns a copy of a with the patch merged in.
func (p ArtistPatch) Apply(a Artist) Artist {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		a.DateOfBirth = &dob
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.Address != nil {
		a.Address = *p.Address
	}
	if p.FirstReleaseYear != nil {
		year := *p.FirstReleaseYear
		a.FirstReleaseYear = &year
	}
	if p.AlbumsReleased != nil {
		a.AlbumsReleased = *p.AlbumsReleased
	}
	return a
}
