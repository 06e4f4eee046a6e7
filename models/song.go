// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Song is a track belonging to exactly one [Artist]. Deleting the artist
// deletes its songs.
type Song struct {
	SongID    int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	Title     string    `json:"title"`
	AlbumName *string   `json:"album_name,omitempty"`
	Genre     *Genre    `json:"genre,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Song model.
func (s Song) TableName() string {
	return "songs"
}

// SongPatch is a partial update of a [Song].
type SongPatch struct {
	Title     *string `json:"title,omitempty"`
	AlbumName *string `json:"album_name,omitempty"`
	Genre     *Genre  `json:"genre,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p SongPatch) IsEmpty() bool {
	return p.Title == nil && p.AlbumName == nil && p.Genre == nil
}

// Apply returns a copy of s with the patch merged in.
func (p SongPatch) Apply(s Song) Song {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.AlbumName != nil {
		album := *p.AlbumName
		s.AlbumName = &album
	}
	if p.Genre != nil {
		genre := *p.Genre
		s.Genre = &genre
	}
	return s
}
