// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-artist-manager/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	AccountRepository AccountRepository
	ArtistRepository  ArtistRepository
	SongRepository    SongRepository
}

// NewStorages returns the PostgreSQL repositories backed by db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		ArtistRepository:  NewArtistRepository(db, logger),
		SongRepository:    NewSongRepository(db, logger),
	}
}

// NewMemoryStorages returns repositories that keep all data in process
// memory. They enforce the same uniqueness and cascade rules as the
// PostgreSQL schema.
func NewMemoryStorages() *Storages {
	state := newMemoryState()
	return &Storages{
		AccountRepository: &memoryAccountRepository{state: state},
		ArtistRepository:  &memoryArtistRepository{state: state},
		SongRepository:    &memorySongRepository{state: state},
	}
}
