// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-artist-manager/models"
)

// memoryState is the shared state of the in-memory repositories. A single
// mutex covers all three tables so that cascading deletes and uniqueness
// checks are atomic.
type memoryState struct {
	mu sync.RWMutex

	accounts map[int64]models.Account
	artists  map[int64]models.Artist
	songs    map[int64]models.Song

	nextAccountID int64
	nextArtistID  int64
	nextSongID    int64

	now func() time.Time
}

func newMemoryState() *memoryState {
	return &memoryState{
		accounts: make(map[int64]models.Account),
		artists:  make(map[int64]models.Artist),
		songs:    make(map[int64]models.Song),
		now:      time.Now,
	}
}

// clonePtr copies the value behind p so that callers never share memory
// with stored rows.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneAccount(a models.Account) models.Account {
	a.DateOfBirth = clonePtr(a.DateOfBirth)
	a.OneTimeTokenHash = clonePtr(a.OneTimeTokenHash)
	return a
}

func cloneArtist(a models.Artist) models.Artist {
	a.DateOfBirth = clonePtr(a.DateOfBirth)
	a.FirstReleaseYear = clonePtr(a.FirstReleaseYear)
	return a
}

func cloneSong(s models.Song) models.Song {
	s.AlbumName = clonePtr(s.AlbumName)
	s.Genre = clonePtr(s.Genre)
	return s
}

// sortedValues returns copies of the values of m ordered by key.
func sortedValues[V any](m map[int64]V, clone func(V) V) []V {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	values := make([]V, 0, len(keys))
	for _, k := range keys {
		values = append(values, clone(m[k]))
	}
	return values
}

func paginate[V any](values []V, page models.Page) []V {
	offset := page.Offset()
	if offset < 0 || offset >= len(values) {
		return []V{}
	}
	end := len(values)
	if page.Limit > 0 && offset+page.Limit < end {
		end = offset + page.Limit
	}
	return values[offset:end]
}

// deleteArtistLocked removes an artist and its songs. Callers hold mu.
func (s *memoryState) deleteArtistLocked(artistID int64) {
	delete(s.artists, artistID)
	for id, song := range s.songs {
		if song.ArtistID == artistID {
			delete(s.songs, id)
		}
	}
}

// ── accounts ──────────────────────────────────────────────────────────────────

type memoryAccountRepository struct {
	state *memoryState
}

func (r *memoryAccountRepository) emailTakenLocked(email string, exceptID int64) bool {
	for id, account := range r.state.accounts {
		if id != exceptID && account.Email == email {
			return true
		}
	}
	return false
}

func (r *memoryAccountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	if r.emailTakenLocked(account.Email, 0) {
		return models.Account{}, ErrEmailAlreadyExists
	}

	r.state.nextAccountID++
	now := r.state.now()
	account.AccountID = r.state.nextAccountID
	account.CreatedAt = now
	account.UpdatedAt = now
	r.state.accounts[account.AccountID] = cloneAccount(account)

	return account, nil
}

func (r *memoryAccountRepository) FindByID(ctx context.Context, accountID int64) (models.Account, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	account, ok := r.state.accounts[accountID]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

func (r *memoryAccountRepository) findFirst(match func(models.Account) bool) (models.Account, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	for _, account := range r.state.accounts {
		if match(account) {
			return cloneAccount(account), nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

func (r *memoryAccountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findFirst(func(a models.Account) bool { return a.Email == email })
}

func (r *memoryAccountRepository) FindByOneTimeToken(ctx context.Context, hash string) (models.Account, error) {
	return r.findFirst(func(a models.Account) bool {
		return a.OneTimeTokenHash != nil && *a.OneTimeTokenHash == hash
	})
}

func (r *memoryAccountRepository) Update(ctx context.Context, accountID int64, patch models.AccountPatch) (models.Account, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	account, ok := r.state.accounts[accountID]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	if patch.IsEmpty() {
		return cloneAccount(account), nil
	}
	if patch.Email != nil && r.emailTakenLocked(*patch.Email, accountID) {
		return models.Account{}, ErrEmailAlreadyExists
	}

	account = patch.Apply(account)
	account.UpdatedAt = r.state.now()
	r.state.accounts[accountID] = cloneAccount(account)

	return cloneAccount(account), nil
}

// updateIf applies mutate to the account when cond holds for it.
func (r *memoryAccountRepository) updateIf(accountID int64, cond func(models.Account) bool, mutate func(*models.Account)) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	account, ok := r.state.accounts[accountID]
	if !ok || !cond(account) {
		return ErrAccountNotFound
	}

	mutate(&account)
	account.UpdatedAt = r.state.now()
	r.state.accounts[accountID] = account

	return nil
}

func tokenSlotHolds(hash string) func(models.Account) bool {
	return func(a models.Account) bool {
		return a.OneTimeTokenHash != nil && *a.OneTimeTokenHash == hash
	}
}

func (r *memoryAccountRepository) SetOneTimeToken(ctx context.Context, accountID int64, hash string) error {
	return r.updateIf(accountID, func(models.Account) bool { return true }, func(a *models.Account) {
		a.OneTimeTokenHash = &hash
	})
}

func (r *memoryAccountRepository) MarkVerified(ctx context.Context, accountID int64, hash string) error {
	return r.updateIf(accountID, tokenSlotHolds(hash), func(a *models.Account) {
		a.IsVerified = true
		a.OneTimeTokenHash = nil
	})
}

func (r *memoryAccountRepository) ResetPassword(ctx context.Context, accountID int64, hash, passwordHash string) error {
	return r.updateIf(accountID, tokenSlotHolds(hash), func(a *models.Account) {
		a.PasswordHash = passwordHash
		a.OneTimeTokenHash = nil
	})
}

func (r *memoryAccountRepository) Delete(ctx context.Context, accountID int64) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	if _, ok := r.state.accounts[accountID]; !ok {
		return ErrAccountNotFound
	}
	delete(r.state.accounts, accountID)

	for id, artist := range r.state.artists {
		if artist.AccountID == accountID {
			r.state.deleteArtistLocked(id)
		}
	}

	return nil
}

func matchesFilter(a models.Account, filter models.AccountFilter) bool {
	if filter.Role != "" && a.Role != filter.Role {
		return false
	}
	if filter.Gender != "" && a.Gender != filter.Gender {
		return false
	}
	if filter.IsVerified != nil && a.IsVerified != *filter.IsVerified {
		return false
	}
	return true
}

func (r *memoryAccountRepository) filtered(filter models.AccountFilter) []models.Account {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	var result []models.Account
	for _, account := range sortedValues(r.state.accounts, cloneAccount) {
		if matchesFilter(account, filter) {
			result = append(result, account)
		}
	}
	return result
}

func (r *memoryAccountRepository) List(ctx context.Context, filter models.AccountFilter, page models.Page) ([]models.Account, error) {
	return paginate(r.filtered(filter), page), nil
}

func (r *memoryAccountRepository) Count(ctx context.Context, filter models.AccountFilter) (int, error) {
	return len(r.filtered(filter)), nil
}

// ── artists ───────────────────────────────────────────────────────────────────

type memoryArtistRepository struct {
	state *memoryState
}

func (r *memoryArtistRepository) Create(ctx context.Context, artist models.Artist) (models.Artist, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	if _, ok := r.state.accounts[artist.AccountID]; !ok {
		return models.Artist{}, ErrReferenceNotFound
	}
	for _, existing := range r.state.artists {
		if existing.AccountID == artist.AccountID {
			return models.Artist{}, ErrArtistAlreadyExists
		}
	}

	r.state.nextArtistID++
	now := r.state.now()
	artist.ArtistID = r.state.nextArtistID
	artist.CreatedAt = now
	artist.UpdatedAt = now
	r.state.artists[artist.ArtistID] = cloneArtist(artist)

	return artist, nil
}

func (r *memoryArtistRepository) FindByID(ctx context.Context, artistID int64) (models.Artist, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	artist, ok := r.state.artists[artistID]
	if !ok {
		return models.Artist{}, ErrArtistNotFound
	}
	return cloneArtist(artist), nil
}

func (r *memoryArtistRepository) FindByAccountID(ctx context.Context, accountID int64) (models.Artist, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	for _, artist := range r.state.artists {
		if artist.AccountID == accountID {
			return cloneArtist(artist), nil
		}
	}
	return models.Artist{}, ErrArtistNotFound
}

func (r *memoryArtistRepository) Update(ctx context.Context, artistID int64, patch models.ArtistPatch) (models.Artist, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	artist, ok := r.state.artists[artistID]
	if !ok {
		return models.Artist{}, ErrArtistNotFound
	}
	if patch.IsEmpty() {
		return cloneArtist(artist), nil
	}

	artist = patch.Apply(artist)
	artist.UpdatedAt = r.state.now()
	r.state.artists[artistID] = cloneArtist(artist)

	return cloneArtist(artist), nil
}

func (r *memoryArtistRepository) Delete(ctx context.Context, artistID int64) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	if _, ok := r.state.artists[artistID]; !ok {
		return ErrArtistNotFound
	}
	r.state.deleteArtistLocked(artistID)

	return nil
}

func (r *memoryArtistRepository) List(ctx context.Context, page models.Page) ([]models.Artist, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	return paginate(sortedValues(r.state.artists, cloneArtist), page), nil
}

func (r *memoryArtistRepository) Count(ctx context.Context) (int, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	return len(r.state.artists), nil
}

// ── songs ─────────────────────────────────────────────────────────────────────

type memorySongRepository struct {
	state *memoryState
}

func (r *memorySongRepository) Create(ctx context.Context, song models.Song) (models.Song, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	if _, ok := r.state.artists[song.ArtistID]; !ok {
		return models.Song{}, ErrReferenceNotFound
	}

	r.state.nextSongID++
	now := r.state.now()
	song.SongID = r.state.nextSongID
	song.CreatedAt = now
	song.UpdatedAt = now
	r.state.songs[song.SongID] = cloneSong(song)

	return song, nil
}

func (r *memorySongRepository) FindByID(ctx context.Context, songID int64) (models.Song, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	song, ok := r.state.songs[songID]
	if !ok {
		return models.Song{}, ErrSongNotFound
	}
	return cloneSong(song), nil
}

func (r *memorySongRepository) Update(ctx context.Context, songID int64, patch models.SongPatch) (models.Song, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	song, ok := r.state.songs[songID]
	if !ok {
		return models.Song{}, ErrSongNotFound
	}
	if patch.IsEmpty() {
		return cloneSong(song), nil
	}

	song = patch.Apply(song)
	song.UpdatedAt = r.state.now()
	r.state.songs[songID] = cloneSong(song)

	return cloneSong(song), nil
}

func (r *memorySongRepository) Delete(ctx context.Context, songID int64) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	if _, ok := r.state.songs[songID]; !ok {
		return ErrSongNotFound
	}
	delete(r.state.songs, songID)

	return nil
}

func (r *memorySongRepository) byArtist(artistID int64) []models.Song {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	var result []models.Song
	for _, song := range sortedValues(r.state.songs, cloneSong) {
		if song.ArtistID == artistID {
			result = append(result, song)
		}
	}
	return result
}

func (r *memorySongRepository) ListByArtist(ctx context.Context, artistID int64, page models.Page) ([]models.Song, error) {
	return paginate(r.byArtist(artistID), page), nil
}

func (r *memorySongRepository) CountByArtist(ctx context.Context, artistID int64) (int, error) {
	return len(r.byArtist(artistID)), nil
}
