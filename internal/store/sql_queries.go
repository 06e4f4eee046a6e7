// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-artist-manager/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	databaseExists = `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1);`

	accountColumns = `account_id, first_name, last_name, email, password_hash, phone, dob, gender, address, role, is_verified, one_time_token_hash, created_at, updated_at`
	artistColumns  = `artist_id, name, dob, gender, address, first_release_year, no_of_albums_released, account_id, created_at, updated_at`
	songColumns    = `song_id, artist_id, title, album_name, genre, created_at, updated_at`

	createAccount = `INSERT INTO accounts (first_name, last_name, email, password_hash, phone, dob, gender, address, role, is_verified, one_time_token_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + accountColumns + `;`

	findAccountByID = `SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1;`

	findAccountByEmail = `SELECT ` + accountColumns + `
		FROM accounts
		WHERE email = $1;`

	findAccountByOneTimeToken = `SELECT ` + accountColumns + `
		FROM accounts
		WHERE one_time_token_hash = $1;`

	setOneTimeToken = `UPDATE accounts
		SET one_time_token_hash = $2, updated_at = NOW()
		WHERE account_id = $1;`

	markAccountVerified = `UPDATE accounts
		SET is_verified = TRUE, one_time_token_hash = NULL, updated_at = NOW()
		WHERE account_id = $1 AND one_time_token_hash = $2;`

	resetAccountPassword = `UPDATE accounts
		SET password_hash = $3, one_time_token_hash = NULL, updated_at = NOW()
		WHERE account_id = $1 AND one_time_token_hash = $2;`

	deleteAccount = `DELETE FROM accounts WHERE account_id = $1;`

	createArtist = `INSERT INTO artists (name, dob, gender, address, first_release_year, no_of_albums_released, account_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + artistColumns + `;`

	findArtistByID = `SELECT ` + artistColumns + `
		FROM artists
		WHERE artist_id = $1;`

	findArtistByAccountID = `SELECT ` + artistColumns + `
		FROM artists
		WHERE account_id = $1;`

	listArtists = `SELECT ` + artistColumns + `
		FROM artists
		ORDER BY artist_id
		LIMIT $1 OFFSET $2;`

	countArtists = `SELECT COUNT(*) FROM artists;`

	deleteArtist = `DELETE FROM artists WHERE artist_id = $1;`

	createSong = `INSERT INTO songs (artist_id, title, album_name, genre)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + songColumns + `;`

	findSongByID = `SELECT ` + songColumns + `
		FROM songs
		WHERE song_id = $1;`

	listSongsByArtist = `SELECT ` + songColumns + `
		FROM songs
		WHERE artist_id = $1
		ORDER BY song_id
		LIMIT $2 OFFSET $3;`

	countSongsByArtist = `SELECT COUNT(*) FROM songs WHERE artist_id = $1;`

	deleteSong = `DELETE FROM songs WHERE song_id = $1;`
)

// buildUpdateAccountQuery builds an UPDATE of the fields set in patch that
// returns the whole row.
func buildUpdateAccountQuery(accountID int64, patch models.AccountPatch) (string, []any, error) {
	update := psql.Update("accounts").Set("updated_at", sq.Expr("NOW()"))

	if patch.FirstName != nil {
		update = update.Set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		update = update.Set("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		update = update.Set("email", *patch.Email)
	}
	if patch.Phone != nil {
		update = update.Set("phone", *patch.Phone)
	}
	if patch.DateOfBirth != nil {
		update = update.Set("dob", *patch.DateOfBirth)
	}
	if patch.Gender != nil {
		update = update.Set("gender", string(*patch.Gender))
	}
	if patch.Address != nil {
		update = update.Set("address", *patch.Address)
	}
	if patch.Role != nil {
		update = update.Set("role", string(*patch.Role))
	}

	query, args, err := update.
		Where(sq.Eq{"account_id": accountID}).
		Suffix("RETURNING " + accountColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func accountFilterPredicate(filter models.AccountFilter) sq.And {
	where := sq.And{}
	if filter.Role != "" {
		where = append(where, sq.Eq{"role": string(filter.Role)})
	}
	if filter.Gender != "" {
		where = append(where, sq.Eq{"gender": string(filter.Gender)})
	}
	if filter.IsVerified != nil {
		where = append(where, sq.Eq{"is_verified": *filter.IsVerified})
	}
	return where
}

// buildListAccountsQuery builds a filtered, paginated account listing
// ordered by id.
func buildListAccountsQuery(filter models.AccountFilter, page models.Page) (string, []any, error) {
	query, args, err := psql.Select(accountColumns).
		From("accounts").
		Where(accountFilterPredicate(filter)).
		OrderBy("account_id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountAccountsQuery counts the accounts matching filter.
func buildCountAccountsQuery(filter models.AccountFilter) (string, []any, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("accounts").
		Where(accountFilterPredicate(filter)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateArtistQuery builds an UPDATE of the fields set in patch that
// returns the whole row.
func buildUpdateArtistQuery(artistID int64, patch models.ArtistPatch) (string, []any, error) {
	update := psql.Update("artists").Set("updated_at", sq.Expr("NOW()"))

	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.DateOfBirth != nil {
		update = update.Set("dob", *patch.DateOfBirth)
	}
	if patch.Gender != nil {
		update = update.Set("gender", string(*patch.Gender))
	}
	if patch.Address != nil {
		update = update.Set("address", *patch.Address)
	}
	if patch.FirstReleaseYear != nil {
		update = update.Set("first_release_year", *patch.FirstReleaseYear)
	}
	if patch.AlbumsReleased != nil {
		update = update.Set("no_of_albums_released", *patch.AlbumsReleased)
	}

	query, args, err := update.
		Where(sq.Eq{"artist_id": artistID}).
		Suffix("RETURNING " + artistColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateSongQuery builds an UPDATE of the fields set in patch that
// returns the whole row.
func buildUpdateSongQuery(songID int64, patch models.SongPatch) (string, []any, error) {
	update := psql.Update("songs").Set("updated_at", sq.Expr("NOW()"))

	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}
	if patch.AlbumName != nil {
		update = update.Set("album_name", *patch.AlbumName)
	}
	if patch.Genre != nil {
		update = update.Set("genre", string(*patch.Genre))
	}

	query, args, err := update.
		Where(sq.Eq{"song_id": songID}).
		Suffix("RETURNING " + songColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
