// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-artist-manager/internal/app"
	"github.com/MKhiriev/go-artist-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserManagementRoutes(t *testing.T) {
	api := newTestAPI(t)
	admin, adminToken := api.seed("admin@example.com", models.RoleSuperAdmin)
	manager, managerToken := api.seed("manager@example.com", models.RoleArtistManager)
	artist, artistToken := api.seed("artist@example.com", models.RoleArtist)
	api.seed("artist2@example.com", models.RoleArtist)

	t.Run("artist cannot list users", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/user", "", withBearer(artistToken))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("manager lists artists only", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/user?role=super_admin&page=1&limit=1", "", withBearer(managerToken))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		env := decodeEnvelope(t, rec)
		accounts := decodeData[[]models.Account](t, env)
		require.Len(t, accounts, 1)
		assert.Equal(t, models.RoleArtist, accounts[0].Role)
		require.NotNil(t, env.Pagination)
		assert.Equal(t, models.Pagination{Total: 2, TotalPages: 2, CurrentPage: 1, PerPage: 1}, *env.Pagination)
	})

	t.Run("password hash never leaves the server", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/user", "", withBearer(adminToken))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "$2a$")
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("manager cannot promote", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/user/"+itoa(artist.AccountID), `{"role":"super_admin"}`, withBearer(managerToken))
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, app.MsgManagerAssignsArtistOnly, decodeEnvelope(t, rec).Message)
	})

	t.Run("email collision", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/user/"+itoa(artist.AccountID), `{"email":"Manager@Example.com"}`, withBearer(adminToken))
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, app.MsgEmailInUse, decodeEnvelope(t, rec).Message)
	})

	t.Run("update", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/user/"+itoa(artist.AccountID), `{"first_name":"Renamed"}`, withBearer(managerToken))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Renamed", decodeData[models.Account](t, decodeEnvelope(t, rec)).FirstName)
	})

	t.Run("missing target", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/user/99", `{"first_name":"X"}`, withBearer(adminToken))
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found with id 99", decodeEnvelope(t, rec).Message)
	})

	t.Run("bad id", func(t *testing.T) {
		rec := api.do(http.MethodDelete, "/api/user/abc", "", withBearer(adminToken))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgInvalidDataProvided, decodeEnvelope(t, rec).Message)
	})

	t.Run("self removal", func(t *testing.T) {
		rec := api.do(http.MethodDelete, "/api/user/"+itoa(admin.AccountID), "", withBearer(adminToken))
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, app.MsgSelfRemoval, decodeEnvelope(t, rec).Message)
	})

	t.Run("manager cannot remove admin", func(t *testing.T) {
		rec := api.do(http.MethodDelete, "/api/user/"+itoa(admin.AccountID), "", withBearer(managerToken))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin removes manager", func(t *testing.T) {
		rec := api.do(http.MethodDelete, "/api/user/"+itoa(manager.AccountID), "", withBearer(adminToken))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, app.MsgUserDeleted, decodeEnvelope(t, rec).Message)
	})
}

func TestArtistAndSongRoutes(t *testing.T) {
	api := newTestAPI(t)
	_, adminToken := api.seed("admin@example.com", models.RoleSuperAdmin)
	_, managerToken := api.seed("manager@example.com", models.RoleArtistManager)
	nina, ninaToken := api.seed("nina@example.com", models.RoleArtist)
	billie, billieToken := api.seed("billie@example.com", models.RoleArtist)

	createArtist := func(owner models.Account) models.Artist {
		rec := api.do(http.MethodPost, "/api/artists", `{"name":"`+owner.Email+`","user_id":`+itoa(owner.AccountID)+`}`, withBearer(managerToken))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		return decodeData[models.Artist](t, decodeEnvelope(t, rec))
	}
	ninaArtist := createArtist(nina)
	billieArtist := createArtist(billie)

	t.Run("artist cannot create artists", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/artists", `{"name":"X","user_id":1}`, withBearer(ninaToken))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("second profile conflicts", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/artists", `{"name":"Again","user_id":`+itoa(nina.AccountID)+`}`, withBearer(adminToken))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("list artists", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/artists?limit=1&page=2", "", withBearer(ninaToken))
		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		artists := decodeData[[]models.Artist](t, env)
		require.Len(t, artists, 1)
		assert.Equal(t, billieArtist.ArtistID, artists[0].ArtistID)
		assert.Equal(t, 2, env.Pagination.Total)
	})

	t.Run("huge page number", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/artists?limit=100&page=184467440737095516", "", withBearer(ninaToken))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Empty(t, decodeData[[]models.Artist](t, decodeEnvelope(t, rec)))
	})

	t.Run("get missing artist", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/artists/404", "", withBearer(ninaToken))
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Artist not found with id 404", decodeEnvelope(t, rec).Message)
	})

	var songID int64
	t.Run("artist creates own song", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/songs", `{"title":"Feeling Good","genre":"jazz","artist_id":`+itoa(ninaArtist.ArtistID)+`}`, withCookie(ninaToken))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		songID = decodeData[models.Song](t, decodeEnvelope(t, rec)).SongID
	})

	t.Run("artist cannot touch foreign songs", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/songs/"+itoa(songID), `{"title":"Mine now"}`, withCookie(billieToken))
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, app.MsgNotYourArtist, decodeEnvelope(t, rec).Message)

		rec = api.do(http.MethodPost, "/api/songs", `{"title":"Sneaky","artist_id":`+itoa(ninaArtist.ArtistID)+`}`, withCookie(billieToken))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("invalid genre", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/songs/"+itoa(songID), `{"genre":"polka"}`, withCookie(ninaToken))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("manager cannot delete songs", func(t *testing.T) {
		rec := api.do(http.MethodDelete, "/api/songs/"+itoa(songID), "", withBearer(managerToken))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list songs by artist", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/songs/artist/"+itoa(ninaArtist.ArtistID), "", withBearer(managerToken))
		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		songs := decodeData[[]models.Song](t, env)
		require.Len(t, songs, 1)
		assert.Equal(t, "Feeling Good", songs[0].Title)
		assert.Equal(t, models.Pagination{Total: 1, TotalPages: 1, CurrentPage: 1, PerPage: 10}, *env.Pagination)
	})

	t.Run("deleting the artist cascades to songs", func(t *testing.T) {
		rec := api.do(http.MethodDelete, "/api/artists/"+itoa(ninaArtist.ArtistID), "", withBearer(adminToken))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = api.do(http.MethodGet, "/api/songs/"+itoa(songID), "", withBearer(adminToken))
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgSongNotFound, decodeEnvelope(t, rec).Message)
	})
}

func TestInit_VersionAndUnknownMethods(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v-test", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	rec = api.do(http.MethodPut, "/api/version", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_CORS(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodOptions, "/api/user/login", "", func(r *http.Request) {
		r.Header.Set("Origin", "http://localhost:3000")
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	rec = api.do(http.MethodOptions, "/api/user/login", "", func(r *http.Request) {
		r.Header.Set("Origin", "https://evil.example")
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
