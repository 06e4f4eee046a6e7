// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-artist-manager/internal/app"
	"github.com/MKhiriev/go-artist-manager/internal/utils"
	"github.com/MKhiriev/go-artist-manager/models"
)

func (h *Handler) createSong(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var song models.Song
	if err = utils.DecodeJSON(r, &song); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.SongService.CreateSong(r.Context(), actor, song)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, app.MsgSongCreated, created)
}

func (h *Handler) getSong(w http.ResponseWriter, r *http.Request) {
	songID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	song, err := h.services.SongService.GetSong(r.Context(), songID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "", song)
}

func (h *Handler) updateSong(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	songID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch models.SongPatch
	if err = utils.DecodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.SongService.UpdateSong(r.Context(), actor, songID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgSongUpdated, updated)
}

func (h *Handler) deleteSong(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	songID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.SongService.DeleteSong(r.Context(), actor, songID); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgSongDeleted, nil)
}

func (h *Handler) listSongsByArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := pathID(r, "artistId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	songs, pagination, err := h.services.SongService.ListSongsByArtist(r.Context(), artistID, pageFromQuery(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePage(w, r, "", songs, pagination)
}
