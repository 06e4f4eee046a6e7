// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-artist-manager/internal/app"
	"github.com/MKhiriev/go-artist-manager/internal/utils"
	"github.com/MKhiriev/go-artist-manager/models"
)

func (h *Handler) createArtist(w http.ResponseWriter, r *http.Request) {
	var artist models.Artist
	if err := utils.DecodeJSON(r, &artist); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.ArtistService.CreateArtist(r.Context(), artist)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, app.MsgArtistCreated, created)
}

func (h *Handler) getArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	artist, err := h.services.ArtistService.GetArtist(r.Context(), artistID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "", artist)
}

func (h *Handler) listArtists(w http.ResponseWriter, r *http.Request) {
	artists, pagination, err := h.services.ArtistService.ListArtists(r.Context(), pageFromQuery(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePage(w, r, "", artists, pagination)
}

func (h *Handler) updateArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch models.ArtistPatch
	if err = utils.DecodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.ArtistService.UpdateArtist(r.Context(), artistID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgArtistUpdated, updated)
}

func (h *Handler) deleteArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ArtistService.DeleteArtist(r.Context(), artistID); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgArtistDeleted, nil)
}
