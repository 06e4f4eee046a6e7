// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-artist-manager/internal/app"
	"github.com/MKhiriev/go-artist-manager/internal/service"
	"github.com/MKhiriev/go-artist-manager/internal/utils"
	"github.com/MKhiriev/go-artist-manager/models"
)

// actorFromRequest returns the identity stored by authenticate. Routes
// using it are always mounted behind the gate, so a miss means a wiring
// bug and is reported as unauthenticated.
func actorFromRequest(r *http.Request) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, service.ErrNotAuthenticated
	}
	return identity, nil
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.AccountService.GetProfile(r.Context(), actor.AccountID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgProfileFetched, profile)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	accounts, pagination, err := h.services.AccountService.ListAccounts(r.Context(), actor, accountFilterFromQuery(r), pageFromQuery(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePage(w, r, app.MsgUsersFetched, accounts, pagination)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	targetID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch models.AccountPatch
	if err = utils.DecodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.AccountService.UpdateProfile(r.Context(), actor, targetID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgUserUpdated, updated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	targetID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AccountService.RemoveAccount(r.Context(), actor, targetID); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgUserDeleted, nil)
}
