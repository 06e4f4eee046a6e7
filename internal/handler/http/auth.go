// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-artist-manager/internal/app"
	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/MKhiriev/go-artist-manager/internal/service"
	"github.com/MKhiriev/go-artist-manager/internal/utils"
	"github.com/MKhiriev/go-artist-manager/models"
)

type loginResponse struct {
	ID       int64       `json:"id"`
	Role     models.Role `json:"role"`
	ArtistID *int64      `json:"artistId,omitempty"`
}

// register creates an account. Anonymous callers may register any role;
// an authenticated artist manager may only register artists.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	var actor *models.Identity
	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		actor = &identity
	}

	id, err := h.services.AccountService.Register(r.Context(), req, actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, app.MsgUserRegistered, map[string]int64{"id": id})
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, r, service.ErrInvalidOneTimeToken)
		return
	}

	if err := h.services.AccountService.VerifyEmail(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgEmailVerified, map[string]bool{"is_verified": true})
}

// login authenticates and hands out the session token twice: as the
// accessToken cookie for browsers and as an Authorization header for
// other clients.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AccountService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, h.cookies.session(result.Token.SignedString))
	w.Header().Set("Authorization", "Bearer "+result.Token.SignedString)

	resp := loginResponse{ID: result.Account.AccountID, Role: result.Account.Role}
	if result.Artist != nil {
		resp.ArtistID = &result.Artist.ArtistID
	}

	logger.FromRequest(r).Debug().Int64("account_id", resp.ID).Msg("session issued")
	writeSuccess(w, r, http.StatusOK, app.MsgLoginSuccessful, resp)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookies.cleared())
	writeSuccess(w, r, http.StatusOK, app.MsgLoggedOut, nil)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AccountService.InitiatePasswordReset(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgResetEmailSent, nil)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AccountService.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgPasswordReset, nil)
}
