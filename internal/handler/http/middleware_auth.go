// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/MKhiriev/go-artist-manager/internal/service"
	"github.com/MKhiriev/go-artist-manager/internal/utils"
	"github.com/MKhiriev/go-artist-manager/models"
	"github.com/rs/zerolog"
)

// authenticate is the authorization gate for protected routes.
//
// The session token is taken from the accessToken cookie, falling back to
// an "Authorization: Bearer" header. A request carrying neither is rejected
// with 403 and [service.ErrMissingCredentials]. A token that fails
// verification, whether expired, tampered or malformed, is rejected with
// 401 and [service.ErrInvalidSessionToken]. On success the verified
// [models.Identity] is stored in the request context.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.identityFromRequest(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("authentication failed")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, withIdentity(r, identity))
	})
}

// optionalAuthenticate attaches the identity when the request carries a
// valid session token and lets anonymous requests through untouched. An
// invalid token is treated as no token.
func (h *Handler) optionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.identityFromRequest(r)
		if err == nil {
			r = withIdentity(r, identity)
		}
		next.ServeHTTP(w, r)
	})
}

// requireRoles admits only identities holding one of roles. It must run
// after authenticate; a request without identity is answered with 401.
func requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				writeError(w, r, service.ErrNotAuthenticated)
				return
			}
			if !identity.HasRole(roles...) {
				logger.FromRequest(r).Debug().
					Int64("account_id", identity.AccountID).
					Str("role", string(identity.Role)).
					Msg("role gate rejected request")
				writeError(w, r, service.ForbiddenRoleError(roles...))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// withIdentity stores identity in the request context and tags the
// request logger with the account id.
func withIdentity(r *http.Request, identity models.Identity) *http.Request {
	l := logger.FromRequest(r).GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Int64("account_id", identity.AccountID)
	})

	ctx := utils.WithIdentity(r.Context(), identity)
	return r.WithContext(l.WithContext(ctx))
}

func (h *Handler) identityFromRequest(r *http.Request) (models.Identity, error) {
	raw, err := sessionTokenFromRequest(r)
	if err != nil {
		return models.Identity{}, err
	}

	token, err := h.services.CredentialService.VerifySessionToken(raw)
	if err != nil {
		return models.Identity{}, err
	}
	return token.Identity, nil
}

func sessionTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", service.ErrMissingCredentials
	}
	token, err := tokenFromAuthHeader(authHeader)
	if err != nil {
		return "", service.ErrInvalidSessionToken
	}
	return token, nil
}
