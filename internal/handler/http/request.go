// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-artist-manager/models"
	"github.com/go-chi/chi/v5"
)

// pathID parses the named chi URL parameter as a positive id.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathID, name, raw)
	}
	return id, nil
}

// pageFromQuery reads ?page= and ?limit=. Missing or malformed values are
// left zero and replaced by defaults in the service layer.
func pageFromQuery(r *http.Request) models.Page {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	return models.Page{Page: page, Limit: limit}
}

// accountFilterFromQuery reads ?role=, ?gender= and ?is_verified=.
func accountFilterFromQuery(r *http.Request) models.AccountFilter {
	query := r.URL.Query()
	filter := models.AccountFilter{
		Role:   models.Role(query.Get("role")),
		Gender: models.Gender(query.Get("gender")),
	}
	if verified, err := strconv.ParseBool(query.Get("is_verified")); err == nil {
		filter.IsVerified = &verified
	}
	return filter
}

// tokenFromAuthHeader extracts the token from "Bearer <token>".
func tokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
