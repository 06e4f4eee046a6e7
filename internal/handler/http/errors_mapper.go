// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-artist-manager/internal/service"
	"github.com/MKhiriev/go-artist-manager/internal/store"
	"github.com/MKhiriev/go-artist-manager/internal/utils"
)

// errorStatusMap maps error kinds to HTTP statuses. The targets are
// disjoint: a service error unwraps to exactly one kind and store errors
// only surface when no kind applies.
var errorStatusMap = map[error]int{
	service.ErrNotFound:           http.StatusNotFound,
	service.ErrConflict:           http.StatusConflict,
	service.ErrForbidden:          http.StatusForbidden,
	service.ErrUnauthorized:       http.StatusUnauthorized,
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrServiceUnavailable: http.StatusServiceUnavailable,
	service.ErrTooManyRequests:    http.StatusTooManyRequests,
	service.ErrInternal:           http.StatusInternalServerError,

	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrRetriesExhausted:   http.StatusServiceUnavailable,
	store.ErrNoDatabaseSelected: http.StatusInternalServerError,

	utils.ErrEmptyBody:     http.StatusBadRequest,
	utils.ErrMalformedBody: http.StatusBadRequest,
	ErrInvalidPathID:       http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
