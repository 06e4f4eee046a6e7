// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-artist-manager/internal/app"
	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/MKhiriev/go-artist-manager/internal/service"
	"github.com/MKhiriev/go-artist-manager/internal/utils"
	"github.com/MKhiriev/go-artist-manager/models"
)

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	envelope := models.Response{Success: true, Message: message, Data: data}
	if _, err := utils.WriteJSON(w, envelope, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

func writePage(w http.ResponseWriter, r *http.Request, message string, data any, pagination models.Pagination) {
	envelope := models.Response{Success: true, Message: message, Data: data, Pagination: &pagination}
	if _, err := utils.WriteJSON(w, envelope, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

// writeError answers with the status mapped from err. Service errors carry
// a message meant for the caller; anything else is reported generically
// and logged in full.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var message string
	var svcErr *service.Error
	switch {
	case errors.As(err, &svcErr):
		message = svcErr.Message
	case errors.Is(err, utils.ErrEmptyBody), errors.Is(err, utils.ErrMalformedBody), errors.Is(err, ErrInvalidPathID):
		message = app.MsgInvalidDataProvided
	case status == http.StatusServiceUnavailable:
		message = app.MsgServiceUnavailable
	default:
		message = app.MsgInternalServerError
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.Response{Success: false, Message: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("writing error response failed")
	}
}
