// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-artist-manager/internal/app"
	"github.com/MKhiriev/go-artist-manager/models"
)

// Error kinds. Every [*Error] unwraps to exactly one of them, so callers
// match the kind with errors.Is and the HTTP boundary maps it to a status.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrValidation         = errors.New("validation failed")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrInternal           = errors.New("internal error")
)

// Error is a typed service failure: a kind plus a human-readable message
// that is safe to show to the caller.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Well-known failures.
var (
	ErrInvalidCredentials  = &Error{Kind: ErrUnauthorized, Message: app.MsgInvalidCredentials}
	ErrEmailNotVerified    = &Error{Kind: ErrForbidden, Message: app.MsgEmailNotVerified}
	ErrEmailAlreadyExists  = &Error{Kind: ErrConflict, Message: app.MsgEmailAlreadyExists}
	ErrEmailInUse          = &Error{Kind: ErrConflict, Message: app.MsgEmailInUse}
	ErrInvalidOneTimeToken = &Error{Kind: ErrNotFound, Message: app.MsgInvalidOrExpiredToken}
	ErrInvalidSessionToken = &Error{Kind: ErrUnauthorized, Message: app.MsgInvalidOrExpiredToken}
	ErrMissingCredentials  = &Error{Kind: ErrForbidden, Message: app.MsgNoTokenProvided}
	ErrNotAuthenticated    = &Error{Kind: ErrUnauthorized, Message: app.MsgUnauthorized}
	ErrSelfRemoval         = &Error{Kind: ErrConflict, Message: app.MsgSelfRemoval}
	ErrManagerArtistOnly   = &Error{Kind: ErrForbidden, Message: app.MsgManagerAssignsArtistOnly}
	ErrMailUnavailable     = &Error{Kind: ErrServiceUnavailable, Message: app.MsgMailUnavailable}
	ErrRateLimited         = &Error{Kind: ErrTooManyRequests, Message: app.MsgTooManyRequests}
	ErrAccountNotFound     = &Error{Kind: ErrNotFound, Message: app.MsgUserNotFoundByEmail}
	ErrArtistProfileAbsent = &Error{Kind: ErrNotFound, Message: app.MsgArtistProfileNotFound}
	ErrArtistAlreadyExists = &Error{Kind: ErrConflict, Message: app.MsgArtistAlreadyExists}
	ErrArtistOwnerInvalid  = &Error{Kind: ErrValidation, Message: app.MsgArtistOwnerInvalid}
	ErrArtistOwnerRole     = &Error{Kind: ErrConflict, Message: app.MsgArtistOwnerKeepsRole}
	ErrSongNotFound        = &Error{Kind: ErrNotFound, Message: app.MsgSongNotFound}
	ErrNotYourArtist       = &Error{Kind: ErrForbidden, Message: app.MsgNotYourArtist}

	ErrVersionIsNotSpecified = errors.New(app.MsgVersionIsNotSpecified)
)

// ForbiddenRoleError reports a role gate rejection naming the accepted roles.
func ForbiddenRoleError(roles ...models.Role) *Error {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return newError(ErrForbidden, app.MsgRoleRequired, strings.Join(names, ", "))
}

// ValidationError wraps a validator failure.
func ValidationError(err error) *Error {
	return newError(ErrValidation, "%s: %v", app.MsgValidationFailed, err)
}

func accountNotFound(id int64) *Error {
	return newError(ErrNotFound, app.MsgUserNotFound, id)
}

func artistNotFound(id int64) *Error {
	return newError(ErrNotFound, app.MsgArtistNotFound, id)
}
