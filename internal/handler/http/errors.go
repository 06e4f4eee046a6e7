// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request input. They never reach
// the client verbatim; the boundary answers with a generic 400 message.
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a "Bearer <token>" pair.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the bearer scheme is present but the
	// token value is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidPathID is returned when a numeric path parameter does not
	// parse as a positive integer.
	ErrInvalidPathID = errors.New("invalid id in path")
)
