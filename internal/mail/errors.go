// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mail

import "errors"

var (
	// ErrMailUnavailable wraps every transport failure.
	ErrMailUnavailable = errors.New("mail transport unavailable")
	// ErrInvalidMessage is returned when recipient or link is empty.
	ErrInvalidMessage = errors.New("invalid mail message")
	// ErrUnknownTransport is returned by NewDispatcher for an unsupported
	// config.Mail.Transport value.
	ErrUnknownTransport = errors.New("unknown mail transport")
)
