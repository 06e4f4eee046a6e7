// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads (registration, patches,
// artists and songs) before they reach storage. Services call Validate with
// an optional list of fields to check only part of a payload.
package validators

import "context"

// Validator checks a request payload. Unsupported payload types yield
// ErrUnsupportedType; field names outside the payload's set yield
// ErrUnknownField.
type Validator interface {
	// Validate validates the provided input. When field names are given,
	// only those fields are checked, in the given order.
	Validate(ctx context.Context, obj any, fields ...string) error
}
