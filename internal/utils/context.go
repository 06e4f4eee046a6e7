// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the transport and service
// layers: the identity context key, JSON body helpers, session token
// signing and email normalization.
package utils

import (
	"context"

	"github.com/MKhiriev/go-artist-manager/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the authenticated actor in the
// context. Use WithIdentity and GetIdentityFromContext instead of
// accessing it directly.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext reports false for anonymous requests.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
