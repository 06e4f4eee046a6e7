// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/MKhiriev/go-artist-manager/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "artist-manager",
		TokenDuration:    5 * time.Hour,
		PasswordHashCost: bcrypt.DefaultCost,
		FrontendURL:      "http://localhost:3000/",
		Version:          "test",
	}
}

// newTestCredentials returns a credential service with the cheapest bcrypt
// cost and a controllable clock.
func newTestCredentials(now *time.Time) *credentialService {
	c := newCredentialService(testAppConfig(), func() time.Time { return *now })
	c.hashCost = bcrypt.MinCost
	return c
}

func TestNewCredentialService_ClampsCost(t *testing.T) {
	cfg := testAppConfig()
	cfg.PasswordHashCost = 4

	c := newCredentialService(cfg, time.Now)
	assert.Equal(t, bcrypt.DefaultCost, c.hashCost)
}

func TestHashPassword(t *testing.T) {
	now := time.Now()
	c := newTestCredentials(&now)

	hash, err := c.HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, c.VerifyPassword("correct horse", hash))
	assert.False(t, c.VerifyPassword("wrong horse", hash))
	assert.False(t, c.VerifyPassword("correct horse", "not-a-bcrypt-hash"))

	other, err := c.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes must be salted")
}

func TestIssueOneTimeToken(t *testing.T) {
	now := time.Now()
	c := newTestCredentials(&now)

	first, err := c.IssueOneTimeToken()
	require.NoError(t, err)
	second, err := c.IssueOneTimeToken()
	require.NoError(t, err)

	assert.Len(t, first.Raw, 64)
	assert.Len(t, first.Hash, 64)
	assert.NotEqual(t, first.Raw, first.Hash)
	assert.NotEqual(t, first.Raw, second.Raw)
	assert.Equal(t, first.Hash, c.HashOneTimeToken(first.Raw))
}

func TestSessionToken_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCredentials(&now)
	identity := models.Identity{AccountID: 42, Email: "jane@example.com", Role: models.RoleArtistManager}

	token, err := c.IssueSessionToken(identity)
	require.NoError(t, err)

	now = now.Add(4*time.Hour + 59*time.Minute)
	parsed, err := c.VerifySessionToken(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed.Identity)
}

func TestSessionToken_Rejections(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	c := newTestCredentials(&now)
	identity := models.Identity{AccountID: 7, Email: "a@b.c", Role: models.RoleArtist}

	token, err := c.IssueSessionToken(identity)
	require.NoError(t, err)

	parts := strings.Split(token.SignedString, ".")
	require.Len(t, parts, 3)

	tamperedPayload := base64.RawURLEncoding.EncodeToString(
		[]byte(`{"email":"a@b.c","role":"super_admin","iss":"artist-manager","sub":"7","exp":9999999999,"iat":1}`))

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &models.SessionClaims{
		Role: models.RoleSuperAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "artist-manager",
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	otherKey := testAppConfig()
	otherKey.TokenSignKey = "another-key"
	foreign, err := newCredentialService(otherKey, func() time.Time { return issuedAt }).IssueSessionToken(identity)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		at    time.Time
	}{
		{name: "expired", token: token.SignedString, at: issuedAt.Add(5*time.Hour + time.Second)},
		{name: "tampered payload", token: parts[0] + "." + tamperedPayload + "." + parts[2], at: issuedAt},
		{name: "tampered signature", token: parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2])), at: issuedAt},
		{name: "alg none", token: noneToken, at: issuedAt},
		{name: "foreign key", token: foreign.SignedString, at: issuedAt},
		{name: "malformed", token: "not.a.jwt", at: issuedAt},
		{name: "empty", token: "", at: issuedAt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = tt.at
			_, err := c.VerifySessionToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidSessionToken)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}
