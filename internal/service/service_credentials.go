// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/MKhiriev/go-artist-manager/internal/utils"
	"github.com/MKhiriev/go-artist-manager/models"
	"golang.org/x/crypto/bcrypt"
)

// credentialService is the concrete implementation of CredentialService.
// All state is read-only after construction, so it is safe for concurrent
// use.
type credentialService struct {
	// hashCost is the bcrypt work factor.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	now func() time.Time
}

// NewCredentialService builds a CredentialService from the App section of
// the configuration. A cost below bcrypt.DefaultCost is raised to it.
func NewCredentialService(cfg config.App) CredentialService {
	return newCredentialService(cfg, time.Now)
}

func newCredentialService(cfg config.App, now func() time.Time) *credentialService {
	cost := cfg.PasswordHashCost
	if cost < bcrypt.DefaultCost {
		cost = bcrypt.DefaultCost
	}

	return &credentialService{
		hashCost:      cost,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           now,
	}
}

func (c *credentialService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), c.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (c *credentialService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (c *credentialService) IssueOneTimeToken() (models.OneTimeToken, error) {
	raw, err := utils.GenerateRandomToken(utils.OneTimeTokenBytes)
	if err != nil {
		return models.OneTimeToken{}, err
	}
	return models.OneTimeToken{Raw: raw, Hash: utils.HashToken(raw)}, nil
}

func (c *credentialService) HashOneTimeToken(raw string) string {
	return utils.HashToken(raw)
}

// IssueSessionToken signs a token for identity that expires tokenDuration
// after now.
func (c *credentialService) IssueSessionToken(identity models.Identity) (models.Token, error) {
	token, err := utils.GenerateJWTToken(c.tokenIssuer, identity, c.now(), c.tokenDuration, c.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("issue session token: %w", err)
	}
	return token, nil
}

// VerifySessionToken normalises every validation failure (expired, wrong
// issuer, wrong algorithm, bad signature, malformed) to
// ErrInvalidSessionToken.
func (c *credentialService) VerifySessionToken(token string) (models.Token, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, c.tokenSignKey, c.tokenIssuer, c.now())
	if err != nil {
		return models.Token{}, ErrInvalidSessionToken
	}
	if !parsed.Role.IsValid() {
		return models.Token{}, ErrInvalidSessionToken
	}
	return parsed, nil
}
