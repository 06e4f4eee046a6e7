// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by a session token.
//
// The account id travels in the standard "sub" claim; email and role are
// private claims. Expiry, issuer and issued-at come from
// [jwt.RegisteredClaims].
type SessionClaims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`

	jwt.RegisteredClaims
}

// AccountID parses the "sub" claim as a base-10 int64.
func (c *SessionClaims) AccountID() (int64, error) {
	subject, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting account id from token: %w", err)
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting account id from token to int64: %w", err)
	}

	return accountID, nil
}

// Token is a signed session token together with the identity it encodes.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	Identity
}

// String implements [fmt.Stringer] and returns the compact JWS form.
func (t Token) String() string {
	return t.SignedString
}

// Identity is the authenticated actor attached to a request.
type Identity struct {
	AccountID int64  `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// HasRole reports whether the identity's role is one of roles.
func (i Identity) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if i.Role == role {
			return true
		}
	}
	return false
}

// OneTimeToken is a freshly issued email-verification or password-reset
// token. Raw is sent to the account owner; only Hash is persisted.
type OneTimeToken struct {
	Raw  string
	Hash string
}
