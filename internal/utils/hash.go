// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// OneTimeTokenBytes is the entropy of a verification or reset token.
const OneTimeTokenBytes = 32

// GenerateRandomToken returns n cryptographically random bytes encoded as
// lowercase hex.
func GenerateRandomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating random token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// HashToken returns the hex-encoded SHA-256 digest of raw. One-time tokens
// are stored only in this form.
//
// Example usage:
//
//	hash := utils.HashToken(rawTokenFromLink)
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
