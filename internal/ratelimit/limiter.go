// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"

	"github.com/MKhiriev/go-artist-manager/internal/config"
)

// Limiter enforces per-email budgets.
//
//go:generate mockgen -source=limiter.go -destination=../mock/ratelimit_limiter_mock.go -package=mock
type Limiter interface {
	// CheckLogin reports ErrRateLimited when email has exhausted its failed
	// login budget. It does not consume budget.
	CheckLogin(ctx context.Context, email string) error
	// IncrementLogin records a failed login for email.
	IncrementLogin(ctx context.Context, email string) error
	// ResetLogin clears the failed login counter after a successful login
	// or a password reset.
	ResetLogin(ctx context.Context, email string) error
	// CheckPasswordReset consumes one password-reset request for email and
	// reports ErrRateLimited when the budget is spent.
	CheckPasswordReset(ctx context.Context, email string) error
}

// New returns a Redis-backed limiter when client is non-nil and a memory
// limiter otherwise.
func New(client RedisClient, cfg config.RateLimit) Limiter {
	if client != nil {
		return NewRedisLimiter(client, cfg)
	}
	return NewMemoryLimiter(cfg)
}

func loginKey(email string) string {
	return "ratelimit:login:" + email
}

func resetKey(email string) string {
	return "ratelimit:reset:" + email
}
