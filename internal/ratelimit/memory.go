// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"golang.org/x/time/rate"
)

// MemoryLimiter keeps one token bucket per key. A bucket holds Max tokens
// and refills one token every Cooldown/Max, so a spent budget is fully
// restored after Cooldown.
type MemoryLimiter struct {
	cfg config.RateLimit

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewMemoryLimiter creates an empty [MemoryLimiter].
func NewMemoryLimiter(cfg config.RateLimit) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:     cfg,
		buckets: make(map[string]*rate.Limiter),
	}
}

func (l *MemoryLimiter) bucket(key string, max int, cooldown time.Duration) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		every := rate.Inf
		if cooldown > 0 {
			every = rate.Every(cooldown / time.Duration(max))
		}
		b = rate.NewLimiter(every, max)
		l.buckets[key] = b
	}
	return b
}

// CheckLogin implements [Limiter].
func (l *MemoryLimiter) CheckLogin(_ context.Context, email string) error {
	if l.cfg.MaxLoginAttempts <= 0 {
		return nil
	}

	if l.bucket(loginKey(email), l.cfg.MaxLoginAttempts, l.cfg.LoginCooldown).Tokens() < 1 {
		return ErrRateLimited
	}
	return nil
}

// IncrementLogin implements [Limiter].
func (l *MemoryLimiter) IncrementLogin(_ context.Context, email string) error {
	if l.cfg.MaxLoginAttempts <= 0 {
		return nil
	}

	l.bucket(loginKey(email), l.cfg.MaxLoginAttempts, l.cfg.LoginCooldown).Allow()
	return nil
}

// ResetLogin implements [Limiter].
func (l *MemoryLimiter) ResetLogin(_ context.Context, email string) error {
	l.mu.Lock()
	delete(l.buckets, loginKey(email))
	l.mu.Unlock()

	return nil
}

// CheckPasswordReset implements [Limiter].
func (l *MemoryLimiter) CheckPasswordReset(_ context.Context, email string) error {
	if l.cfg.MaxResetRequests <= 0 {
		return nil
	}

	if !l.bucket(resetKey(email), l.cfg.MaxResetRequests, l.cfg.ResetCooldown).Allow() {
		return ErrRateLimited
	}
	return nil
}
