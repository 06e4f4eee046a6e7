// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of go-redis used by [RedisLimiter].
type RedisClient interface {
	redis.Cmdable
}

// RedisLimiter keeps fixed-window counters in Redis. The window starts at
// the first hit and lasts for the configured cooldown.
type RedisLimiter struct {
	redis RedisClient
	cfg   config.RateLimit
}

// NewRedisLimiter creates a [RedisLimiter] backed by client.
func NewRedisLimiter(client RedisClient, cfg config.RateLimit) *RedisLimiter {
	return &RedisLimiter{
		redis: client,
		cfg:   cfg,
	}
}

// CheckLogin implements [Limiter].
func (l *RedisLimiter) CheckLogin(ctx context.Context, email string) error {
	if l.cfg.MaxLoginAttempts <= 0 {
		return nil
	}

	count, err := l.redis.Get(ctx, loginKey(email)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	if count >= int64(l.cfg.MaxLoginAttempts) {
		return ErrRateLimited
	}

	return nil
}

// IncrementLogin implements [Limiter].
func (l *RedisLimiter) IncrementLogin(ctx context.Context, email string) error {
	if l.cfg.MaxLoginAttempts <= 0 {
		return nil
	}

	_, err := l.incrementWithTTL(ctx, loginKey(email), l.cfg.LoginCooldown)
	return err
}

// ResetLogin implements [Limiter].
func (l *RedisLimiter) ResetLogin(ctx context.Context, email string) error {
	if err := l.redis.Del(ctx, loginKey(email)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return nil
}

// CheckPasswordReset implements [Limiter].
func (l *RedisLimiter) CheckPasswordReset(ctx context.Context, email string) error {
	if l.cfg.MaxResetRequests <= 0 {
		return nil
	}

	count, err := l.incrementWithTTL(ctx, resetKey(email), l.cfg.ResetCooldown)
	if err != nil {
		return err
	}
	if count > int64(l.cfg.MaxResetRequests) {
		return ErrRateLimited
	}

	return nil
}

func (l *RedisLimiter) incrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	// Fixed-window semantics: set TTL only for the first hit in the window.
	if count == 1 {
		if err := l.redis.Expire(ctx, key, ttl).Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
	}

	return count, nil
}
