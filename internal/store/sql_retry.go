// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/sethvargo/go-retry"
)

// retrySettings is the retry budget of a single statement.
type retrySettings struct {
	maxRetries int
	interval   time.Duration
}

// RetryOption overrides the configured retry budget for one call.
type RetryOption func(*retrySettings)

// WithMaxRetries sets how many times a transient failure is retried.
// Zero disables retries.
func WithMaxRetries(n int) RetryOption {
	return func(s *retrySettings) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// WithRetryInterval sets the fixed delay between attempts.
func WithRetryInterval(d time.Duration) RetryOption {
	return func(s *retrySettings) {
		if d > 0 {
			s.interval = d
		}
	}
}

func retrySettingsFrom(cfg config.DB) retrySettings {
	s := retrySettings{maxRetries: cfg.MaxRetries, interval: cfg.RetryInterval}
	if s.maxRetries < 0 {
		s.maxRetries = 0
	}
	if s.interval <= 0 {
		s.interval = time.Millisecond
	}
	return s
}

// withRetry calls fn until it succeeds, fails with an error classifier
// does not consider transient, or the budget is spent. Exhaustion is
// reported as [ErrRetriesExhausted] wrapping the last transient error.
func withRetry(ctx context.Context, statement string, s retrySettings, classifier ErrorClassificator, fn func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	backoff := retry.WithMaxRetries(uint64(s.maxRetries), retry.NewConstant(s.interval))

	attempts := 0
	var lastTransient error
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		lastTransient = nil

		err := fn(ctx)
		if err == nil {
			return nil
		}

		if classifier.Classify(err) == Retryable {
			lastTransient = err
			log.Warn().Err(err).
				Str("func", "withRetry").
				Str("statement", statement).
				Int("attempt", attempts).
				Msg("transient database error")
			return retry.RetryableError(err)
		}

		return err
	})

	if err != nil && lastTransient != nil && ctx.Err() == nil {
		return fmt.Errorf("%w: statement %q failed after %d attempts: %w", ErrRetriesExhausted, statement, attempts, lastTransient)
	}

	return err
}
