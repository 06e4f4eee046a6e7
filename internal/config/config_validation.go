// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost out of range", ErrInvalidAppConfigs)
	}
	if cfg.App.Environment != "development" && cfg.App.Environment != "production" {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if !cfg.Storage.DB.IsMemory() && cfg.Storage.DB.Name == "" {
		return fmt.Errorf("%w: database name is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 1 || cfg.Storage.DB.MaxRetries < 0 {
		return fmt.Errorf("%w: pool size and retries must not be negative", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch cfg.Mail.Transport {
	case "smtp":
	case "http":
		if cfg.Mail.RelayURL == "" {
			return fmt.Errorf("%w: relay url is required for http transport", ErrInvalidMailConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidMailConfigs, cfg.Mail.Transport)
	}

	return nil
}
