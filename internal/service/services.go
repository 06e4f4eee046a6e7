// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/MKhiriev/go-artist-manager/internal/mail"
	"github.com/MKhiriev/go-artist-manager/internal/ratelimit"
	"github.com/MKhiriev/go-artist-manager/internal/store"
	"github.com/MKhiriev/go-artist-manager/internal/validators"
)

// Services groups the business services handed to the transport layer.
type Services struct {
	CredentialService CredentialService
	AccountService    AccountService
	ArtistService     ArtistService
	SongService       SongService
	AppInfoService    AppInfoService
}

// NewServices wires every service over the given storages and
// collaborators.
func NewServices(storages *store.Storages, mailer mail.Dispatcher, limiter ratelimit.Limiter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewDomainValidator()
	credentials := NewCredentialService(cfg.App)

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		CredentialService: credentials,
		AccountService:    NewAccountService(storages, credentials, mailer, limiter, validator, cfg.App, logger),
		ArtistService:     NewArtistService(storages, validator, logger),
		SongService:       NewSongService(storages, validator, logger),
		AppInfoService:    appInfo,
	}, nil
}
