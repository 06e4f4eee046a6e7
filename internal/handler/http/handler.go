// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/MKhiriev/go-artist-manager/internal/service"
)

type Handler struct {
	services *service.Services

	cookies        cookieSettings
	allowedOrigins map[string]struct{}

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	origins := make(map[string]struct{}, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		origins[origin] = struct{}{}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cookies: cookieSettings{
			secure: cfg.App.IsProduction(),
			maxAge: cfg.App.CookieMaxAge,
		},
		allowedOrigins: origins,
		logger:         logger,
	}
}
