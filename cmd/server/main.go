// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/MKhiriev/go-artist-manager/internal/handler"
	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/MKhiriev/go-artist-manager/internal/mail"
	"github.com/MKhiriev/go-artist-manager/internal/ratelimit"
	"github.com/MKhiriev/go-artist-manager/internal/server"
	"github.com/MKhiriev/go-artist-manager/internal/service"
	"github.com/MKhiriev/go-artist-manager/internal/store"
	"github.com/MKhiriev/go-artist-manager/models"
	"github.com/redis/go-redis/v9"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		logger.NewLogger("server", os.Getenv("APP_ENVIRONMENT")).Fatal().Err(err).Msg("server stopped")
	}
}

// run wires every component and blocks until the server shuts down.
// Resources opened here are released on every return path.
func run() error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLogger("server", cfg.App.Environment)
	ctx := log.WithContext(context.Background())

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if build.BuildVersion() != models.BuildInfoUnknown {
		cfg.App.Version = build.BuildVersion()
	}
	log.Info().
		Str("version", build.BuildVersion()).
		Str("date", build.BuildDate()).
		Str("commit", build.BuildCommit()).
		Msg("starting artist manager")

	storages, closeStorage, err := openStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error opening storage: %w", err)
	}
	defer closeStorage()

	var redisClient ratelimit.RedisClient
	if cfg.Storage.Redis.Address != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Address,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		defer client.Close()

		if err = client.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis is unreachable, rate limits fail open until it recovers")
		}
		redisClient = client
	}
	limiter := ratelimit.New(redisClient, cfg.RateLimit)

	mailer, err := mail.NewDispatcher(cfg.Mail, log)
	if err != nil {
		return fmt.Errorf("error creating mail dispatcher: %w", err)
	}
	if err = mailer.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("mail transport is unreachable")
	}

	services, err := service.NewServices(storages, mailer, limiter, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}

// openStorages returns the repositories selected by cfg together with a
// cleanup function. For PostgreSQL it creates and selects the application
// database and applies the schema.
func openStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.Storages, func(), error) {
	if cfg.IsMemory() {
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return store.NewMemoryStorages(), func() {}, nil
	}

	db, err := store.NewDB(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}

	if err = db.EnsureDatabase(ctx, cfg.Name); err != nil {
		cleanup()
		return nil, nil, err
	}
	if err = db.SelectDatabase(ctx, cfg.Name); err != nil {
		cleanup()
		return nil, nil, err
	}
	if err = db.InitializeSchema(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}

	return store.NewStorages(db, log), cleanup, nil
}
