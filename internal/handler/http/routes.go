// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-artist-manager/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var (
	managers  = []models.Role{models.RoleSuperAdmin, models.RoleArtistManager}
	everyRole = models.Roles
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/user", func(r chi.Router) {
		// routes without authorization
		r.With(h.optionalAuthenticate).Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/verify-email", h.verifyEmail)
		r.Post("/forgot-password", h.forgotPassword)
		r.Post("/reset-password", h.resetPassword)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.With(requireRoles(everyRole...)).Get("/profile", h.getProfile)

			r.Group(func(r chi.Router) {
				r.Use(requireRoles(managers...))
				r.Get("/", h.listUsers)
				r.Patch("/{id}", h.updateUser)
				r.Delete("/{id}", h.deleteUser)
			})
		})
	})

	router.Route("/api/artists", func(r chi.Router) {
		r.Use(h.authenticate)

		r.With(requireRoles(everyRole...)).Get("/", h.listArtists)
		r.With(requireRoles(everyRole...)).Get("/{id}", h.getArtist)
		r.With(requireRoles(managers...)).Post("/", h.createArtist)
		r.With(requireRoles(managers...)).Patch("/{id}", h.updateArtist)
		r.With(requireRoles(managers...)).Delete("/{id}", h.deleteArtist)
	})

	router.Route("/api/songs", func(r chi.Router) {
		r.Use(h.authenticate)
		r.Use(requireRoles(everyRole...))

		r.Post("/", h.createSong)
		r.Get("/{id}", h.getSong)
		r.Patch("/{id}", h.updateSong)
		r.With(requireRoles(models.RoleSuperAdmin, models.RoleArtist)).Delete("/{id}", h.deleteSong)
		r.Get("/artist/{artistId}", h.listSongsByArtist)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
