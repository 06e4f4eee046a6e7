// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-artist-manager/models"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	// MaxPageNumber keeps (page-1)*limit well inside int and PostgreSQL
	// bigint.
	MaxPageNumber = 10_000_000
)

// normalizePage clamps page to [1, MaxPageNumber] and limit to
// [1, MaxPageLimit], substituting DefaultPageLimit for a missing limit.
func normalizePage(page models.Page) models.Page {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Page > MaxPageNumber {
		page.Page = MaxPageNumber
	}
	if page.Limit < 1 {
		page.Limit = DefaultPageLimit
	}
	if page.Limit > MaxPageLimit {
		page.Limit = MaxPageLimit
	}
	return page
}
