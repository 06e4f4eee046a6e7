// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the artist manager.
//
// It wires chi routes to the service layer and owns the authorization gate:
// session tokens are read from the accessToken cookie or a bearer header,
// verified once per request, and the resulting identity is checked against
// the roles each route accepts. Tracing, access logging and CORS are also
// handled here before requests reach the services.
package http
