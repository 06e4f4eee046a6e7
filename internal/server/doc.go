// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the configured transport servers and stops them
// gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
