// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mail renders and delivers account lifecycle emails: address
// verification after registration and password reset links.
//
// A [Dispatcher] is built once at startup by [NewDispatcher] from
// config.Mail and injected into the account service. Two transports are
// available:
//
//   - "smtp": plain SMTP (with optional STARTTLS and PLAIN auth), suitable for
//     Mailpit/MailHog in development and any relay in production;
//   - "http": a JSON mail relay API compatible with Mailpit's /api/v1/send.
//
// Every delivery failure is reported as [ErrMailUnavailable] so callers can
// roll back or surface a "service unavailable" response.
package mail
