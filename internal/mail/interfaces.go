// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mail

import "context"

// Dispatcher delivers account lifecycle emails.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/mail_dispatcher_mock.go -package=mock
type Dispatcher interface {
	// SendVerificationEmail mails link to the freshly registered address.
	SendVerificationEmail(ctx context.Context, to, link string) error
	// SendPasswordResetEmail mails a password reset link.
	SendPasswordResetEmail(ctx context.Context, to, link string) error
	// Ping checks that the transport is reachable.
	Ping(ctx context.Context) error
}

// transport is the delivery mechanism behind a dispatcher.
type transport interface {
	send(ctx context.Context, msg Message) error
	ping(ctx context.Context) error
}
