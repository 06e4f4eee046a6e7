// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/MKhiriev/go-artist-manager/internal/logger"
)

type dispatcher struct {
	from      string
	timeout   time.Duration
	transport transport
	logger    *logger.Logger
}

// NewDispatcher builds the [Dispatcher] selected by cfg.Transport.
func NewDispatcher(cfg config.Mail, log *logger.Logger) (Dispatcher, error) {
	var t transport
	switch cfg.Transport {
	case "", "smtp":
		t = newSMTPTransport(cfg)
	case "http":
		t = newHTTPRelayTransport(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}

	return &dispatcher{
		from:      cfg.From,
		timeout:   cfg.Timeout,
		transport: t,
		logger:    log,
	}, nil
}

func (d *dispatcher) SendVerificationEmail(ctx context.Context, to, link string) error {
	msg, err := render(verificationTemplate, d.from, to, verificationSubject, link)
	if err != nil {
		return err
	}
	return d.deliver(ctx, msg)
}

func (d *dispatcher) SendPasswordResetEmail(ctx context.Context, to, link string) error {
	msg, err := render(passwordResetTemplate, d.from, to, passwordResetSubject, link)
	if err != nil {
		return err
	}
	return d.deliver(ctx, msg)
}

func (d *dispatcher) Ping(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	if err := d.transport.ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrMailUnavailable, err)
	}
	return nil
}

func (d *dispatcher) deliver(ctx context.Context, msg Message) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	if err := d.transport.send(ctx, msg); err != nil {
		d.logger.Err(err).
			Str("func", "dispatcher.deliver").
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("mail delivery failed")
		return fmt.Errorf("%w: %w", ErrMailUnavailable, err)
	}

	d.logger.Debug().
		Str("func", "dispatcher.deliver").
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("mail sent")
	return nil
}

func (d *dispatcher) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}
