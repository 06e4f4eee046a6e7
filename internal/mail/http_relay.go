// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mail

import (
	"context"
	"fmt"
	"net/http"
	netmail "net/mail"
	"strings"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/MKhiriev/go-artist-manager/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	relaySendPath = "/api/v1/send"
	relayInfoPath = "/api/v1/info"
)

type relayAddress struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type relaySendRequest struct {
	From    relayAddress   `json:"From"`
	To      []relayAddress `json:"To"`
	Subject string         `json:"Subject"`
	HTML    string         `json:"HTML"`
}

type httpRelayTransport struct {
	client *utils.HTTPClient
}

func newHTTPRelayTransport(cfg config.Mail) *httpRelayTransport {
	return &httpRelayTransport{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.RelayURL, "/"), cfg.Timeout),
	}
}

func (t *httpRelayTransport) send(ctx context.Context, msg Message) error {
	from, err := netmail.ParseAddress(msg.From)
	if err != nil {
		return fmt.Errorf("parse sender %q: %w", msg.From, err)
	}
	to, err := netmail.ParseAddress(msg.To)
	if err != nil {
		return fmt.Errorf("%w: parse recipient %q: %w", ErrInvalidMessage, msg.To, err)
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(relaySendRequest{
			From:    relayAddress{Email: from.Address, Name: from.Name},
			To:      []relayAddress{{Email: to.Address, Name: to.Name}},
			Subject: msg.Subject,
			HTML:    msg.HTML,
		}).
		Post(relaySendPath)
	if err != nil {
		return fmt.Errorf("relay send request: %w", err)
	}

	return relayError(resp)
}

func (t *httpRelayTransport) ping(ctx context.Context) error {
	resp, err := t.client.R().
		SetContext(ctx).
		Get(relayInfoPath)
	if err != nil {
		return fmt.Errorf("relay info request: %w", err)
	}

	return relayError(resp)
}

func relayError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("relay responded %d: %s", resp.StatusCode(), body)
}
