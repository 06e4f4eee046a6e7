// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"
)

const accessTokenCookie = "accessToken"

// cookieSettings describes the session cookie. The cookie may outlive the
// token it carries; an expired token inside a live cookie is rejected by
// the gate like any other invalid token.
type cookieSettings struct {
	secure bool
	maxAge time.Duration
}

func (c cookieSettings) session(token string) *http.Cookie {
	return &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// cleared returns a cookie that makes the browser drop the session.
func (c cookieSettings) cleared() *http.Cookie {
	return &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
