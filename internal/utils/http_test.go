// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type song struct {
		Title string `json:"title"`
		Genre string `json:"genre"`
	}

	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{
			name:       "struct",
			data:       song{Title: "Blue", Genre: "jazz"},
			status:     http.StatusCreated,
			wantStatus: http.StatusCreated,
			wantBody:   `{"title":"Blue","genre":"jazz"}`,
		},
		{
			name:       "nil",
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   "null",
		},
		{
			name:       "error status",
			data:       map[string]bool{"success": false},
			status:     http.StatusNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false}`,
		},
		{
			name:       "unmarshalable",
			data:       make(chan int),
			status:     http.StatusOK,
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type login struct {
		Email string `json:"email"`
	}

	tests := []struct {
		name      string
		body      string
		wantEmail string
		wantErr   error
	}{
		{name: "unknown fields ignored", body: `{"email":"nina@example.com","extra":1}`, wantEmail: "nina@example.com"},
		{name: "empty", body: "", wantErr: ErrEmptyBody},
		{name: "truncated", body: "{", wantErr: ErrMalformedBody},
		{name: "wrong type", body: `{"email":42}`, wantErr: ErrMalformedBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst login
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(tt.body))

			err := DecodeJSON(r, &dst)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, dst.Email)
		})
	}
}
