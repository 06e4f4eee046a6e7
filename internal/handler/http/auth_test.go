// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-artist-manager/internal/app"
	"github.com/MKhiriev/go-artist-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const registerBody = `{
	"first_name": "Jane",
	"last_name": "Doe",
	"email": "Jane@Example.com",
	"password": "supersecret",
	"gender": "female",
	"role": "artist"
}`

func TestAccountLifecycle(t *testing.T) {
	api := newTestAPI(t)
	api.expectMail(api.mailer.EXPECT().SendVerificationEmail(gomock.Any(), "jane@example.com", gomock.Any()))

	rec := api.do(http.MethodPost, "/api/user/register", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, app.MsgUserRegistered, env.Message)
	assert.Positive(t, decodeData[map[string]int64](t, env)["id"])

	rec = api.do(http.MethodPost, "/api/user/login", `{"email":"jane@example.com","password":"supersecret"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgEmailNotVerified, decodeEnvelope(t, rec).Message)

	rec = api.do(http.MethodGet, "/api/user/verify-email?token="+api.lastToken(), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, app.MsgEmailVerified, decodeEnvelope(t, rec).Message)

	rec = api.do(http.MethodGet, "/api/user/verify-email?token="+api.lastToken(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPost, "/api/user/login", `{"email":"JANE@example.com","password":"supersecret"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env = decodeEnvelope(t, rec)
	assert.Equal(t, app.MsgLoginSuccessful, env.Message)
	assert.Equal(t, models.RoleArtist, decodeData[loginResponse](t, env).Role)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	session := cookies[0]
	assert.Equal(t, accessTokenCookie, session.Name)
	assert.True(t, session.HttpOnly)
	assert.False(t, session.Secure)
	assert.Equal(t, http.SameSiteStrictMode, session.SameSite)
	assert.Equal(t, 2*24*60*60, session.MaxAge)
	assert.Equal(t, "Bearer "+session.Value, rec.Header().Get("Authorization"))

	rec = api.do(http.MethodGet, "/api/user/profile", "", withCookie(session.Value))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	profile := decodeData[models.Profile](t, decodeEnvelope(t, rec))
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Nil(t, profile.ArtistID)

	rec = api.do(http.MethodPost, "/api/user/logout", "", withCookie(session.Value))
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestRegister_RoleEscalation(t *testing.T) {
	api := newTestAPI(t)
	_, managerToken := api.seed("manager@example.com", models.RoleArtistManager)

	body := `{"first_name":"A","last_name":"B","email":"boss@example.com","password":"supersecret","gender":"male","role":"super_admin"}`

	rec := api.do(http.MethodPost, "/api/user/register", body, withBearer(managerToken))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgManagerAssignsArtistOnly, decodeEnvelope(t, rec).Message)

	// An invalid credential is ignored and the request is anonymous.
	api.expectMail(api.mailer.EXPECT().SendVerificationEmail(gomock.Any(), "boss@example.com", gomock.Any()))
	rec = api.do(http.MethodPost, "/api/user/register", body, withBearer("garbage"))
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		prepare    func(api *testAPI)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "empty body",
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "short password",
			body:       `{"first_name":"A","last_name":"B","email":"a@x.com","password":"short","gender":"male","role":"artist"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation failed: password must be at least 8 characters",
		},
		{
			name: "email taken",
			body: registerBody,
			prepare: func(api *testAPI) {
				api.seed("jane@example.com", models.RoleArtist)
			},
			wantStatus: http.StatusConflict,
			wantMsg:    app.MsgEmailAlreadyExists,
		},
		{
			name: "mail unavailable",
			body: registerBody,
			prepare: func(api *testAPI) {
				api.mailer.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    app.MsgMailUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			if tt.prepare != nil {
				tt.prepare(api)
			}

			rec := api.do(http.MethodPost, "/api/user/register", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}
}

func TestLogin_BadCredentialsLookAlike(t *testing.T) {
	api := newTestAPI(t)
	api.seed("a@x.com", models.RoleArtist)

	wrongPassword := api.do(http.MethodPost, "/api/user/login", `{"email":"a@x.com","password":"wrongpass"}`)
	unknownEmail := api.do(http.MethodPost, "/api/user/login", `{"email":"nobody@x.com","password":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Empty(t, wrongPassword.Result().Cookies())
}

func TestLogin_ArtistReceivesArtistID(t *testing.T) {
	api := newTestAPI(t)
	account, _ := api.seed("nina@example.com", models.RoleArtist)
	_, adminToken := api.seed("admin@example.com", models.RoleSuperAdmin)

	rec := api.do(http.MethodPost, "/api/artists", `{"name":"Nina","user_id":`+itoa(account.AccountID)+`}`, withBearer(adminToken))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	artist := decodeData[models.Artist](t, decodeEnvelope(t, rec))

	rec = api.do(http.MethodPost, "/api/user/login", `{"email":"nina@example.com","password":"supersecret"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeData[loginResponse](t, decodeEnvelope(t, rec))
	require.NotNil(t, resp.ArtistID)
	assert.Equal(t, artist.ArtistID, *resp.ArtistID)
}

func TestLogin_RateLimited(t *testing.T) {
	api := newTestAPI(t)
	api.seed("a@x.com", models.RoleArtist)

	for range testConfig().RateLimit.MaxLoginAttempts {
		rec := api.do(http.MethodPost, "/api/user/login", `{"email":"a@x.com","password":"wrongpass"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := api.do(http.MethodPost, "/api/user/login", `{"email":"a@x.com","password":"supersecret"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, app.MsgTooManyRequests, decodeEnvelope(t, rec).Message)
}

func TestVerifyEmail_MissingToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/user/verify-email", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgInvalidOrExpiredToken, decodeEnvelope(t, rec).Message)
}

func TestPasswordReset(t *testing.T) {
	api := newTestAPI(t)
	api.seed("a@x.com", models.RoleArtist)

	rec := api.do(http.MethodPost, "/api/user/forgot-password", `{"email":"ghost@x.com"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	api.expectMail(api.mailer.EXPECT().SendPasswordResetEmail(gomock.Any(), "a@x.com", gomock.Any()))
	rec = api.do(http.MethodPost, "/api/user/forgot-password", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, app.MsgResetEmailSent, decodeEnvelope(t, rec).Message)
	token := api.lastToken()

	rec = api.do(http.MethodPost, "/api/user/reset-password", `{"token":"`+token+`","newPassword":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/api/user/reset-password", `{"token":"`+token+`","newPassword":"brandnewpass"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, app.MsgPasswordReset, decodeEnvelope(t, rec).Message)

	rec = api.do(http.MethodPost, "/api/user/reset-password", `{"token":"`+token+`","newPassword":"brandnewpass"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPost, "/api/user/login", `{"email":"a@x.com","password":"brandnewpass"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
