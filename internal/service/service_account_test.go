// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/MKhiriev/go-artist-manager/internal/mock"
	"github.com/MKhiriev/go-artist-manager/internal/ratelimit"
	"github.com/MKhiriev/go-artist-manager/internal/store"
	"github.com/MKhiriev/go-artist-manager/internal/validators"
	"github.com/MKhiriev/go-artist-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type accountFixture struct {
	svc         AccountService
	storages    *store.Storages
	mailer      *mock.MockDispatcher
	credentials *credentialService
	now         time.Time

	mu    sync.Mutex
	links []string
}

func newAccountFixture(t *testing.T, opts ...func(*config.App, *config.RateLimit)) *accountFixture {
	t.Helper()

	cfg := testAppConfig()
	limits := config.RateLimit{
		MaxLoginAttempts: 5,
		LoginCooldown:    15 * time.Minute,
		MaxResetRequests: 5,
		ResetCooldown:    time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg, &limits)
	}

	f := &accountFixture{
		storages: store.NewMemoryStorages(),
		mailer:   mock.NewMockDispatcher(gomock.NewController(t)),
		now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.credentials = newTestCredentials(&f.now)
	f.svc = NewAccountService(f.storages, f.credentials, f.mailer, ratelimit.NewMemoryLimiter(limits),
		validators.NewDomainValidator(), cfg, logger.Nop())

	return f
}

// captureMail makes a mail expectation succeed and records the link it carried.
func (f *accountFixture) captureMail(call *gomock.Call) *gomock.Call {
	return call.DoAndReturn(func(_ context.Context, _, link string) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.links = append(f.links, link)
		return nil
	})
}

func (f *accountFixture) lastToken(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.links)
	u, err := url.Parse(f.links[len(f.links)-1])
	require.NoError(t, err)
	return u.Query().Get("token")
}

func (f *accountFixture) register(t *testing.T, req models.RegisterRequest, actor *models.Identity) int64 {
	t.Helper()
	f.captureMail(f.mailer.EXPECT().SendVerificationEmail(gomock.Any(), req.Email, gomock.Any()))

	id, err := f.svc.Register(context.Background(), req, actor)
	require.NoError(t, err)
	return id
}

// seedAccount stores a verified account directly.
func (f *accountFixture) seedAccount(t *testing.T, email string, role models.Role, password string) models.Account {
	t.Helper()

	hash, err := f.credentials.HashPassword(password)
	require.NoError(t, err)

	account, err := f.storages.AccountRepository.Create(context.Background(), models.Account{
		FirstName:    "Seed",
		LastName:     string(role),
		Email:        email,
		PasswordHash: hash,
		Gender:       models.GenderOther,
		Role:         role,
		IsVerified:   true,
	})
	require.NoError(t, err)
	return account
}

func registerRequest(email string, role models.Role) models.RegisterRequest {
	return models.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Password:  "supersecret",
		Gender:    models.GenderFemale,
		Role:      role,
	}
}

func identityOf(a models.Account) models.Identity {
	return models.Identity{AccountID: a.AccountID, Email: a.Email, Role: a.Role}
}

func TestRegister_StoresHashedPasswordAndSendsVerificationLink(t *testing.T) {
	f := newAccountFixture(t)

	id := f.register(t, registerRequest("jane@example.com", models.RoleArtist), nil)

	stored, err := f.storages.AccountRepository.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", stored.PasswordHash)
	assert.True(t, f.credentials.VerifyPassword("supersecret", stored.PasswordHash))
	assert.False(t, stored.IsVerified)

	raw := f.lastToken(t)
	require.NotNil(t, stored.OneTimeTokenHash)
	assert.NotEqual(t, raw, *stored.OneTimeTokenHash)
	assert.Equal(t, f.credentials.HashOneTimeToken(raw), *stored.OneTimeTokenHash)
	assert.Contains(t, f.links[0], "http://localhost:3000/verify-email?token=")
}

func TestRegister_NormalizesEmailAndRejectsDuplicate(t *testing.T) {
	f := newAccountFixture(t)
	f.seedAccount(t, "jane@example.com", models.RoleArtist, "supersecret")

	_, err := f.svc.Register(context.Background(), registerRequest("  Jane@Example.COM ", models.RoleArtist), nil)

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegister_RoleEscalationGuard(t *testing.T) {
	manager := &models.Identity{AccountID: 100, Role: models.RoleArtistManager}
	admin := &models.Identity{AccountID: 101, Role: models.RoleSuperAdmin}

	tests := []struct {
		name    string
		actor   *models.Identity
		role    models.Role
		wantErr error
	}{
		{name: "manager creates super admin", actor: manager, role: models.RoleSuperAdmin, wantErr: ErrForbidden},
		{name: "manager creates manager", actor: manager, role: models.RoleArtistManager, wantErr: ErrForbidden},
		{name: "manager creates artist", actor: manager, role: models.RoleArtist},
		{name: "anonymous bootstraps super admin", actor: nil, role: models.RoleSuperAdmin},
		{name: "admin creates manager", actor: admin, role: models.RoleArtistManager},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t)
			req := registerRequest("new@example.com", tt.role)

			if tt.wantErr != nil {
				_, err := f.svc.Register(context.Background(), req, tt.actor)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.EqualError(t, err, `Artist managers can only assign role "artist".`)

				_, err = f.storages.AccountRepository.FindByEmail(context.Background(), "new@example.com")
				assert.ErrorIs(t, err, store.ErrAccountNotFound)
				return
			}

			id := f.register(t, req, tt.actor)
			assert.Positive(t, id)
		})
	}
}

func TestRegister_MailFailureRollsBack(t *testing.T) {
	f := newAccountFixture(t)
	f.mailer.EXPECT().
		SendVerificationEmail(gomock.Any(), "a@x.com", gomock.Any()).
		Return(errors.New("smtp: connection refused"))

	id, err := f.svc.Register(context.Background(), registerRequest("a@x.com", models.RoleArtist), nil)

	assert.Zero(t, id)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, ErrMailUnavailable)

	_, err = f.storages.AccountRepository.FindByEmail(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestRegister_Validation(t *testing.T) {
	f := newAccountFixture(t)
	req := registerRequest("jane@example.com", models.RoleArtist)
	req.Password = "short"

	_, err := f.svc.Register(context.Background(), req, nil)

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, "password must be at least 8 characters")
}

func TestVerifyEmail_RedeemsExactlyOnce(t *testing.T) {
	f := newAccountFixture(t)
	id := f.register(t, registerRequest("jane@example.com", models.RoleArtist), nil)
	raw := f.lastToken(t)

	require.NoError(t, f.svc.VerifyEmail(context.Background(), raw))

	stored, err := f.storages.AccountRepository.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
	assert.Nil(t, stored.OneTimeTokenHash)

	err = f.svc.VerifyEmail(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidOneTimeToken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyEmail_MalformedAndUnknownTokensLookAlike(t *testing.T) {
	f := newAccountFixture(t)

	errEmpty := f.svc.VerifyEmail(context.Background(), "")
	errMalformed := f.svc.VerifyEmail(context.Background(), "%%%not-hex%%%")
	errUnknown := f.svc.VerifyEmail(context.Background(), "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff")

	assert.Equal(t, errUnknown, errEmpty)
	assert.Equal(t, errUnknown, errMalformed)
	assert.ErrorIs(t, errUnknown, ErrNotFound)
}

func TestAuthenticate_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	f := newAccountFixture(t)
	f.seedAccount(t, "a@x.com", models.RoleArtist, "rightpass")

	_, errWrongPass := f.svc.Authenticate(context.Background(), "a@x.com", "wrongpass")
	_, errNoAccount := f.svc.Authenticate(context.Background(), "nonexistent@x.com", "x")

	require.Error(t, errWrongPass)
	assert.Equal(t, errWrongPass, errNoAccount)
	assert.Equal(t, errWrongPass.Error(), errNoAccount.Error())
	assert.ErrorIs(t, errWrongPass, ErrUnauthorized)
}

func TestAuthenticate_UnverifiedAccount(t *testing.T) {
	f := newAccountFixture(t)
	f.register(t, registerRequest("jane@example.com", models.RoleArtist), nil)

	result, err := f.svc.Authenticate(context.Background(), "jane@example.com", "supersecret")

	assert.ErrorIs(t, err, ErrEmailNotVerified)
	assert.EqualError(t, err, "Please verify your email before logging in")
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, result.Token.SignedString)
}

func TestAuthenticate_SuccessIssuesTokenAndArtistProfile(t *testing.T) {
	f := newAccountFixture(t)
	account := f.seedAccount(t, "nina@example.com", models.RoleArtist, "supersecret")
	artist, err := f.storages.ArtistRepository.Create(context.Background(), models.Artist{Name: "Nina", AccountID: account.AccountID})
	require.NoError(t, err)

	result, err := f.svc.Authenticate(context.Background(), "Nina@Example.com", "supersecret")
	require.NoError(t, err)

	require.NotNil(t, result.Artist)
	assert.Equal(t, artist.ArtistID, result.Artist.ArtistID)
	assert.Equal(t, account.AccountID, result.Account.AccountID)

	parsed, err := f.credentials.VerifySessionToken(result.Token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, identityOf(account), parsed.Identity)
}

func TestAuthenticate_NonArtistHasNoProfile(t *testing.T) {
	f := newAccountFixture(t)
	f.seedAccount(t, "boss@example.com", models.RoleSuperAdmin, "supersecret")

	result, err := f.svc.Authenticate(context.Background(), "boss@example.com", "supersecret")
	require.NoError(t, err)
	assert.Nil(t, result.Artist)
}

func TestAuthenticate_RateLimited(t *testing.T) {
	f := newAccountFixture(t, func(_ *config.App, rl *config.RateLimit) { rl.MaxLoginAttempts = 2 })
	f.seedAccount(t, "a@x.com", models.RoleArtist, "rightpass")

	for range 2 {
		_, err := f.svc.Authenticate(context.Background(), "a@x.com", "wrongpass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err := f.svc.Authenticate(context.Background(), "a@x.com", "rightpass")
	assert.ErrorIs(t, err, ErrTooManyRequests)
}

func TestAuthenticate_LimiterUnavailableFailsOpen(t *testing.T) {
	f := newAccountFixture(t)
	account := f.seedAccount(t, "a@x.com", models.RoleArtist, "rightpass")

	limiter := mock.NewMockLimiter(gomock.NewController(t))
	limiter.EXPECT().CheckLogin(gomock.Any(), "a@x.com").Return(ratelimit.ErrRedisUnavailable)
	limiter.EXPECT().ResetLogin(gomock.Any(), "a@x.com").Return(ratelimit.ErrRedisUnavailable)
	f.svc.(*accountService).limiter = limiter

	result, err := f.svc.Authenticate(context.Background(), "a@x.com", "rightpass")
	require.NoError(t, err)
	assert.Equal(t, account.AccountID, result.Account.AccountID)
}

func TestInitiatePasswordReset_UnknownEmail(t *testing.T) {
	f := newAccountFixture(t)

	err := f.svc.InitiatePasswordReset(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	concealed := newAccountFixture(t, func(cfg *config.App, _ *config.RateLimit) { cfg.ConcealResetAccountExistence = true })
	assert.NoError(t, concealed.svc.InitiatePasswordReset(context.Background(), "ghost@example.com"))
}

func TestInitiatePasswordReset_MailFailure(t *testing.T) {
	f := newAccountFixture(t)
	f.seedAccount(t, "a@x.com", models.RoleArtist, "rightpass")
	f.mailer.EXPECT().SendPasswordResetEmail(gomock.Any(), "a@x.com", gomock.Any()).Return(errors.New("relay down"))

	err := f.svc.InitiatePasswordReset(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestInitiatePasswordReset_RateLimited(t *testing.T) {
	f := newAccountFixture(t, func(_ *config.App, rl *config.RateLimit) { rl.MaxResetRequests = 1 })
	f.seedAccount(t, "a@x.com", models.RoleArtist, "rightpass")
	f.captureMail(f.mailer.EXPECT().SendPasswordResetEmail(gomock.Any(), "a@x.com", gomock.Any()))

	require.NoError(t, f.svc.InitiatePasswordReset(context.Background(), "a@x.com"))
	assert.ErrorIs(t, f.svc.InitiatePasswordReset(context.Background(), "a@x.com"), ErrTooManyRequests)
}

func TestResetPassword_Success(t *testing.T) {
	f := newAccountFixture(t)
	account := f.seedAccount(t, "a@x.com", models.RoleArtist, "oldpassword")
	f.captureMail(f.mailer.EXPECT().SendPasswordResetEmail(gomock.Any(), "a@x.com", gomock.Any()))

	require.NoError(t, f.svc.InitiatePasswordReset(context.Background(), "a@x.com"))
	raw := f.lastToken(t)
	assert.Contains(t, f.links[0], "http://localhost:3000/reset-password?token=")

	require.NoError(t, f.svc.ResetPassword(context.Background(), raw, "newpassword"))

	stored, err := f.storages.AccountRepository.FindByID(context.Background(), account.AccountID)
	require.NoError(t, err)
	assert.Nil(t, stored.OneTimeTokenHash)
	assert.True(t, f.credentials.VerifyPassword("newpassword", stored.PasswordHash))
	assert.False(t, f.credentials.VerifyPassword("oldpassword", stored.PasswordHash))

	assert.ErrorIs(t, f.svc.ResetPassword(context.Background(), raw, "anotherpassword"), ErrInvalidOneTimeToken)
}

func TestResetPassword_ShortPasswordKeepsToken(t *testing.T) {
	f := newAccountFixture(t)
	f.seedAccount(t, "a@x.com", models.RoleArtist, "oldpassword")
	f.captureMail(f.mailer.EXPECT().SendPasswordResetEmail(gomock.Any(), "a@x.com", gomock.Any()))
	require.NoError(t, f.svc.InitiatePasswordReset(context.Background(), "a@x.com"))
	raw := f.lastToken(t)

	err := f.svc.ResetPassword(context.Background(), raw, "short")
	assert.ErrorIs(t, err, ErrValidation)

	assert.NoError(t, f.svc.ResetPassword(context.Background(), raw, "longenough"))
}

func TestResetPassword_ConcurrentResetsLatestTokenWins(t *testing.T) {
	f := newAccountFixture(t)
	account := f.seedAccount(t, "a@x.com", models.RoleArtist, "oldpassword")
	f.captureMail(f.mailer.EXPECT().SendPasswordResetEmail(gomock.Any(), "a@x.com", gomock.Any()).Times(2))

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.svc.InitiatePasswordReset(context.Background(), "a@x.com"))
		}()
	}
	wg.Wait()

	require.Len(t, f.links, 2)
	stored, err := f.storages.AccountRepository.FindByID(context.Background(), account.AccountID)
	require.NoError(t, err)
	require.NotNil(t, stored.OneTimeTokenHash)

	var latest, stale string
	for _, link := range f.links {
		u, err := url.Parse(link)
		require.NoError(t, err)
		raw := u.Query().Get("token")
		if f.credentials.HashOneTimeToken(raw) == *stored.OneTimeTokenHash {
			latest = raw
		} else {
			stale = raw
		}
	}
	require.NotEmpty(t, latest)
	require.NotEmpty(t, stale)

	assert.ErrorIs(t, f.svc.ResetPassword(context.Background(), stale, "stalepassword"), ErrNotFound)
	assert.NoError(t, f.svc.ResetPassword(context.Background(), latest, "latestpassword"))
}

func TestGetProfile(t *testing.T) {
	f := newAccountFixture(t)
	account := f.seedAccount(t, "nina@example.com", models.RoleArtist, "supersecret")
	artist, err := f.storages.ArtistRepository.Create(context.Background(), models.Artist{Name: "Nina", AccountID: account.AccountID})
	require.NoError(t, err)

	profile, err := f.svc.GetProfile(context.Background(), account.AccountID)
	require.NoError(t, err)
	require.NotNil(t, profile.ArtistID)
	assert.Equal(t, artist.ArtistID, *profile.ArtistID)

	_, err = f.svc.GetProfile(context.Background(), 999)
	assert.EqualError(t, err, "User not found with id 999")
}

func TestListAccounts_ManagerSeesArtistsOnly(t *testing.T) {
	f := newAccountFixture(t)
	admin := f.seedAccount(t, "admin@example.com", models.RoleSuperAdmin, "supersecret")
	manager := f.seedAccount(t, "manager@example.com", models.RoleArtistManager, "supersecret")
	f.seedAccount(t, "artist1@example.com", models.RoleArtist, "supersecret")
	f.seedAccount(t, "artist2@example.com", models.RoleArtist, "supersecret")

	accounts, pagination, err := f.svc.ListAccounts(context.Background(), identityOf(manager),
		models.AccountFilter{Role: models.RoleSuperAdmin}, models.Page{Page: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, models.RoleArtist, accounts[0].Role)
	assert.Equal(t, models.Pagination{Total: 2, TotalPages: 2, CurrentPage: 1, PerPage: 1}, pagination)

	accounts, pagination, err = f.svc.ListAccounts(context.Background(), identityOf(admin), models.AccountFilter{}, models.Page{})
	require.NoError(t, err)
	assert.Len(t, accounts, 4)
	assert.Equal(t, DefaultPageLimit, pagination.PerPage)
}

func TestUpdateProfile(t *testing.T) {
	f := newAccountFixture(t)
	admin := identityOf(f.seedAccount(t, "admin@example.com", models.RoleSuperAdmin, "supersecret"))
	manager := identityOf(f.seedAccount(t, "manager@example.com", models.RoleArtistManager, "supersecret"))
	other := f.seedAccount(t, "other@example.com", models.RoleArtistManager, "supersecret")
	artist := f.seedAccount(t, "artist@example.com", models.RoleArtist, "supersecret")

	superAdmin := models.RoleSuperAdmin
	artistRole := models.RoleArtist
	takenEmail := "Other@Example.com"
	newEmail := "Renamed@Example.com"
	name := "Renamed"

	t.Run("manager cannot promote", func(t *testing.T) {
		_, err := f.svc.UpdateProfile(context.Background(), manager, artist.AccountID, models.AccountPatch{Role: &superAdmin})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("manager cannot edit non-artist", func(t *testing.T) {
		_, err := f.svc.UpdateProfile(context.Background(), manager, other.AccountID, models.AccountPatch{FirstName: &name})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("manager edits artist", func(t *testing.T) {
		updated, err := f.svc.UpdateProfile(context.Background(), manager, artist.AccountID,
			models.AccountPatch{FirstName: &name, Role: &artistRole})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.FirstName)
	})

	t.Run("artist has no patchable fields", func(t *testing.T) {
		_, err := f.svc.UpdateProfile(context.Background(), identityOf(artist), artist.AccountID, models.AccountPatch{FirstName: &name})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("email collision", func(t *testing.T) {
		_, err := f.svc.UpdateProfile(context.Background(), admin, artist.AccountID, models.AccountPatch{Email: &takenEmail})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("own email is not a collision", func(t *testing.T) {
		same := "ARTIST@example.com"
		_, err := f.svc.UpdateProfile(context.Background(), admin, artist.AccountID, models.AccountPatch{Email: &same})
		assert.NoError(t, err)
	})

	t.Run("email is normalized", func(t *testing.T) {
		updated, err := f.svc.UpdateProfile(context.Background(), admin, artist.AccountID, models.AccountPatch{Email: &newEmail})
		require.NoError(t, err)
		assert.Equal(t, "renamed@example.com", updated.Email)
	})

	t.Run("artist profile owner keeps role", func(t *testing.T) {
		owner := f.seedAccount(t, "owner@example.com", models.RoleArtist, "supersecret")
		_, err := f.storages.ArtistRepository.Create(context.Background(), models.Artist{Name: "Owner", AccountID: owner.AccountID})
		require.NoError(t, err)

		_, err = f.svc.UpdateProfile(context.Background(), admin, owner.AccountID, models.AccountPatch{Role: &superAdmin})
		assert.ErrorIs(t, err, ErrConflict)

		stored, err := f.storages.AccountRepository.FindByID(context.Background(), owner.AccountID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleArtist, stored.Role)

		_, err = f.svc.UpdateProfile(context.Background(), admin, owner.AccountID, models.AccountPatch{Role: &artistRole})
		assert.NoError(t, err)
	})

	t.Run("artist without profile may change role", func(t *testing.T) {
		loose := f.seedAccount(t, "loose@example.com", models.RoleArtist, "supersecret")
		updated, err := f.svc.UpdateProfile(context.Background(), admin, loose.AccountID, models.AccountPatch{Role: &superAdmin})
		require.NoError(t, err)
		assert.Equal(t, models.RoleSuperAdmin, updated.Role)
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := f.svc.UpdateProfile(context.Background(), admin, 999, models.AccountPatch{FirstName: &name})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "User not found with id 999")
	})
}

func TestRemoveAccount_SelfRemovalAlwaysFails(t *testing.T) {
	f := newAccountFixture(t)

	for _, role := range models.Roles {
		err := f.svc.RemoveAccount(context.Background(), models.Identity{AccountID: 5, Role: role}, 5)
		assert.ErrorIs(t, err, ErrSelfRemoval, role)
		assert.ErrorIs(t, err, ErrConflict, role)
	}
}

func TestRemoveAccount_ManagerRemovesArtistsOnly(t *testing.T) {
	f := newAccountFixture(t)
	manager := identityOf(f.seedAccount(t, "manager@example.com", models.RoleArtistManager, "supersecret"))
	other := f.seedAccount(t, "other@example.com", models.RoleArtistManager, "supersecret")
	artist := f.seedAccount(t, "artist@example.com", models.RoleArtist, "supersecret")

	assert.ErrorIs(t, f.svc.RemoveAccount(context.Background(), manager, other.AccountID), ErrForbidden)
	assert.NoError(t, f.svc.RemoveAccount(context.Background(), manager, artist.AccountID))
	assert.ErrorIs(t, f.svc.RemoveAccount(context.Background(), manager, artist.AccountID), ErrNotFound)
}

func TestRemoveAccount_Cascades(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	admin := identityOf(f.seedAccount(t, "admin@example.com", models.RoleSuperAdmin, "supersecret"))
	account := f.seedAccount(t, "artist@example.com", models.RoleArtist, "supersecret")

	artist, err := f.storages.ArtistRepository.Create(ctx, models.Artist{Name: "Nina", AccountID: account.AccountID})
	require.NoError(t, err)
	song, err := f.storages.SongRepository.Create(ctx, models.Song{Title: "Sinnerman", ArtistID: artist.ArtistID})
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveAccount(ctx, admin, account.AccountID))

	_, err = f.storages.ArtistRepository.FindByID(ctx, artist.ArtistID)
	assert.ErrorIs(t, err, store.ErrArtistNotFound)
	_, err = f.storages.SongRepository.FindByID(ctx, song.SongID)
	assert.ErrorIs(t, err, store.ErrSongNotFound)
	count, err := f.storages.SongRepository.CountByArtist(ctx, artist.ArtistID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
