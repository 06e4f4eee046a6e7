// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-artist-manager/internal/config"
	"github.com/MKhiriev/go-artist-manager/internal/logger"
	"github.com/MKhiriev/go-artist-manager/internal/mail"
	"github.com/MKhiriev/go-artist-manager/internal/ratelimit"
	"github.com/MKhiriev/go-artist-manager/internal/store"
	"github.com/MKhiriev/go-artist-manager/internal/utils"
	"github.com/MKhiriev/go-artist-manager/internal/validators"
	"github.com/MKhiriev/go-artist-manager/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	verifyEmailPath   = "/verify-email"
	resetPasswordPath = "/reset-password"
)

// patchableFields lists, per actor role, the account fields that actor may
// change. Roles absent from the map may change nothing.
var patchableFields = map[models.Role][]string{
	models.RoleSuperAdmin: {
		"first_name", "last_name", "email", "phone", "dob", "gender", "address", "role",
	},
	models.RoleArtistManager: {
		"first_name", "last_name", "email", "phone", "dob", "gender", "address", "role",
	},
}

type accountService struct {
	accounts    store.AccountRepository
	artists     store.ArtistRepository
	credentials CredentialService
	mailer      mail.Dispatcher
	limiter     ratelimit.Limiter
	validator   validators.Validator

	frontendURL         string
	concealResetAccount bool

	// dummyHash is compared against on unknown emails so both login failure
	// paths cost one bcrypt comparison.
	dummyHash func() string

	logger *logger.Logger
}

// NewAccountService wires the account lifecycle workflow.
func NewAccountService(
	storages *store.Storages,
	credentials CredentialService,
	mailer mail.Dispatcher,
	limiter ratelimit.Limiter,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		accounts:            storages.AccountRepository,
		artists:             storages.ArtistRepository,
		credentials:         credentials,
		mailer:              mailer,
		limiter:             limiter,
		validator:           validator,
		frontendURL:         strings.TrimRight(cfg.FrontendURL, "/"),
		concealResetAccount: cfg.ConcealResetAccountExistence,
		dummyHash: sync.OnceValue(func() string {
			hash, _ := credentials.HashPassword("dummy-password-for-timing")
			return hash
		}),
		logger: logger,
	}
}

func (s *accountService) link(path, rawToken string) string {
	return s.frontendURL + path + "?token=" + url.QueryEscape(rawToken)
}

func (s *accountService) hashPassword(plain string) (string, error) {
	hash, err := s.credentials.HashPassword(plain)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ValidationError(err)
	}
	return hash, err
}

// Register creates an unverified account and mails its verification link.
//
// An artist manager may only create artist accounts. Anonymous callers may
// create any role, which is how the first super admin is bootstrapped.
// When the verification mail cannot be sent the account is deleted again
// and ErrMailUnavailable is returned.
func (s *accountService) Register(ctx context.Context, req models.RegisterRequest, actor *models.Identity) (int64, error) {
	log := logger.FromContext(ctx)

	req.Email = utils.NormalizeEmail(req.Email)
	if err := s.validator.Validate(ctx, req); err != nil {
		return 0, ValidationError(err)
	}

	_, err := s.accounts.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return 0, ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrAccountNotFound):
		log.Err(err).Str("email", req.Email).Msg("email lookup failed")
		return 0, fmt.Errorf("register: %w", err)
	}

	if actor != nil && actor.Role == models.RoleArtistManager && req.Role != models.RoleArtist {
		log.Warn().Int64("actor_id", actor.AccountID).Str("role", string(req.Role)).Msg("role escalation rejected")
		return 0, ErrManagerArtistOnly
	}

	passwordHash, err := s.hashPassword(req.Password)
	if err != nil {
		return 0, err
	}
	token, err := s.credentials.IssueOneTimeToken()
	if err != nil {
		return 0, fmt.Errorf("register: %w", err)
	}

	created, err := s.accounts.Create(ctx, models.Account{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		PasswordHash:     passwordHash,
		Phone:            req.Phone,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		Address:          req.Address,
		Role:             req.Role,
		OneTimeTokenHash: &token.Hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return 0, ErrEmailAlreadyExists
		}
		log.Err(err).Str("email", req.Email).Msg("account creation failed")
		return 0, fmt.Errorf("register: %w", err)
	}

	if err = s.mailer.SendVerificationEmail(ctx, created.Email, s.link(verifyEmailPath, token.Raw)); err != nil {
		log.Err(err).Int64("account_id", created.AccountID).Msg("verification mail failed, rolling back registration")
		// The caller's context may already be cancelled; the compensation must still run.
		if delErr := s.accounts.Delete(context.WithoutCancel(ctx), created.AccountID); delErr != nil {
			log.Err(delErr).Int64("account_id", created.AccountID).Msg("registration rollback failed")
		}
		return 0, ErrMailUnavailable
	}

	log.Info().Int64("account_id", created.AccountID).Str("role", string(created.Role)).Msg("account registered")
	return created.AccountID, nil
}

// redeem resolves a raw one-time token to the account holding its hash.
// Empty, malformed and unknown tokens all yield ErrInvalidOneTimeToken.
func (s *accountService) redeem(ctx context.Context, rawToken string) (models.Account, string, error) {
	if rawToken == "" {
		return models.Account{}, "", ErrInvalidOneTimeToken
	}

	hash := s.credentials.HashOneTimeToken(rawToken)
	account, err := s.accounts.FindByOneTimeToken(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Account{}, "", ErrInvalidOneTimeToken
		}
		return models.Account{}, "", fmt.Errorf("redeem token: %w", err)
	}

	return account, hash, nil
}

// VerifyEmail marks the account owning rawToken as verified and clears the
// token slot. A token redeems at most once.
func (s *accountService) VerifyEmail(ctx context.Context, rawToken string) error {
	account, hash, err := s.redeem(ctx, rawToken)
	if err != nil {
		return err
	}

	if err = s.accounts.MarkVerified(ctx, account.AccountID, hash); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrInvalidOneTimeToken
		}
		return fmt.Errorf("verify email: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("account_id", account.AccountID).Msg("email verified")
	return nil
}

// Authenticate checks credentials and issues a session token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// An unverified account yields ErrEmailNotVerified, but only once the
// password has matched.
func (s *accountService) Authenticate(ctx context.Context, email, password string) (models.LoginResult, error) {
	log := logger.FromContext(ctx)
	email = utils.NormalizeEmail(email)

	if err := s.limiter.CheckLogin(ctx, email); err != nil {
		if errors.Is(err, ratelimit.ErrRateLimited) {
			return models.LoginResult{}, ErrRateLimited
		}
		log.Warn().Err(err).Msg("login limiter unavailable")
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			return models.LoginResult{}, fmt.Errorf("authenticate: %w", err)
		}
		s.credentials.VerifyPassword(password, s.dummyHash())
		s.recordFailedLogin(ctx, email)
		return models.LoginResult{}, ErrInvalidCredentials
	}

	if !s.credentials.VerifyPassword(password, account.PasswordHash) {
		s.recordFailedLogin(ctx, email)
		return models.LoginResult{}, ErrInvalidCredentials
	}

	if !account.IsVerified {
		return models.LoginResult{}, ErrEmailNotVerified
	}

	if err = s.limiter.ResetLogin(ctx, email); err != nil {
		log.Warn().Err(err).Msg("login limiter reset failed")
	}

	token, err := s.credentials.IssueSessionToken(models.Identity{
		AccountID: account.AccountID,
		Email:     account.Email,
		Role:      account.Role,
	})
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("authenticate: %w", err)
	}

	result := models.LoginResult{Token: token, Account: account}
	if account.Role == models.RoleArtist {
		artist, err := s.artists.FindByAccountID(ctx, account.AccountID)
		switch {
		case err == nil:
			result.Artist = &artist
		case !errors.Is(err, store.ErrArtistNotFound):
			return models.LoginResult{}, fmt.Errorf("authenticate: %w", err)
		}
	}

	log.Info().Int64("account_id", account.AccountID).Msg("login successful")
	return result, nil
}

func (s *accountService) recordFailedLogin(ctx context.Context, email string) {
	if err := s.limiter.IncrementLogin(ctx, email); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("login limiter increment failed")
	}
}

// InitiatePasswordReset overwrites the account's token slot with a fresh
// reset token and mails the reset link. Any earlier verification or reset
// link stops working.
func (s *accountService) InitiatePasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)
	email = utils.NormalizeEmail(email)

	if err := s.limiter.CheckPasswordReset(ctx, email); err != nil {
		if errors.Is(err, ratelimit.ErrRateLimited) {
			return ErrRateLimited
		}
		log.Warn().Err(err).Msg("reset limiter unavailable")
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			return fmt.Errorf("initiate password reset: %w", err)
		}
		if s.concealResetAccount {
			log.Debug().Str("email", email).Msg("password reset for unknown email concealed")
			return nil
		}
		return ErrAccountNotFound
	}

	token, err := s.credentials.IssueOneTimeToken()
	if err != nil {
		return fmt.Errorf("initiate password reset: %w", err)
	}

	if err = s.accounts.SetOneTimeToken(ctx, account.AccountID, token.Hash); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("initiate password reset: %w", err)
	}

	if err = s.mailer.SendPasswordResetEmail(ctx, account.Email, s.link(resetPasswordPath, token.Raw)); err != nil {
		log.Err(err).Int64("account_id", account.AccountID).Msg("password reset mail failed")
		return ErrMailUnavailable
	}

	log.Info().Int64("account_id", account.AccountID).Msg("password reset initiated")
	return nil
}

// ResetPassword redeems rawToken and replaces the password. The new hash
// and the cleared token slot are written in one conditional update, so a
// token issued meanwhile wins over the one being redeemed.
func (s *accountService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	account, hash, err := s.redeem(ctx, rawToken)
	if err != nil {
		return err
	}

	req := models.ResetPasswordRequest{Token: rawToken, NewPassword: newPassword}
	if err = s.validator.Validate(ctx, req, validators.FieldPassword); err != nil {
		return ValidationError(err)
	}

	passwordHash, err := s.hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err = s.accounts.ResetPassword(ctx, account.AccountID, hash, passwordHash); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrInvalidOneTimeToken
		}
		return fmt.Errorf("reset password: %w", err)
	}

	if err = s.limiter.ResetLogin(ctx, account.Email); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("login limiter reset failed")
	}

	logger.FromContext(ctx).Info().Int64("account_id", account.AccountID).Msg("password reset")
	return nil
}

// GetProfile returns the account together with its artist profile id.
func (s *accountService) GetProfile(ctx context.Context, accountID int64) (models.Profile, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Profile{}, accountNotFound(accountID)
		}
		return models.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	profile := models.Profile{Account: account}
	if account.Role == models.RoleArtist {
		artist, err := s.artists.FindByAccountID(ctx, accountID)
		switch {
		case err == nil:
			profile.ArtistID = &artist.ArtistID
		case !errors.Is(err, store.ErrArtistNotFound):
			return models.Profile{}, fmt.Errorf("get profile: %w", err)
		}
	}

	return profile, nil
}

// ListAccounts returns a page of accounts. Artist managers only ever see
// artist accounts, whatever role filter they ask for.
func (s *accountService) ListAccounts(ctx context.Context, actor models.Identity, filter models.AccountFilter, page models.Page) ([]models.Account, models.Pagination, error) {
	if actor.Role == models.RoleArtistManager {
		filter.Role = models.RoleArtist
	}
	page = normalizePage(page)

	total, err := s.accounts.Count(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list accounts: %w", err)
	}
	accounts, err := s.accounts.List(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, models.NewPagination(total, page), nil
}

// UpdateProfile applies patch to the target account.
//
// Each actor role has an explicit allow-list of patchable fields. An artist
// manager may only edit artist accounts and may only set the role to
// artist. A new email must not belong to another account. An account that
// owns an artist profile keeps the artist role.
func (s *accountService) UpdateProfile(ctx context.Context, actor models.Identity, targetID int64, patch models.AccountPatch) (models.Account, error) {
	log := logger.FromContext(ctx)

	allowed := patchableFields[actor.Role]
	for _, field := range patch.Fields() {
		if !slices.Contains(allowed, field) {
			return models.Account{}, newError(ErrForbidden, "You are not allowed to change %q", field)
		}
	}

	if patch.Email != nil {
		email := utils.NormalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.Account{}, ValidationError(err)
	}

	if actor.Role == models.RoleArtistManager && patch.Role != nil && *patch.Role != models.RoleArtist {
		log.Warn().Int64("actor_id", actor.AccountID).Int64("target_id", targetID).Msg("role escalation rejected")
		return models.Account{}, ErrManagerArtistOnly
	}

	if patch.Email != nil {
		existing, err := s.accounts.FindByEmail(ctx, *patch.Email)
		switch {
		case err == nil && existing.AccountID != targetID:
			return models.Account{}, ErrEmailInUse
		case err != nil && !errors.Is(err, store.ErrAccountNotFound):
			return models.Account{}, fmt.Errorf("update profile: %w", err)
		}
	}

	target, err := s.accounts.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Account{}, accountNotFound(targetID)
		}
		return models.Account{}, fmt.Errorf("update profile: %w", err)
	}
	if actor.Role == models.RoleArtistManager && target.Role != models.RoleArtist {
		return models.Account{}, ErrManagerArtistOnly
	}
	if patch.Role != nil && *patch.Role != models.RoleArtist {
		_, err = s.artists.FindByAccountID(ctx, targetID)
		switch {
		case err == nil:
			return models.Account{}, ErrArtistOwnerRole
		case !errors.Is(err, store.ErrArtistNotFound):
			return models.Account{}, fmt.Errorf("update profile: %w", err)
		}
	}

	updated, err := s.accounts.Update(ctx, targetID, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAccountNotFound):
			return models.Account{}, accountNotFound(targetID)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.Account{}, ErrEmailInUse
		}
		return models.Account{}, fmt.Errorf("update profile: %w", err)
	}

	log.Info().Int64("actor_id", actor.AccountID).Int64("target_id", targetID).Strs("fields", patch.Fields()).Msg("account updated")
	return updated, nil
}

// RemoveAccount deletes the target account; its artist profile and songs
// cascade. Nobody may remove themselves, and an artist manager may only
// remove artist accounts.
func (s *accountService) RemoveAccount(ctx context.Context, actor models.Identity, targetID int64) error {
	if actor.AccountID == targetID {
		return ErrSelfRemoval
	}

	target, err := s.accounts.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return accountNotFound(targetID)
		}
		return fmt.Errorf("remove account: %w", err)
	}

	if actor.Role == models.RoleArtistManager && target.Role != models.RoleArtist {
		return ErrManagerArtistOnly
	}

	if err = s.accounts.Delete(ctx, targetID); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return accountNotFound(targetID)
		}
		return fmt.Errorf("remove account: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("actor_id", actor.AccountID).Int64("target_id", targetID).Msg("account removed")
	return nil
}
