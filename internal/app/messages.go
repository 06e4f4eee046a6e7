// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// artist-manager services, handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

// Failure messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgValidationFailed prefixes field validation failures.
	MsgValidationFailed = "Validation failed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgServiceUnavailable is returned when the database stays unreachable
	// after the retry budget is spent.
	MsgServiceUnavailable = "Service temporarily unavailable, please try again shortly"

	// MsgNoTokenProvided is returned by the authorization gate when the
	// request carries neither the session cookie nor a bearer header.
	MsgNoTokenProvided = "Access denied, no token provided"

	// MsgInvalidOrExpiredToken is returned for any session or one-time token
	// that fails verification. Expired, tampered and unknown tokens share it.
	MsgInvalidOrExpiredToken = "Invalid or expired token"

	// MsgUnauthorized is returned when a role check runs without an
	// authenticated identity.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidCredentials is shared by "no such email" and "wrong
	// password" so callers cannot probe for registered addresses.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgEmailNotVerified is returned when an unverified account logs in.
	MsgEmailNotVerified = "Please verify your email before logging in"

	// MsgEmailAlreadyExists is returned when registration hits a taken email.
	MsgEmailAlreadyExists = "User already exist with this email."

	// MsgEmailInUse is returned when a profile update hits a taken email.
	MsgEmailInUse = "Email already in use"

	// MsgMailUnavailable is returned when the verification or reset email
	// could not be delivered.
	MsgMailUnavailable = "Server error, Please try again shortly."

	// MsgPasswordTooShort is returned for passwords under the minimum length.
	MsgPasswordTooShort = "Password must be at least 8 characters"

	// MsgSelfRemoval is returned when an actor tries to delete itself.
	MsgSelfRemoval = "You cannot remove self identity."

	// MsgManagerAssignsArtistOnly is returned when an artist manager tries
	// to create, promote or remove a non-artist account.
	MsgManagerAssignsArtistOnly = `Artist managers can only assign role "artist".`

	// MsgRoleRequired is the format for role gate rejections. The argument
	// lists the accepted roles.
	MsgRoleRequired = "Access denied, required role: %s"

	// MsgUserNotFound is the format for a missing account id.
	MsgUserNotFound = "User not found with id %d"

	// MsgUserNotFoundByEmail is returned when a password reset targets an
	// unknown email.
	MsgUserNotFoundByEmail = "User not found"

	// MsgArtistNotFound is the format for a missing artist id.
	MsgArtistNotFound = "Artist not found with id %d"

	// MsgArtistProfileNotFound is returned when an artist account has no
	// profile yet.
	MsgArtistProfileNotFound = "Artist profile not found for this user"

	// MsgArtistAlreadyExists is returned when the owning account already has
	// a profile.
	MsgArtistAlreadyExists = "This user already has an artist profile"

	// MsgArtistOwnerInvalid is returned when an artist profile is attached
	// to an account that does not have the artist role.
	MsgArtistOwnerInvalid = `Artist profiles can only belong to users with role "artist"`

	// MsgArtistOwnerKeepsRole is returned when the role of an account that
	// owns an artist profile would change away from artist.
	MsgArtistOwnerKeepsRole = `Users with an artist profile must keep role "artist"`

	// MsgSongNotFound is returned for a missing song id.
	MsgSongNotFound = "Song not found"

	// MsgNotYourArtist is returned when an artist touches songs of another
	// artist profile.
	MsgNotYourArtist = "You can only manage songs of your own artist profile"

	// MsgTooManyRequests is returned when a rate limit is hit.
	MsgTooManyRequests = "Too many attempts, please try again later"

	// MsgVersionIsNotSpecified is returned when the application version is
	// missing from configuration.
	MsgVersionIsNotSpecified = "version is not specified"
)

// Success messages.
const (
	MsgUserRegistered  = "User registered successfully"
	MsgEmailVerified   = "Email verified successfully"
	MsgLoginSuccessful = "Login successful"
	MsgLoggedOut       = "Logged out successfully"
	MsgProfileFetched  = "Profile fetched successfully"
	MsgResetEmailSent  = "Password reset email sent"
	MsgPasswordReset   = "Password has been reset successfully"
	MsgUsersFetched    = "Users fetched successfully"
	MsgUserUpdated     = "User updated successfully"
	MsgUserDeleted     = "User deleted successfully"
	MsgArtistCreated   = "Artist created successfully"
	MsgArtistUpdated   = "Artist updated successfully"
	MsgArtistDeleted   = "Artist deleted successfully"
	MsgSongCreated     = "Song created successfully"
	MsgSongUpdated     = "Song updated successfully"
	MsgSongDeleted     = "Song deleted successfully"
)
