// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account represents a person with platform access.
//
// PasswordHash and OneTimeTokenHash are credential material and are never
// serialized to JSON.
type Account struct {
	// AccountID is assigned by storage at creation and never changes.
	AccountID int64 `json:"id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is unique across all accounts and stored case-folded.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	Phone       string     `json:"phone,omitempty"`
	DateOfBirth *time.Time `json:"dob,omitempty"`
	Gender      Gender     `json:"gender,omitempty"`
	Address     string     `json:"address,omitempty"`
	Role        Role       `json:"role"`

	// IsVerified becomes true once the email verification token is redeemed.
	IsVerified bool `json:"is_verified"`

	// OneTimeTokenHash is the single slot shared by email verification and
	// password reset. Nil when no flow is in progress.
	OneTimeTokenHash *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// AccountPatch is a partial update of an [Account]. Only non-nil fields are
// applied.
type AccountPatch struct {
	FirstName   *string    `json:"first_name,omitempty"`
	LastName    *string    `json:"last_name,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	DateOfBirth *time.Time `json:"dob,omitempty"`
	Gender      *Gender    `json:"gender,omitempty"`
	Address     *string    `json:"address,omitempty"`
	Role        *Role      `json:"role,omitempty"`
}

// Fields returns the JSON names of the fields set in the patch.
func (p AccountPatch) Fields() []string {
	fields := make([]string, 0, 8)
	if p.FirstName != nil {
		fields = append(fields, "first_name")
	}
	if p.LastName != nil {
		fields = append(fields, "last_name")
	}
	if p.Email != nil {
		fields = append(fields, "email")
	}
	if p.Phone != nil {
		fields = append(fields, "phone")
	}
	if p.DateOfBirth != nil {
		fields = append(fields, "dob")
	}
	if p.Gender != nil {
		fields = append(fields, "gender")
	}
	if p.Address != nil {
		fields = append(fields, "address")
	}
	if p.Role != nil {
		fields = append(fields, "role")
	}
	return fields
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Apply returns a copy of a with the patch merged in.
func (p AccountPatch) Apply(a Account) Account {
	if p.FirstName != nil {
		a.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		a.LastName = *p.LastName
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		a.DateOfBirth = &dob
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.Address != nil {
		a.Address = *p.Address
	}
	if p.Role != nil {
		a.Role = *p.Role
	}
	return a
}

// AccountFilter narrows account listings. Zero values mean "any".
type AccountFilter struct {
	Role       Role
	Gender     Gender
	IsVerified *bool
}

// Profile is the account view returned to its owner, including the id of
// the owned artist profile when the account has the artist role.
type Profile struct {
	Account
	ArtistID *int64 `json:"artistId,omitempty"`
}
