package user

import (
	"net/mail"
	"strings"
	"time"
)

// User is an account. isPaid caches whether the latest subscription status
// grants paid features and is rewritten whenever that status changes.
type User struct {
	id                     uint
	email                  string
	passwordHash           string
	isPaid                 bool
	passwordResetTokenHash *string
	passwordResetExpiresAt *time.Time
	lastLoginAt            *time.Time
	createdAt              time.Time
	updatedAt              time.Time
}

func NewUser(email, passwordHash string) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, ErrPasswordRequired
	}

	now := time.Now().UTC()
	return &User{
		email:        normalized,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// UserState carries persisted columns into ReconstructUser.
type UserState struct {
	ID                     uint
	Email                  string
	PasswordHash           string
	IsPaid                 bool
	PasswordResetTokenHash *string
	PasswordResetExpiresAt *time.Time
	LastLoginAt            *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func ReconstructUser(s UserState) *User {
	return &User{
		id:                     s.ID,
		email:                  s.Email,
		passwordHash:           s.PasswordHash,
		isPaid:                 s.IsPaid,
		passwordResetTokenHash: s.PasswordResetTokenHash,
		passwordResetExpiresAt: s.PasswordResetExpiresAt,
		lastLoginAt:            s.LastLoginAt,
		createdAt:              s.CreatedAt,
		updatedAt:              s.UpdatedAt,
	}
}

// NormalizeEmail lower-cases and validates an address.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	if domain := email[strings.LastIndex(email, "@")+1:]; !strings.Contains(domain, ".") {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func (u *User) ID() uint                           { return u.id }
func (u *User) Email() string                      { return u.email }
func (u *User) PasswordHash() string               { return u.passwordHash }
func (u *User) IsPaid() bool                       { return u.isPaid }
func (u *User) PasswordResetTokenHash() *string    { return u.passwordResetTokenHash }
func (u *User) PasswordResetExpiresAt() *time.Time { return u.passwordResetExpiresAt }
func (u *User) LastLoginAt() *time.Time            { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time               { return u.createdAt }
func (u *User) UpdatedAt() time.Time               { return u.updatedAt }

func (u *User) SetID(id uint) {
	u.id = id
}

// SetPaid reports whether the flag changed.
func (u *User) SetPaid(paid bool) bool {
	if u.isPaid == paid {
		return false
	}
	u.isPaid = paid
	u.updatedAt = time.Now().UTC()
	return true
}

func (u *User) RecordLogin(at time.Time) {
	u.lastLoginAt = &at
}

// StartPasswordReset stores the hash of a reset token valid until expiresAt.
func (u *User) StartPasswordReset(tokenHash string, expiresAt time.Time) {
	u.passwordResetTokenHash = &tokenHash
	u.passwordResetExpiresAt = &expiresAt
	u.updatedAt = time.Now().UTC()
}

// CompletePasswordReset swaps the password if tokenHash matches an unexpired reset.
func (u *User) CompletePasswordReset(tokenHash, newPasswordHash string, now time.Time) error {
	if u.passwordResetTokenHash == nil || *u.passwordResetTokenHash != tokenHash {
		return ErrResetTokenInvalid
	}
	if u.passwordResetExpiresAt == nil || now.After(*u.passwordResetExpiresAt) {
		return ErrResetTokenExpired
	}
	u.passwordHash = newPasswordHash
	u.passwordResetTokenHash = nil
	u.passwordResetExpiresAt = nil
	u.updatedAt = now
	return nil
}
