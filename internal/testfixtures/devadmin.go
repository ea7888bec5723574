package testfixtures

import (
	"context"
	"fmt"

	"togetherly/internal/domain/user"
)

const (
	DevAdminEmail    = "admin@togetherly.local"
	DevAdminPassword = "dev-admin-password"
)

type passwordHasher interface {
	Hash(password string) (string, error)
}

// SeedDevAdmin makes sure a paid account exists for email. Pair it with
// auth.admin_emails so the account also passes the admin checks. Running it
// twice is harmless.
func SeedDevAdmin(ctx context.Context, users user.Repository, hasher passwordHasher, email, password string) (*user.User, error) {
	normalized, err := user.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	existing, err := users.GetByEmail(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up dev admin: %w", err)
	}
	if existing != nil {
		if !existing.IsPaid() {
			if err := users.SetPaid(ctx, existing.ID(), true); err != nil {
				return nil, fmt.Errorf("failed to mark dev admin paid: %w", err)
			}
			existing.SetPaid(true)
		}
		return existing, nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u, err := user.NewUser(normalized, hash)
	if err != nil {
		return nil, err
	}
	if err := users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create dev admin: %w", err)
	}
	if err := users.SetPaid(ctx, u.ID(), true); err != nil {
		return nil, fmt.Errorf("failed to mark dev admin paid: %w", err)
	}
	u.SetPaid(true)
	return u, nil
}
