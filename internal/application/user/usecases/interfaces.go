package usecases

import "time"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// SessionIssuer signs session tokens; implemented by *auth.JWTService.
type SessionIssuer interface {
	Generate(userID uint, email string) (string, time.Time, error)
}

type EmailService interface {
	SendPasswordResetEmail(to, token string) error
}
