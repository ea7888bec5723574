package handlers

import (
	"time"

	"togetherly/internal/domain/user"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	IsPaid      bool       `json:"is_paid"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SessionResponse is returned by signup and login.
type SessionResponse struct {
	User      *UserResponse `json:"user"`
	ExpiresAt int64         `json:"expires_at"`
}

func toUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID(),
		Email:       u.Email(),
		IsPaid:      u.IsPaid(),
		LastLoginAt: u.LastLoginAt(),
		CreatedAt:   u.CreatedAt(),
	}
}

func toUserResponses(users []*user.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
