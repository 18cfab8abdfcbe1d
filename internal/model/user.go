package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user account. PasswordHash is nil for accounts
// that only ever authenticated through an external identity provider.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         *string
	Image        *string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionClaims builds the identity portion of session claims for the user.
// Timestamps are left zero; the token manager stamps them at issue time.
func (u User) SessionClaims() SessionClaims {
	return SessionClaims{
		UserID: u.ID.String(),
		Email:  u.Email,
		Name:   u.Name,
		Image:  u.Image,
	}
}
