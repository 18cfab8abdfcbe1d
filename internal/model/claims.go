package model

import "time"

// SessionClaims is the identity snapshot carried by a session token.
// Name and Image are pointers because both are optional on the account;
// a nil Name still travels through the token as an explicit null.
type SessionClaims struct {
	UserID    string
	Email     string
	Name      *string
	Image     *string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TTL returns the remaining validity of the claims relative to now.
// It is negative for expired claims.
func (c SessionClaims) TTL(now time.Time) time.Duration {
	return c.ExpiresAt.Sub(now)
}

// ExpiresWithin reports whether the claims expire inside the given window.
func (c SessionClaims) ExpiresWithin(now time.Time, window time.Duration) bool {
	return c.TTL(now) <= window
}
