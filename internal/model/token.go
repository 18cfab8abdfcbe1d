package model

// TokenManager mints and validates session tokens.
type TokenManager interface {
	// Issue signs a token for the identity in claims. Any timestamps on the
	// input are ignored; the returned claims carry the stamped ones.
	Issue(claims SessionClaims) (token string, stamped SessionClaims, err error)
	// Parse validates a token and returns its claims. Every failure mode
	// surfaces as ErrInvalidToken or ErrTokenExpired.
	Parse(token string) (SessionClaims, error)
}
