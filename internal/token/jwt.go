package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/formcraft/session/internal/model"
)

// SessionDuration is the fixed validity of an issued session token.
const SessionDuration = 30 * 24 * time.Hour

// sessionClaims is the wire shape of session token claims. Name has no
// omitempty so an unset display name still serializes as an explicit null.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string  `json:"userId"`
	Email  string  `json:"email"`
	Name   *string `json:"name"`
	Image  *string `json:"image,omitempty"`
}

func (c *sessionClaims) toModel() model.SessionClaims {
	return model.SessionClaims{
		UserID:    c.UserID,
		Email:     c.Email,
		Name:      c.Name,
		Image:     c.Image,
		IssuedAt:  c.IssuedAt.Time,
		ExpiresAt: c.ExpiresAt.Time,
	}
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// Issue signs a session token for the identity in claims. iat is stamped
// with the current time, exp exactly SessionDuration later, both at
// second precision.
func (j *JWT) Issue(claims model.SessionClaims) (string, model.SessionClaims, error) {
	now := time.Now()
	iat := jwt.NewNumericDate(now)
	exp := jwt.NewNumericDate(now.Add(SessionDuration))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  iat,
			ExpiresAt: exp,
		},
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Image:  claims.Image,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", model.SessionClaims{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	stamped := claims
	stamped.IssuedAt = iat.Time
	stamped.ExpiresAt = exp.Time

	return tokenString, stamped, nil
}

// Parse validates a session token and extracts its claims. Claims are
// validated manually so the expiry boundary is exact in Unix seconds:
// exp < now is expired, exp >= now is valid, no grace period.
func (j *JWT) Parse(tokenString string) (model.SessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, j.keyFunc, jwt.WithoutClaimsValidation())
	if err != nil {
		return model.SessionClaims{}, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.SessionClaims{}, model.ErrInvalidToken
	}
	if claims.UserID == "" || claims.Email == "" {
		return model.SessionClaims{}, model.ErrInvalidToken
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return model.SessionClaims{}, model.ErrInvalidToken
	}
	if claims.ExpiresAt.Unix() < time.Now().Unix() {
		return model.SessionClaims{}, model.ErrTokenExpired
	}

	return claims.toModel(), nil
}

// keyFunc pins the signing method to HS256. Tokens signed with any other
// algorithm, including other HMAC variants, are rejected.
func (j *JWT) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
	}
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
	}

	return []byte(j.secretKey), nil
}
