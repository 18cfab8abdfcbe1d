package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/formcraft/session/internal/credential"
	"github.com/formcraft/session/internal/logger"
	"github.com/formcraft/session/internal/model"
)

// RefreshWindow is how close to expiry a session must be before a refresh
// request mints a replacement token.
const RefreshWindow = 7 * 24 * time.Hour

// Session is the outcome of a successful signup or login: the stored user,
// the signed token, and its stamped claims.
type Session struct {
	User   model.User
	Token  string
	Claims model.SessionClaims
}

// Auth orchestrates credential verification and session token issuance.
type Auth struct {
	userStore model.UserStore
	hasher    *credential.Hasher
	tokens    model.TokenManager
	logger    *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	hasher *credential.Hasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Signup validates the registration input, creates the user, and issues a
// session. A taken email is a validation failure the caller can correct.
func (a *Auth) Signup(ctx context.Context, name, email, password, confirmPassword string) (Session, error) {
	a.logger.Debug("Auth service: starting user signup",
		"email", email)

	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	if ok, message := credential.ValidateName(name); !ok {
		return Session{}, model.NewValidationError(message)
	}
	if !credential.ValidateEmail(email) {
		return Session{}, model.NewValidationError("Invalid email address")
	}
	if ok, message := credential.ValidatePassword(password); !ok {
		return Session{}, model.NewValidationError(message)
	}
	if password != confirmPassword {
		return Session{}, model.NewValidationError("Passwords do not match")
	}

	existing, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered",
			"email", email)
		return Session{}, model.NewValidationError("Email already registered")
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         &name,
		PasswordHash: &hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			// Lost a race against a concurrent signup for the same email.
			a.logger.Info("Auth service: email already registered",
				"email", email)
			return Session{}, model.NewValidationError("Email already registered")
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, claims, err := a.tokens.Issue(created.SessionClaims())
	if err != nil {
		a.logger.Error("Auth service: failed to issue session token",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: user signup completed successfully",
		"email", email,
		"user_id", created.ID)

	return Session{User: created, Token: tokenString, Claims: claims}, nil
}

// Login authenticates email/password credentials and issues a session.
// A missing user, a password-less account, and a wrong password are all
// the same authentication failure; callers learn nothing about which.
func (a *Auth) Login(ctx context.Context, email, password string) (Session, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	email = normalizeEmail(email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login rejected",
			"email", email)
		return Session{}, model.NewAuthenticationError("Invalid email or password")
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.PasswordHash == nil || !a.hasher.Compare(*user.PasswordHash, password) {
		a.logger.Info("Auth service: login rejected",
			"email", email)
		return Session{}, model.NewAuthenticationError("Invalid email or password")
	}

	tokenString, claims, err := a.tokens.Issue(user.SessionClaims())
	if err != nil {
		a.logger.Error("Auth service: failed to issue session token",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: user login completed successfully",
		"email", email,
		"user_id", user.ID)

	return Session{User: user, Token: tokenString, Claims: claims}, nil
}

// VerifySession validates a session token. Every failure mode collapses
// into the same authentication error; callers treat it as no session.
func (a *Auth) VerifySession(token string) (model.SessionClaims, error) {
	claims, err := a.tokens.Parse(token)
	if err != nil {
		a.logger.Debug("Auth service: session verification failed",
			"error", err.Error())
		return model.SessionClaims{}, model.NewAuthenticationError("Authentication required")
	}

	return claims, nil
}

// RefreshSession mints a replacement token when the session expires within
// RefreshWindow. Outside the window it reports refreshed=false and returns
// the claims unchanged; the existing cookie stays valid.
func (a *Auth) RefreshSession(claims model.SessionClaims) (string, model.SessionClaims, bool, error) {
	if !claims.ExpiresWithin(time.Now(), RefreshWindow) {
		return "", claims, false, nil
	}

	tokenString, stamped, err := a.tokens.Issue(model.SessionClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Image:  claims.Image,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to refresh session token",
			"user_id", claims.UserID,
			"error", err.Error())
		return "", model.SessionClaims{}, false, fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: session refreshed",
		"user_id", claims.UserID)

	return tokenString, stamped, true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
