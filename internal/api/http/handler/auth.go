package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/formcraft/session/internal/api/http/middleware"
	"github.com/formcraft/session/internal/logger"
	"github.com/formcraft/session/internal/model"
	"github.com/formcraft/session/internal/service"
	"github.com/formcraft/session/internal/session"
)

// AuthService defines signup, login and session operations.
type AuthService interface {
	Signup(ctx context.Context, name, email, password, confirmPassword string) (service.Session, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
	VerifySession(token string) (model.SessionClaims, error)
	RefreshSession(claims model.SessionClaims) (string, model.SessionClaims, bool, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	sessions    *session.Manager
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, sessions *session.Manager, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

type signupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new user and opens a session for it.
func (h *Auth) Signup(c fiber.Ctx) error {
	h.logger.Debug("Auth handler: processing signup request")

	var req signupRequest
	if err := c.Bind().JSON(&req); err != nil {
		return ValidationErrorResponse(c, "Invalid request body")
	}

	sess, err := h.authService.Signup(c.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		h.logger.Error("Auth handler: signup failed",
			"error", err.Error())
		return handleError(c, err)
	}

	h.sessions.Issue(c, sess.Token, sess.Claims.ExpiresAt)

	h.logger.Info("Auth handler: signup completed",
		"user_id", sess.User.ID)

	return c.JSON(userResponse{Success: true, User: userFromModel(sess.User)})
}

// Login authenticates credentials and opens a session. On failure no
// cookie is attached.
func (h *Auth) Login(c fiber.Ctx) error {
	h.logger.Debug("Auth handler: processing login request")

	var req loginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return ValidationErrorResponse(c, "Invalid request body")
	}

	sess, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"error", err.Error())
		return handleError(c, err)
	}

	h.sessions.Issue(c, sess.Token, sess.Claims.ExpiresAt)

	h.logger.Info("Auth handler: login completed",
		"user_id", sess.User.ID)

	return c.JSON(userResponse{Success: true, User: userFromModel(sess.User)})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; invalidation is cookie-level only.
func (h *Auth) Logout(c fiber.Ctx) error {
	h.sessions.Clear(c)

	h.logger.Info("Auth handler: logout completed")

	return c.JSON(okResponse{Success: true})
}

// Session reports the identity behind the presented session cookie. Used
// by clients for post-login verification.
func (h *Auth) Session(c fiber.Ctx) error {
	token, ok := h.sessions.Read(c)
	if !ok {
		return handleError(c, model.NewAuthenticationError("Authentication required"))
	}

	claims, err := h.authService.VerifySession(token)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(userResponse{Success: true, User: userFromClaims(claims)})
}

// Refresh rotates the session token when it is close to expiry. Outside
// the refresh window the existing cookie is left untouched.
func (h *Auth) Refresh(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return handleError(c, model.NewAuthenticationError("Authentication required"))
	}

	tokenString, fresh, refreshed, err := h.authService.RefreshSession(claims)
	if err != nil {
		h.logger.Error("Auth handler: refresh failed",
			"user_id", claims.UserID,
			"error", err.Error())
		return handleError(c, err)
	}

	if refreshed {
		h.sessions.Issue(c, tokenString, fresh.ExpiresAt)
	}

	return c.JSON(refreshResponse{Success: true, User: userFromClaims(fresh), Refreshed: refreshed})
}
