package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/formcraft/session/internal/api/http/middleware"
	"github.com/formcraft/session/internal/logger"
	"github.com/formcraft/session/internal/model"
)

// UserService defines user profile operations.
type UserService interface {
	Get(ctx context.Context, id string) (model.User, error)
}

// User handles HTTP endpoints for user profiles.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// Me returns the stored profile of the authenticated user. The session
// claims decide who that is; the store read is a profile lookup, not an
// authentication check.
func (h *User) Me(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return handleError(c, model.NewAuthenticationError("Authentication required"))
	}

	user, err := h.userService.Get(c.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("User handler: profile lookup failed",
			"user_id", claims.UserID,
			"error", err.Error())
		return handleError(c, err)
	}

	return c.JSON(userResponse{Success: true, User: userFromModel(user)})
}
