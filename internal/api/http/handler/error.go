package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/formcraft/session/internal/model"
)

// errorResponse is the envelope for every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// okResponse is the envelope for operations with no payload.
type okResponse struct {
	Success bool `json:"success"`
}

// userResponse is the envelope carrying a user payload.
type userResponse struct {
	Success bool        `json:"success"`
	User    userPayload `json:"user"`
}

// refreshResponse reports whether the session token was rotated.
type refreshResponse struct {
	Success   bool        `json:"success"`
	User      userPayload `json:"user"`
	Refreshed bool        `json:"refreshed"`
}

// userPayload is the client-facing user shape. Password material never
// appears here.
type userPayload struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

func userFromModel(u model.User) userPayload {
	return userPayload{ID: u.ID.String(), Email: u.Email, Name: u.Name}
}

func userFromClaims(claims model.SessionClaims) userPayload {
	return userPayload{ID: claims.UserID, Email: claims.Email, Name: claims.Name}
}

// ValidationErrorResponse writes the standard 400 envelope for rejected
// input.
func ValidationErrorResponse(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Success: false, Error: message})
}

// statusForKind maps an error kind to its HTTP status.
func statusForKind(kind model.ErrorKind) int {
	switch kind {
	case model.KindValidation:
		return fiber.StatusBadRequest
	case model.KindAuthentication:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// handleError converts err into the JSON error envelope for its kind.
// Unclassified errors are internal: the client sees a generic message.
func handleError(c fiber.Ctx, err error) error {
	kind := model.KindOf(err)

	return c.Status(statusForKind(kind)).JSON(errorResponse{
		Success: false,
		Error:   model.MessageOf(err),
	})
}
