package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/formcraft/session/internal/logger"
	"github.com/formcraft/session/internal/model"
	"github.com/formcraft/session/internal/session"
)

// ClaimsKey is the request-local key under which RequireAuth stores
// verified session claims.
const ClaimsKey = "sessionClaims"

// SessionVerifier validates a session token and returns its claims.
type SessionVerifier interface {
	VerifySession(token string) (model.SessionClaims, error)
}

// Authenticate verifies the session cookie and injects its claims into
// request locals.
type Authenticate struct {
	sessions *session.Manager
	verifier SessionVerifier
	logger   *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessions *session.Manager, verifier SessionVerifier, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessions: sessions, verifier: verifier, logger: logger}
}

// RequireAuth rejects requests without a verifiable session cookie. An
// absent cookie and an invalid token get the same response; callers learn
// nothing about which it was.
func (m *Authenticate) RequireAuth(c fiber.Ctx) error {
	token, ok := m.sessions.Read(c)
	if !ok {
		m.logger.Debug("Authenticate middleware: no session cookie",
			"path", c.Path())
		return unauthorized(c)
	}

	claims, err := m.verifier.VerifySession(token)
	if err != nil {
		m.logger.Debug("Authenticate middleware: session rejected",
			"path", c.Path())
		return unauthorized(c)
	}

	c.Locals(ClaimsKey, claims)

	return c.Next()
}

// ClaimsFromContext extracts the claims RequireAuth stored for this request.
func ClaimsFromContext(c fiber.Ctx) (model.SessionClaims, bool) {
	claims, ok := c.Locals(ClaimsKey).(model.SessionClaims)
	return claims, ok
}

func unauthorized(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "Authentication required",
	})
}
