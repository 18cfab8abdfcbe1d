package session

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "auth-token"

// Manager owns the HTTP attributes of the session cookie. The token value
// is opaque to it; verification belongs to the token service.
type Manager struct {
	production   bool
	forceHTTPS   bool
	cookieDomain string
}

// NewManager creates a cookie manager. forceHTTPS marks deployments where
// TLS terminates upstream of the service; cookieDomain is set only for
// explicit cross-subdomain sharing and is otherwise left empty.
func NewManager(production, forceHTTPS bool, cookieDomain string) *Manager {
	return &Manager{
		production:   production,
		forceHTTPS:   forceHTTPS,
		cookieDomain: cookieDomain,
	}
}

// Cookie builds the session cookie carrying token. MaxAge is the token's
// remaining validity in seconds, so cookie and token expire together.
func (m *Manager) Cookie(token string, expiresAt time.Time) *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.production || m.forceHTTPS,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
	}
	if m.cookieDomain != "" {
		cookie.Domain = m.cookieDomain
	}

	return cookie
}

// Issue attaches the session cookie for token to the outgoing response.
func (m *Manager) Issue(c fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(m.Cookie(token, expiresAt))
}

// Clear attaches the session cookie with an empty value and a wire-level
// Max-Age=0 so the browser drops it immediately.
func (m *Manager) Clear(c fiber.Ctx) {
	cookie := &fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.production || m.forceHTTPS,
		SameSite: fiber.CookieSameSiteLaxMode,
		// Negative MaxAge emits Max-Age=0 on the wire.
		MaxAge: -1,
	}
	if m.cookieDomain != "" {
		cookie.Domain = m.cookieDomain
	}
	c.Cookie(cookie)
}

// Read extracts the raw token from the request cookie. ok is false when
// the cookie is absent or empty; an absent cookie and an invalid token are
// indistinguishable to callers, both mean no session.
func (m *Manager) Read(c fiber.Ctx) (string, bool) {
	token := c.Cookies(CookieName)

	return token, token != ""
}
