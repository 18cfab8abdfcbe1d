// Package authclient is an HTTP client for the session service. Beyond
// plain endpoint wrappers it implements the post-login verification
// protocol: after signup or login the client waits for the session cookie
// to settle, then confirms the session against the server before reporting
// success. This closes the race where a login response arrives before the
// issued cookie is actually usable.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/formcraft/session/pkg/retry"
)

// DefaultSettleDelay is the pause between a login response and the first
// session verification attempt. It gives the cookie store time to observe
// the Set-Cookie before the verification request fires.
const DefaultSettleDelay = 100 * time.Millisecond

const defaultTimeout = 10 * time.Second

// ErrVerificationFailed reports that signup or login got a success
// response but the session never became visible within the retry budget.
// Callers must treat the login as failed.
var ErrVerificationFailed = errors.New("session verification failed")

// User is the client-side view of an authenticated user.
type User struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// APIError is a non-success envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	User      *User  `json:"user"`
	Refreshed bool   `json:"refreshed"`
}

// Client talks to the session service. Cookies are held in the underlying
// http.Client's jar, so one Client represents one browser-like session.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	settleDelay time.Duration
	verifyRetry retry.Policy
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. A cookie jar is
// installed if the given client has none.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithSettleDelay overrides the pause before post-login verification.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Client) {
		c.settleDelay = d
	}
}

// WithRetryPolicy overrides the verification retry policy.
func WithRetryPolicy(p retry.Policy) Option {
	return func(c *Client) {
		c.verifyRetry = p
	}
}

// New creates a Client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		settleDelay: DefaultSettleDelay,
		verifyRetry: retry.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		c.httpClient.Jar = jar
	}

	return c, nil
}

type signupPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new account and verifies the resulting session. The
// returned user comes from the verification probe, not the signup echo.
func (c *Client) Signup(ctx context.Context, name, email, password, confirmPassword string) (User, error) {
	var env envelope
	err := c.post(ctx, "/api/auth/signup", signupPayload{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}, &env)
	if err != nil {
		return User{}, err
	}

	return c.verifySession(ctx)
}

// Login authenticates and verifies the resulting session. Success is only
// reported once the server confirms the session cookie works.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var env envelope
	err := c.post(ctx, "/api/auth/login", loginPayload{Email: email, Password: password}, &env)
	if err != nil {
		return User{}, err
	}

	return c.verifySession(ctx)
}

// Session reports the identity behind the current session cookie.
func (c *Client) Session(ctx context.Context) (User, error) {
	var env envelope
	if err := c.get(ctx, "/api/auth/session", &env); err != nil {
		return User{}, err
	}
	if env.User == nil {
		return User{}, fmt.Errorf("session response carried no user")
	}

	return *env.User, nil
}

// Logout clears the session cookie on the server side. The jar picks up
// the cleared cookie from the response.
func (c *Client) Logout(ctx context.Context) error {
	var env envelope
	return c.post(ctx, "/api/auth/logout", struct{}{}, &env)
}

// Refresh asks the server to rotate the session token. The boolean
// reports whether a rotation actually happened.
func (c *Client) Refresh(ctx context.Context) (User, bool, error) {
	var env envelope
	if err := c.post(ctx, "/api/auth/refresh", struct{}{}, &env); err != nil {
		return User{}, false, err
	}
	if env.User == nil {
		return User{}, false, fmt.Errorf("refresh response carried no user")
	}

	return *env.User, env.Refreshed, nil
}

// verifySession confirms the session cookie actually works. A short settle
// delay runs first, then the probe retries under the configured policy.
// Exhausting the budget means the login cannot be trusted.
func (c *Client) verifySession(ctx context.Context) (User, error) {
	select {
	case <-time.After(c.settleDelay):
	case <-ctx.Done():
		return User{}, ctx.Err()
	}

	var user User
	err := c.verifyRetry.Do(ctx, func() error {
		u, err := c.Session(ctx)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	return user, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out *envelope) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out *envelope) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out *envelope) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}

	if !out.Success {
		message := out.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	return nil
}
