package model

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across stores and services.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
)

// ErrorKind tags an Error with the failure class callers branch on.
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindAuthentication ErrorKind = "authentication"
	KindConfiguration  ErrorKind = "configuration"
	KindInternal       ErrorKind = "internal"
)

// Error is a classified failure. Message is safe to show to clients;
// Err holds the underlying cause for logs and is never serialized.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports malformed or rejected input.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewAuthenticationError reports failed or missing authentication.
func NewAuthenticationError(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// NewConfigurationError reports an unusable deployment configuration.
func NewConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// NewInternalError wraps an unexpected failure behind a generic message.
func NewInternalError(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind of err. Unclassified errors are internal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf extracts the client-safe message of err. Unclassified errors
// get the generic internal message.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
