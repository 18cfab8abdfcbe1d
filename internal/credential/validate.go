package credential

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Password length bounds accepted at signup.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
)

// Display name length bounds accepted at signup.
const (
	MinNameLength = 2
	MaxNameLength = 100
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail reports whether email has a local@domain.tld shape.
// Empty and malformed inputs are rejected.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword checks password length bounds. On failure the message
// names the violated bound.
func ValidatePassword(password string) (bool, string) {
	length := utf8.RuneCountInString(password)
	if length < MinPasswordLength {
		return false, fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)
	}
	if length > MaxPasswordLength {
		return false, fmt.Sprintf("Password must be at most %d characters", MaxPasswordLength)
	}

	return true, ""
}

// ValidateName checks that name is non-blank and within length bounds
// after trimming surrounding whitespace.
func ValidateName(name string) (bool, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, "Name is required"
	}
	length := utf8.RuneCountInString(trimmed)
	if length < MinNameLength || length > MaxNameLength {
		return false, fmt.Sprintf("Name must be between %d and %d characters", MinNameLength, MaxNameLength)
	}

	return true, ""
}
