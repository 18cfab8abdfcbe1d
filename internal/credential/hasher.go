package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor used for stored password hashes.
const HashCost = 12

// maxHashInput is bcrypt's input limit in bytes. GenerateFromPassword
// rejects longer input while comparison silently ignores the excess, so
// Hash clamps to keep both sides consistent for passwords near the upper
// validation bound.
const maxHashInput = 72

// Hasher hashes and verifies passwords using bcrypt. Callers must not log
// or persist plaintext passwords.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost, clamped to the
// range bcrypt supports. Zero or negative cost selects HashCost.
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = HashCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	return &Hasher{cost: cost}
}

// Hash produces a salted bcrypt hash of password. Output differs between
// calls for the same input.
func (h *Hasher) Hash(password string) (string, error) {
	b := []byte(password)
	if len(b) > maxHashInput {
		b = b[:maxHashInput]
	}

	hash, err := bcrypt.GenerateFromPassword(b, h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Compare reports whether password matches the stored bcrypt hash.
// A mismatch or malformed hash yields false, never an error.
func (h *Hasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
