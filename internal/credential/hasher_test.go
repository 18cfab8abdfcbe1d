package credential

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, h.Compare(hash, "secret123"))
	assert.False(t, h.Compare(hash, "secret124"))
	assert.False(t, h.Compare(hash, ""))
}

func TestHasher_SaltedOutput(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Compare(first, "secret123"))
	assert.True(t, h.Compare(second, "secret123"))
}

func TestHasher_DefaultCost(t *testing.T) {
	t.Parallel()

	h := NewHasher(0)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, HashCost, cost)
}

func TestHasher_CostClamped(t *testing.T) {
	t.Parallel()

	h := NewHasher(100)

	assert.Equal(t, bcrypt.MaxCost, h.cost)
}

func TestHasher_LongPassword(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)
	password := strings.Repeat("p", MaxPasswordLength)

	hash, err := h.Hash(password)
	require.NoError(t, err)
	assert.True(t, h.Compare(hash, password))
}

func TestHasher_MalformedHash(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	assert.False(t, h.Compare("not-a-bcrypt-hash", "secret123"))
	assert.False(t, h.Compare("", "secret123"))
}
