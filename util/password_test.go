package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	SetJWTSecret("test-secret-123")

	first := HashPassword("password123")
	second := HashPassword("password123")
	assert.Equal(t, first, second, "hashing must be deterministic for the same secret")
	assert.NotEmpty(t, first)
	assert.NotEqual(t, "password123", first)

	other := HashPassword("different")
	assert.NotEqual(t, first, other)

	// A different secret must produce a different hash.
	SetJWTSecret("another-secret")
	assert.NotEqual(t, first, HashPassword("password123"))
}
