package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	password := "ClaveSegura123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher()
	password := "ClaveSegura123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Correct password
	assert.True(t, hasher.Check(password, hash))

	// Incorrect password
	assert.False(t, hasher.Check("OtraClave456!", hash))

	// Empty password
	assert.False(t, hasher.Check("", hash))

	// Malformed hash
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
}
