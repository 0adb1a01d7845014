package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.NoError(t, hasher.Verify("secret", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
}

func TestBcryptPasswordHasher_HashesDiffer(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("secret")
	require.NoError(t, err)
	h2, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "bcrypt salts must make repeated hashes differ")
}

func TestBcryptPasswordHasher_CostOutOfRangeClamped(t *testing.T) {
	hasher := NewBcryptPasswordHasher(100)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.NoError(t, hasher.Verify("secret", hash))
}
