package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("operator-key")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "operator-key", hash)

	assert.True(t, hasher.Check("operator-key", hash))
}

func TestBcryptHasher_HashRejectsEmpty(t *testing.T) {
	hasher := NewBcryptHasher()

	_, err := hasher.Hash("")
	assert.Error(t, err)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("operator-key")
	require.NoError(t, err)

	assert.False(t, hasher.Check("wrong-key", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("operator-key", ""))
	assert.False(t, hasher.Check("operator-key", "not-a-bcrypt-hash"))
}
