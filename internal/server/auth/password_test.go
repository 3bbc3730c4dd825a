package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCredentialStore_HashAndCheck(t *testing.T) {
	t.Parallel()

	cs := NewCredentialStore(bcrypt.MinCost)

	hash, err := cs.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, cs.Check("correct horse battery staple", hash))
	assert.False(t, cs.Check("Correct horse battery staple", hash))
	assert.False(t, cs.Check("", hash))
}

func TestCredentialStore_HashesAreSalted(t *testing.T) {
	t.Parallel()

	cs := NewCredentialStore(bcrypt.MinCost)

	h1, err := cs.Hash("same-password")
	require.NoError(t, err)
	h2, err := cs.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, cs.Check("same-password", h1))
	assert.True(t, cs.Check("same-password", h2))
}

func TestCredentialStore_CheckGarbageHash(t *testing.T) {
	t.Parallel()

	cs := NewCredentialStore(bcrypt.MinCost)
	assert.False(t, cs.Check("anything", "not-a-bcrypt-hash"))
}

func TestNewCredentialStore_ClampsCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewCredentialStore(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewCredentialStore(99).cost)
	assert.Equal(t, bcrypt.MinCost, NewCredentialStore(bcrypt.MinCost).cost)
}

func TestCredentialStore_CheckDummy(t *testing.T) {
	t.Parallel()

	cs := NewCredentialStore(bcrypt.MinCost)
	// must not panic and must not accept anything
	cs.CheckDummy("whatever")
}
