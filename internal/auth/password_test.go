package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", digest)

	assert.True(t, CheckPassword("secret1", digest))
	assert.False(t, CheckPassword("secret2", digest))
	assert.False(t, CheckPassword("", digest))
}

func TestHashPassword_SaltVaries(t *testing.T) {
	first, err := HashPassword("secret1")
	assert.NoError(t, err)
	second, err := HashPassword("secret1")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret1", first))
	assert.True(t, CheckPassword("secret1", second))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	assert.False(t, CheckPassword("secret1", ""))
	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-digest"))
}
