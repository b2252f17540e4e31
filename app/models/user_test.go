package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, CheckPasswordHash("secret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestCreateUser_Defaults(t *testing.T) {
	u, err := CreateUser("Somchai", "somchai@example.com", "secret-password")
	require.NoError(t, err)

	assert.Equal(t, ROLE_USER, u.Role)
	assert.Equal(t, STATUS_ACTIVE, u.Status)
	assert.Equal(t, LOCALE_TH, u.Locale)
	assert.True(t, u.CheckPassword("secret-password"))
}

func TestCreateUser_RejectsInvalidEmail(t *testing.T) {
	_, err := CreateUser("Somchai", "not-an-email", "secret-password")
	assert.Error(t, err)
}

func TestUserIsOwner(t *testing.T) {
	assert.False(t, (&User{Role: ROLE_USER}).IsOwner())
	assert.True(t, (&User{Role: ROLE_OWNER}).IsOwner())
	assert.True(t, (&User{Role: ROLE_ADMIN}).IsOwner())
}
