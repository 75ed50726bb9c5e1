package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeSaveHashesPassword(t *testing.T) {
	user := User{Name: "Ann", Email: "ann@example.com", Password: "plaintext"}

	require.NoError(t, user.BeforeSave(nil))

	assert.NotEqual(t, "plaintext", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2"))
	assert.True(t, user.CheckPassword("plaintext"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestBeforeSaveDoesNotRehash(t *testing.T) {
	user := User{Password: "plaintext"}
	require.NoError(t, user.BeforeSave(nil))
	hashed := user.Password

	// Saving again must leave the existing hash untouched.
	require.NoError(t, user.BeforeSave(nil))
	assert.Equal(t, hashed, user.Password)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}
