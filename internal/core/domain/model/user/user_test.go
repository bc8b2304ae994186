package user_test

import (
	"testing"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/core/domain/model/user"
	"patternbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	validID := kernel.NewUUID()
	validHash := []byte("$2a$10$stub-hash-value")

	t.Run("should create valid user with all valid parameters", func(t *testing.T) {
		u, err := user.NewUser(validID, "alice", validHash)

		require.NoError(t, err)
		assert.NotNil(t, u)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(validID))
		assert.Equal(t, "alice", u.Name())
		assert.Equal(t, validHash, u.PasswordHash())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		u, err := user.NewUser(invalidID, "alice", validHash)

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		u, err := user.NewUser(validID, "", validHash)

		require.Error(t, err)
		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty hash", func(t *testing.T) {
		u, err := user.NewUser(validID, "alice", nil)

		require.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "password hash")
	})
}

func TestUser_ChangePasswordHash(t *testing.T) {
	newUser := func(t *testing.T) *user.User {
		t.Helper()
		u, err := user.NewUser(kernel.NewUUID(), "alice", []byte("old-hash"))
		require.NoError(t, err)
		return u
	}

	t.Run("replaces the stored hash", func(t *testing.T) {
		u := newUser(t)

		err := u.ChangePasswordHash([]byte("new-hash"))

		require.NoError(t, err)
		assert.Equal(t, []byte("new-hash"), u.PasswordHash())
	})

	t.Run("rejects empty hash", func(t *testing.T) {
		u := newUser(t)

		err := u.ChangePasswordHash(nil)

		require.Error(t, err)
		assert.Equal(t, []byte("old-hash"), u.PasswordHash())
	})

	t.Run("copies the supplied hash", func(t *testing.T) {
		u := newUser(t)
		buf := []byte("new-hash")

		require.NoError(t, u.ChangePasswordHash(buf))
		buf[0] = 'X'

		assert.Equal(t, []byte("new-hash"), u.PasswordHash())
	})
}

func TestUser_PasswordHashIsCopied(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "alice", []byte("hash"))
	require.NoError(t, err)

	read := u.PasswordHash()
	read[0] = 'X'

	assert.Equal(t, []byte("hash"), u.PasswordHash())
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero value user fails validation", func(t *testing.T) {
		var u user.User

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, user.ErrUserIsNotConstructed, err)
	})

	t.Run("nil user fails validation", func(t *testing.T) {
		var u *user.User

		require.Error(t, u.Validate())
	})
}

func TestUser_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := user.NewUser(id, "alice", []byte("hash"))
	require.NoError(t, err)
	b, err := user.NewUser(id, "bob", []byte("hash"))
	require.NoError(t, err)
	c, err := user.NewUser(kernel.NewUUID(), "alice", []byte("hash"))
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
