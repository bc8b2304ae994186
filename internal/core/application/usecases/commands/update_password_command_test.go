package commands_test

import (
	"testing"

	"patternbook/internal/core/application/usecases/commands"
	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdatePasswordCommand(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewUpdatePasswordCommand(validID, "new password")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.UserID().IsEqual(validID))
		assert.Equal(t, "new password", cmd.NewPassword())
	})

	t.Run("should fail with invalid user ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewUpdatePasswordCommand(invalidID, "new password")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty password", func(t *testing.T) {
		_, err := commands.NewUpdatePasswordCommand(validID, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.UpdatePasswordCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrUpdatePasswordCommandIsNotConstructed, err)
	})
}
