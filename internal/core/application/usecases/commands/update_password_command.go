package commands

import (
	"errors"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/pkg/errs"
	"patternbook/internal/pkg/guard"
)

var (
	ErrUpdatePasswordCommandIsNotConstructed = errors.New(
		"UpdatePasswordCommand must be created via NewUpdatePasswordCommand constructor",
	)
	ErrNewPasswordIsRequired = errs.NewValueIsRequiredError("new_password")
)

// UpdatePasswordCommand represents a request to change a user's password.
// It carries the target user's identifier and the new plaintext password;
// hashing happens in the handler, so the plaintext never reaches storage.
//
// Example:
//
//	cmd, err := NewUpdatePasswordCommand(userID, "correct horse battery staple")
//	if err != nil {
//	    return fmt.Errorf("invalid password change: %w", err)
//	}
//
//	handler := NewUpdatePasswordCommandHandler(users, bcrypt.DefaultCost)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update password: %w", err)
//	}
type UpdatePasswordCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	newPassword string

	guard guard.ConstructorGuard
}

// NewUpdatePasswordCommand creates a command to change a user's password.
// Validates that the user ID is valid and the new password is non-empty.
func NewUpdatePasswordCommand(userID kernel.UUID, newPassword string) (UpdatePasswordCommand, error) {
	cmd := UpdatePasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return UpdatePasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePasswordCommandIsNotConstructed if validation fails.
func (c UpdatePasswordCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePasswordCommandIsNotConstructed)
}

// UserID returns the identifier of the user whose password changes.
func (c UpdatePasswordCommand) UserID() kernel.UUID {
	return c.userID
}

// NewPassword returns the new plaintext password.
func (c UpdatePasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *UpdatePasswordCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdatePasswordCommand) setNewPassword(newPassword string) error {
	if newPassword == "" {
		return ErrNewPasswordIsRequired
	}

	c.newPassword = newPassword
	return nil
}
