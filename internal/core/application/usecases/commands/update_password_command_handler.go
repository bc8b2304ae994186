package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// UpdatePasswordCommandHandler holds the single source of truth for the
// password-change operation: hash the new password and persist it on the
// user record. Every entry shape (direct call, request adapter, command-line
// adapter) funnels into Handle without duplicating this logic.
//
// Example:
//
//	handler := NewUpdatePasswordCommandHandler(users, bcrypt.DefaultCost)
//	cmd, _ := NewUpdatePasswordCommand(userID, "new password")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("password update failed: %w", err)
//	}
type UpdatePasswordCommandHandler struct {
	users      UserStore
	bcryptCost int
}

// NewUpdatePasswordCommandHandler creates a handler for password updates.
// A non-positive bcryptCost falls back to bcrypt.DefaultCost.
func NewUpdatePasswordCommandHandler(users UserStore, bcryptCost int) UpdatePasswordCommandHandler {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	return UpdatePasswordCommandHandler{
		users:      users,
		bcryptCost: bcryptCost,
	}
}

// Handle processes the password change. The new password is hashed with
// bcrypt and the resulting digest replaces the stored one; the plaintext is
// never persisted. An invalid user reference propagates from the store as a
// NotFound failure.
func (h UpdatePasswordCommandHandler) Handle(ctx context.Context, cmd UpdatePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := h.users.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.NewPassword()), h.bcryptCost)
	if err != nil {
		return err
	}

	if err = u.ChangePasswordHash(hash); err != nil {
		return err
	}

	return h.users.Update(ctx, u)
}
