// Package commands provides write-side use cases for the patternbook
// showcase. It implements the action demo: a single-purpose operation
// (update a user's password) whose business logic lives in one handler and
// is invoked uniformly from direct calls, the request adapter, and the
// command-line adapter.
package commands

import (
	"context"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/core/domain/model/user"
)

// UserStore is the narrow storage contract the password handler consumes.
// Declaring it on the consumer side keeps the handler decoupled from the
// full repository port; any ports.UserRepository satisfies it.
type UserStore interface {
	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error
}
