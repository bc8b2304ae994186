package ports

import (
	"context"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/core/domain/model/user"
)

// UserRepository defines the storage contract for user accounts.
// Lookups on an absent identifier or name fail with
// errs.ObjectNotFoundError.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByName retrieves a user by its account name. Names are unique
	// within the store.
	GetByName(ctx context.Context, name string) (*user.User, error)

	// Add stores a new user. The user must be valid and not already exist.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user, such as a replaced
	// password hash.
	Update(ctx context.Context, aggregate *user.User) error
}
