// Package user provides the User entity for the password-update action demo.
// A user carries a name and a stored password hash; the hash is the only
// mutable piece of state and changes only through ChangePasswordHash.
package user

import (
	"bytes"
	"errors"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/pkg/errs"
	"patternbook/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when using an improperly
	// initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrNameIsRequired is returned when attempting to create a user without
	// a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPasswordHashIsRequired is returned when attempting to create a user
	// or change a password with an empty hash. Plaintext never reaches this
	// entity; hashing happens in the application layer.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
)

// User represents an account in the showcase domain. It exists to give the
// action demo something to mutate: the update-password operation replaces
// the stored hash in place.
//
// Business rules:
//   - Users must have a valid UUID and a non-empty name
//   - The stored hash is never empty and never holds plaintext
//   - The hash changes only through ChangePasswordHash
type User struct {
	// id uniquely identifies the user
	id kernel.UUID

	// name is the human-readable account name
	name string

	// passwordHash is the stored credential digest
	passwordHash []byte

	// guard ensures the user was properly constructed
	guard guard.ConstructorGuard
}

// NewUser creates a new User with the specified parameters. This is the only
// way to create a valid User instance.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Account name (must be non-empty)
//   - passwordHash: Initial credential digest (must be non-empty)
//
// Returns:
//   - *User: A fully initialized user
//   - error: Validation error if any parameter is invalid
func NewUser(id kernel.UUID, name string, passwordHash []byte) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed through
// NewUser.
func (u *User) Validate() error {
	if u == nil || u.guard.Validate(ErrUserIsNotConstructed) != nil {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's account name.
func (u *User) Name() string {
	return u.name
}

// PasswordHash returns a copy of the stored credential digest. Mutating the
// returned slice does not affect the user.
func (u *User) PasswordHash() []byte {
	return bytes.Clone(u.passwordHash)
}

// ChangePasswordHash replaces the stored credential digest. The new hash
// must be non-empty; the slice is copied so callers may reuse their buffer.
func (u *User) ChangePasswordHash(hash []byte) error {
	if err := u.Validate(); err != nil {
		return err
	}

	return u.setPasswordHash(hash)
}

// setID validates and sets the user's unique identifier.
func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// setName validates and sets the user's account name.
func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

// setPasswordHash validates and sets the stored credential digest.
func (u *User) setPasswordHash(hash []byte) error {
	if len(hash) == 0 {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = bytes.Clone(hash)
	return nil
}
