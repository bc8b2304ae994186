// Package userrepo provides the in-memory implementation of the user
// repository contract used by the password-update action demo.
package userrepo

import (
	"context"
	"sync"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/core/domain/model/user"
	"patternbook/internal/pkg/errs"
)

// Repository implements ports.UserRepository over an in-memory map keyed by
// user ID, with a secondary name index for command-line lookups.
type Repository struct {
	mu      sync.RWMutex
	records map[string]userRecord
	byName  map[string]string
}

// userRecord is the stored representation of a user.
type userRecord struct {
	ID           string
	Name         string
	PasswordHash []byte
}

// NewRepository creates an empty in-memory user repository.
func NewRepository() *Repository {
	return &Repository{
		records: make(map[string]userRecord),
		byName:  make(map[string]string),
	}
}

// Get retrieves a user by ID.
// Returns errs.ObjectNotFoundError when the ID is absent.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id.String())
	}

	return toDomain(record)
}

// GetByName retrieves a user by account name.
// Returns errs.ObjectNotFoundError when the name is absent.
func (r *Repository) GetByName(_ context.Context, name string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", name)
	}

	return toDomain(r.records[id])
}

// Add stores a new user.
// Fails with errs.ValueIsInvalidError when the ID or name is already taken.
func (r *Repository) Add(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID().String()
	if _, ok := r.records[id]; ok {
		return errs.NewValueIsInvalidError("id")
	}
	if _, ok := r.byName[aggregate.Name()]; ok {
		return errs.NewValueIsInvalidError("name")
	}

	r.records[id] = fromDomain(aggregate)
	r.byName[aggregate.Name()] = id
	return nil
}

// Update persists changes to an existing user.
// Returns errs.ObjectNotFoundError when the user is absent.
func (r *Repository) Update(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID().String()
	previous, ok := r.records[id]
	if !ok {
		return errs.NewObjectNotFoundError("user", id)
	}

	delete(r.byName, previous.Name)
	r.records[id] = fromDomain(aggregate)
	r.byName[aggregate.Name()] = id
	return nil
}

// fromDomain converts a user entity to its stored representation.
func fromDomain(u *user.User) userRecord {
	return userRecord{
		ID:           u.ID().String(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
	}
}

// toDomain converts a stored record back to a user entity.
func toDomain(record userRecord) (*user.User, error) {
	id, err := kernel.UUIDFromString(record.ID)
	if err != nil {
		return nil, err
	}

	return user.NewUser(id, record.Name, record.PasswordHash)
}
