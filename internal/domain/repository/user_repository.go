// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user/profile persistence.
// The application layer depends on this interface, not the Firestore implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their auth identity identifier.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user record keyed by the identity identifier.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the mutable fields of an existing user record.
	Update(ctx context.Context, user *entity.User) error
}
