// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/errors"
)

// ErrCodeNotFound is returned when no unactivated incubator code matches.
var ErrCodeNotFound = errors.New("incubator code not found")

// CodeRepository defines the operations on the incubator discount codes collection.
type CodeRepository interface {
	// FindUnactivated retrieves a code by exact value where the activation
	// status is still false. Activated or unknown codes yield ErrCodeNotFound.
	FindUnactivated(ctx context.Context, code string) (*entity.IncubatorCode, error)

	// Activate marks a code as consumed by the given user at store creation.
	Activate(ctx context.Context, id, userID string) error

	// Create persists a new code (back-office seeding).
	Create(ctx context.Context, code *entity.IncubatorCode) error
}
