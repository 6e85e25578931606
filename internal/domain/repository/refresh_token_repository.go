// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/errors"
)

// ErrRefreshTokenNotFound is returned when a session record is missing or revoked.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for persisted login sessions.
type RefreshTokenRepository interface {
	// Store persists a new refresh token record (hashed, never raw).
	Store(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a session record by the token hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// Delete revokes a single session record.
	Delete(ctx context.Context, id string) error

	// DeleteByUser revokes every session of a user (logout everywhere).
	DeleteByUser(ctx context.Context, userID string) error
}
