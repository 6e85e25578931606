// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vitrina/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	DisplayName string
	Email       string
	Password    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleLoginInput carries the Google Sign-In ID token obtained by the client.
type GoogleLoginInput struct {
	IDToken string
}

// RefreshInput carries the raw refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the token pair and the authenticated user.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	LoginWithGoogle(ctx context.Context, input GoogleLoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, input RefreshInput) (*AuthOutput, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutAll(ctx context.Context, userID string) error
}
