// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"vitrina/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
// A profile is created at registration, mutated only by its owner and never deleted.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)
	UploadPhoto(ctx context.Context, userID string, upload ImageUpload) (string, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update a profile.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	DisplayName *string `json:"display_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
	Gender      *string `json:"gender,omitempty"`
}

// ImageUpload is one uploaded image stream with its metadata.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}
