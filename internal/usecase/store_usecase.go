// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vitrina/internal/domain/entity"
)

// --- Input DTOs ---

// CreateStoreInput is the full store-creation submission collected by the
// wizard. The server replays the wizard gates over it before anything is
// persisted, so a client skipping steps is rejected the same way the UI
// would have blocked it.
type CreateStoreInput struct {
	PlanType      entity.PlanType
	PaymentMethod string
	IncubatorCode string // Optional; consumed at creation when valid.

	Name        string
	Description string
	Category    string
	City        string
	Address     string
	Phone       string // Optional; 9 digits starting with 9 when present.

	SocialMedia []entity.SocialMediaLink
	Tags        []string

	Latitude  *float64 // Optional; both coordinates or neither.
	Longitude *float64

	CoverImages []ImageUpload
}

// UpdateStoreInput defines the owner-editable fields of a store.
// Nil fields are left untouched.
type UpdateStoreInput struct {
	Name        *string                  `json:"name,omitempty"`
	Description *string                  `json:"description,omitempty"`
	Category    *string                  `json:"category,omitempty"`
	City        *string                  `json:"city,omitempty"`
	Address     *string                  `json:"address,omitempty"`
	Phone       *string                  `json:"phone,omitempty"`
	SocialMedia []entity.SocialMediaLink `json:"social_media,omitempty"`
	Tags        []string                 `json:"tags,omitempty"`
	Latitude    *float64                 `json:"latitude,omitempty"`
	Longitude   *float64                 `json:"longitude,omitempty"`
}

// StoreUsecase defines the interface for store lifecycle operations.
// Stores are created through the wizard submission and never deleted.
type StoreUsecase interface {
	// CreateStore runs the wizard gates over the submission, performs the
	// simulated payment, uploads the cover images, persists the store and
	// grants the owner the merchant role. Upload failures abort without
	// removing blobs already written.
	CreateStore(ctx context.Context, ownerID string, input CreateStoreInput) (*entity.Store, error)

	// GetMyStores lists the stores owned by the calling user.
	GetMyStores(ctx context.Context, ownerID string) ([]*entity.Store, error)

	// UpdateStore applies owner edits after an ownership check.
	UpdateStore(ctx context.Context, userID, storeID string, input *UpdateStoreInput) (*entity.Store, error)

	// UploadCoverImage adds one cover/gallery image to an existing store.
	UploadCoverImage(ctx context.Context, userID, storeID string, upload ImageUpload) (string, error)

	// RemoveCoverImage deletes one cover/gallery image blob by its
	// original filename and drops its URL from the store record. Removing
	// the current cover promotes the next gallery image.
	RemoveCoverImage(ctx context.Context, userID, storeID, filename string) (*entity.Store, error)

	// RenewPlan charges one more coverage period for the store's current
	// plan, appends the payment to the history and pushes the plan's end
	// date forward. The incubator discount keeps applying while its
	// window lasts.
	RenewPlan(ctx context.Context, userID, storeID string) (*entity.Store, error)

	// Plans returns the static plan catalog shown on the wizard's first step.
	Plans(ctx context.Context) []entity.PlanDefinition

	// ValidateIncubatorCode checks a code without consuming it, so the
	// wizard can show the discounted price before submission.
	ValidateIncubatorCode(ctx context.Context, code string) (float64, error)
}
