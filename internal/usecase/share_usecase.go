// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
)

// ShareUsecase defines the downloadable share artifacts of a store page.
type ShareUsecase interface {
	// StoreQR renders the PNG QR code encoding the store's public URL.
	StoreQR(ctx context.Context, storeID string) ([]byte, error)

	// StoreFlyer renders the landscape PDF flyer with the QR code, the
	// store headline fields and the WhatsApp contact button.
	StoreFlyer(ctx context.Context, storeID string) ([]byte, error)
}
