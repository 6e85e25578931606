package service

import (
	"context"
	"io"
)

// StorageService defines the interface for blob storage of uploaded images.
// Keys follow the marketplace layout:
//
//	stores/{storeID}/cover/{originalFilename}
//	stores/{storeID}/products/{productID}/{generatedID}
//	profile-images/{userID}
//
// Cover filenames come from the uploaded file's original name, so repeated
// uploads with the same filename overwrite each other. Accepted limitation.
type StorageService interface {
	// Upload writes a blob under the given key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes a single blob. Missing blobs are not an error.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every blob under the given key prefix.
	// Used by the product-delete cascade before the record is removed.
	DeletePrefix(ctx context.Context, prefix string) error
}
