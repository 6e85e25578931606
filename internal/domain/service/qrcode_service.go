package service

// QRCodeService defines the interface for store QR code generation.
type QRCodeService interface {
	// GenerateStoreQR renders a PNG QR code encoding the canonical public
	// URL of the store page, at the configured resolution.
	GenerateStoreQR(storeID string) ([]byte, error)

	// StoreURL returns the canonical public URL encoded in the QR code.
	StoreURL(storeID string) string
}
