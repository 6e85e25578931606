package service

// FlyerData carries everything the share flyer needs from a store.
type FlyerData struct {
	StoreName string
	Category  string
	Address   string
	Phone     string // WhatsApp number; the contact button is omitted when empty.
	QRCodePNG []byte // Pre-rendered QR code image.
	LogoPNG   []byte // Optional partner logo; nil to skip.
}

// PDFService defines the interface for generating the downloadable store flyer.
type PDFService interface {
	// GenerateStoreFlyer renders a landscape one-page PDF with the QR code,
	// the store headline fields and a WhatsApp contact button drawn as
	// vector shapes with embedded text.
	GenerateStoreFlyer(data FlyerData) ([]byte, error)
}
