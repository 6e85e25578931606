// Package qrcode generates the shareable PNG codes for storefront pages.
package qrcode

import (
	"fmt"
	"strings"

	"vitrina/config"
	"vitrina/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// defaultQRSize is the rendered resolution when none is configured.
const defaultQRSize = 1024

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}
	size := qrCfg.Size
	if size <= 0 {
		size = defaultQRSize
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch qrCfg.ErrorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSuffix(qrCfg.BaseURL, "/"),
	}
}

// GenerateStoreQR generates a PNG QR code encoding the store's public URL.
func (s *qrcodeService) GenerateStoreQR(storeID string) ([]byte, error) {
	qrCode, err := qrcode.New(s.StoreURL(storeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// StoreURL returns the public storefront URL a QR code points at.
func (s *qrcodeService) StoreURL(storeID string) string {
	return fmt.Sprintf("%s/tienda/%s", s.baseURL, storeID)
}
