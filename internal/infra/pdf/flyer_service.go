// Package pdf renders the downloadable promotional flyer for a store.
package pdf

import (
	"bytes"
	"fmt"

	"vitrina/internal/domain/service"
	"vitrina/internal/errors"

	"github.com/jung-kurt/gofpdf"
)

// Flyer layout constants, in millimeters on a landscape A4 page (297x210).
const (
	pageWidth  = 297.0
	pageHeight = 210.0

	qrSize   = 110.0
	qrMargin = 20.0

	buttonWidth  = 70.0
	buttonHeight = 14.0
	buttonRadius = 7.0
)

// Brand colors. The button uses the WhatsApp green.
var (
	headlineColor = [3]int{33, 37, 41}
	accentColor   = [3]int{108, 117, 125}
	whatsappGreen = [3]int{37, 211, 102}
)

type flyerService struct{}

// NewFlyerService is the constructor for flyerService.
func NewFlyerService() service.PDFService {
	return &flyerService{}
}

// GenerateStoreFlyer renders a one-page landscape A4 flyer: the QR code on
// the right half, the store headline fields on the left, and a WhatsApp
// contact button drawn as a rounded vector rectangle with embedded text.
func (s *flyerService) GenerateStoreFlyer(data service.FlyerData) ([]byte, error) {
	if data.StoreName == "" {
		return nil, errors.New("store name is required for the flyer")
	}
	if len(data.QRCodePNG) == 0 {
		return nil, errors.New("qr code image is required for the flyer")
	}

	doc := gofpdf.New("L", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	// QR code on the right half, vertically centered.
	qrOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("store-qr", qrOpts, bytes.NewReader(data.QRCodePNG))
	qrX := pageWidth - qrSize - qrMargin
	qrY := (pageHeight - qrSize) / 2
	doc.ImageOptions("store-qr", qrX, qrY, qrSize, qrSize, false, qrOpts, 0, "")

	// Optional partner logo, top-left corner.
	textLeft := qrMargin
	if len(data.LogoPNG) > 0 {
		doc.RegisterImageOptionsReader("partner-logo", qrOpts, bytes.NewReader(data.LogoPNG))
		doc.ImageOptions("partner-logo", textLeft, 12, 40, 0, false, qrOpts, 0, "")
	}

	// Headline block on the left half.
	textWidth := qrX - textLeft - 10
	doc.SetXY(textLeft, 60)
	doc.SetTextColor(headlineColor[0], headlineColor[1], headlineColor[2])
	doc.SetFont("Helvetica", "B", 32)
	doc.MultiCell(textWidth, 13, data.StoreName, "", "L", false)

	if data.Category != "" {
		doc.SetX(textLeft)
		doc.SetTextColor(accentColor[0], accentColor[1], accentColor[2])
		doc.SetFont("Helvetica", "", 16)
		doc.MultiCell(textWidth, 8, data.Category, "", "L", false)
	}

	if data.Address != "" {
		doc.Ln(4)
		doc.SetX(textLeft)
		doc.SetFont("Helvetica", "", 13)
		doc.MultiCell(textWidth, 7, data.Address, "", "L", false)
	}

	doc.Ln(4)
	doc.SetX(textLeft)
	doc.SetFont("Helvetica", "I", 12)
	doc.MultiCell(textWidth, 7, "Escanea el código QR y visita nuestra tienda", "", "L", false)

	// WhatsApp contact button, only when the store has a number.
	if data.Phone != "" {
		buttonY := doc.GetY() + 10
		doc.SetFillColor(whatsappGreen[0], whatsappGreen[1], whatsappGreen[2])
		doc.RoundedRect(textLeft, buttonY, buttonWidth, buttonHeight, buttonRadius, "1234", "F")

		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Helvetica", "B", 12)
		doc.SetXY(textLeft, buttonY)
		doc.CellFormat(buttonWidth, buttonHeight, fmt.Sprintf("WhatsApp %s", data.Phone), "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render flyer pdf")
	}

	return buf.Bytes(), nil
}
