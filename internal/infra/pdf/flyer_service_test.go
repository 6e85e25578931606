package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"vitrina/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQRPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for x := 0; x < 32; x++ {
		img.Set(x, x, color.Black)
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestFlyerService_GenerateStoreFlyer(t *testing.T) {
	svc := NewFlyerService()

	out, err := svc.GenerateStoreFlyer(service.FlyerData{
		StoreName: "Dulces Tradiciones",
		Category:  "gastronomia",
		Address:   "Av. Grau 123, Piura",
		Phone:     "987654321",
		QRCodePNG: testQRPNG(t),
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// PDF files start with the %PDF marker.
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFlyerService_NoPhoneStillRenders(t *testing.T) {
	svc := NewFlyerService()

	out, err := svc.GenerateStoreFlyer(service.FlyerData{
		StoreName: "Tienda Online",
		QRCodePNG: testQRPNG(t),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFlyerService_MissingFields(t *testing.T) {
	svc := NewFlyerService()

	_, err := svc.GenerateStoreFlyer(service.FlyerData{QRCodePNG: testQRPNG(t)})
	assert.Error(t, err)

	_, err = svc.GenerateStoreFlyer(service.FlyerData{StoreName: "Sin QR"})
	assert.Error(t, err)
}
