package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	mockRepo "vitrina/internal/mocks/repository"
	mockSvc "vitrina/internal/mocks/service"
	"vitrina/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shareServiceFixtures struct {
	service   usecase.ShareUsecase
	storeRepo *mockRepo.MockStoreRepository
	qrcode    *mockSvc.MockQRCodeService
	pdf       *mockSvc.MockPDFService
}

func createTestShareService(t *testing.T) shareServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	pdf := mockSvc.NewMockPDFService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewShareService(ShareServiceParams{
		StoreRepo:     storeRepo,
		QRCodeService: qrcode,
		PDFService:    pdf,
		Logger:        logger,
	})

	return shareServiceFixtures{service: service, storeRepo: storeRepo, qrcode: qrcode, pdf: pdf}
}

func TestShareService_StoreQR(t *testing.T) {
	fx := createTestShareService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		FindByID(ctx, "s1").
		Return(&entity.Store{ID: "s1"}, nil).
		Once()
	fx.qrcode.EXPECT().GenerateStoreQR("s1").Return([]byte("png-bytes"), nil).Once()

	png, err := fx.service.StoreQR(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestShareService_StoreQR_UnknownStore(t *testing.T) {
	fx := createTestShareService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrStoreNotFound).
		Once()

	_, err := fx.service.StoreQR(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestShareService_StoreFlyer(t *testing.T) {
	fx := createTestShareService(t)
	ctx := context.Background()

	store := &entity.Store{
		ID:       "s1",
		Name:     "Dulcería Lima",
		Category: "gastronomia",
		Address:  "Av. Arequipa 123",
		Phone:    "987654321",
	}
	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(store, nil).Once()
	fx.qrcode.EXPECT().GenerateStoreQR("s1").Return([]byte("png-bytes"), nil).Once()
	fx.pdf.EXPECT().
		GenerateStoreFlyer(service.FlyerData{
			StoreName: "Dulcería Lima",
			Category:  "gastronomia",
			Address:   "Av. Arequipa 123",
			Phone:     "987654321",
			QRCodePNG: []byte("png-bytes"),
		}).
		Return([]byte("%PDF-bytes"), nil).
		Once()

	pdf, err := fx.service.StoreFlyer(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-bytes"), pdf)
}
