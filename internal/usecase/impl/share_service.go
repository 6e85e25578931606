// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"os"

	"vitrina/config"
	deliverycontext "vitrina/internal/delivery/context"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shareService implements the ShareUsecase interface.
type shareService struct {
	storeRepo     repository.StoreRepository
	qrcodeService service.QRCodeService
	pdfService    service.PDFService
	logoPath      string
	logger        *slog.Logger
}

// ShareServiceParams holds dependencies for ShareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	StoreRepo     repository.StoreRepository
	QRCodeService service.QRCodeService
	PDFService    service.PDFService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewShareService is the constructor for shareService.
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	logoPath := ""
	if params.Config != nil && params.Config.Flyer != nil {
		logoPath = params.Config.Flyer.LogoPath
	}

	return &shareService{
		storeRepo:     params.StoreRepo,
		qrcodeService: params.QRCodeService,
		pdfService:    params.PDFService,
		logoPath:      logoPath,
		logger:        params.Logger,
	}
}

func (srv *shareService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StoreQR renders the PNG QR code for an existing store.
func (srv *shareService) StoreQR(ctx context.Context, storeID string) ([]byte, error) {
	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load store for qr")
	}

	png, err := srv.qrcodeService.GenerateStoreQR(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render store qr")
	}

	return png, nil
}

// StoreFlyer renders the landscape flyer PDF for an existing store.
func (srv *shareService) StoreFlyer(ctx context.Context, storeID string) ([]byte, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load store for flyer")
	}

	qrPNG, err := srv.qrcodeService.GenerateStoreQR(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render qr for flyer")
	}

	pdf, err := srv.pdfService.GenerateStoreFlyer(service.FlyerData{
		StoreName: store.Name,
		Category:  store.Category,
		Address:   store.Address,
		Phone:     store.Phone,
		QRCodePNG: qrPNG,
		LogoPNG:   srv.loadLogo(ctx),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render flyer")
	}

	return pdf, nil
}

// loadLogo reads the optional partner logo. A missing or unreadable logo
// only drops it from the flyer.
func (srv *shareService) loadLogo(ctx context.Context) []byte {
	if srv.logoPath == "" {
		return nil
	}

	logo, err := os.ReadFile(srv.logoPath)
	if err != nil {
		srv.log(ctx).Warn("Partner logo unavailable", slog.String("path", srv.logoPath), slog.Any("error", err))

		return nil
	}

	return logo
}
