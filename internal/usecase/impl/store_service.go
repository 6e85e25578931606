// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vitrina/config"
	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultPaymentDelay is the simulated payment acknowledgment wait when
// none is configured.
const defaultPaymentDelay = 2 * time.Second

// planCoverage is the period one payment covers.
const planCoverage = 7 * 24 * time.Hour

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo    repository.StoreRepository
	userRepo     repository.UserRepository
	codeRepo     repository.CodeRepository
	storage      service.StorageService
	paymentDelay time.Duration
	logger       *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	UserRepo  repository.UserRepository
	CodeRepo  repository.CodeRepository
	Storage   service.StorageService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	paymentDelay := defaultPaymentDelay
	if params.Config != nil && params.Config.Payment != nil && params.Config.Payment.SimulatedDelay > 0 {
		paymentDelay = params.Config.Payment.SimulatedDelay
	}

	return &storeService{
		storeRepo:    params.StoreRepo,
		userRepo:     params.UserRepo,
		codeRepo:     params.CodeRepo,
		storage:      params.Storage,
		paymentDelay: paymentDelay,
		logger:       params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore executes the terminal wizard submission: gates, simulated
// payment, cover uploads, record creation, code consumption, merchant role.
func (srv *storeService) CreateStore(ctx context.Context, ownerID string, input usecase.CreateStoreInput) (*entity.Store, error) {
	// Replay every wizard gate server-side; a client that skipped a step
	// fails exactly where the UI would have blocked it.
	wizard := usecase.NewStoreWizard(&input)
	if err := wizard.Run(); err != nil {
		return nil, err
	}

	planDef, ok := entity.FindPlanDefinition(input.PlanType)
	if !ok {
		return nil, domainerrors.ErrPlanNotSelected
	}

	// Resolve the incubator code before charging, so an invalid code
	// fails the submission instead of silently charging full price.
	amount := planDef.WeeklyCost
	var code *entity.IncubatorCode
	var discountEnd *time.Time
	if input.IncubatorCode != "" {
		found, err := srv.codeRepo.FindUnactivated(ctx, input.IncubatorCode)
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return nil, errors.Wrap(domainerrors.ErrIncubatorCodeInvalid, "incubator code rejected")
			}

			return nil, errors.Wrap(err, "failed to check incubator code")
		}
		code = found
		amount = planDef.WeeklyCost * entity.IncubatorDiscount
		end := time.Now().Add(planCoverage)
		discountEnd = &end
	}

	// Simulated payment acknowledgment. There is no gateway; the fixed
	// delay stands in for one.
	select {
	case <-time.After(srv.paymentDelay):
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "payment acknowledgment interrupted")
	}

	storeID := uuid.New().String()

	// Cover uploads happen before the record exists. A failure aborts the
	// submission and leaves already-uploaded blobs orphaned; there is no
	// compensating delete.
	coverImage, galleryImages, err := srv.uploadCovers(ctx, storeID, input.CoverImages)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	store := &entity.Store{
		ID:            storeID,
		OwnerID:       ownerID,
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Category:      input.Category,
		City:          strings.ToLower(strings.TrimSpace(input.City)),
		Address:       strings.TrimSpace(input.Address),
		Phone:         input.Phone,
		CoverImage:    coverImage,
		GalleryImages: galleryImages,
		Tags:          input.Tags,
		SocialMedia:   input.SocialMedia,
		CurrentPlan: entity.SubscriptionPlan{
			PlanType:        planDef.PlanType,
			StartDate:       now,
			EndDate:         now.Add(planCoverage),
			IsActive:        true,
			DiscountEndDate: discountEnd,
		},
		Payments: []entity.Payment{{
			PlanType:      planDef.PlanType,
			Amount:        amount,
			PaymentDate:   now,
			CoverageEnd:   now.Add(planCoverage),
			TransactionID: fmt.Sprintf("txn_%s", uuid.New().String()),
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Latitude != nil && input.Longitude != nil {
		store.Location = &orb.Point{*input.Longitude, *input.Latitude}
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		srv.log(ctx).Error("Store creation failed", slog.String("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create store")
	}

	// The code is consumed at creation. The store already exists at this
	// point, so a consumption failure is logged rather than unwinding it.
	if code != nil {
		if err := srv.codeRepo.Activate(ctx, code.ID, ownerID); err != nil {
			srv.log(ctx).Error("Incubator code consumption failed",
				slog.String("codeID", code.ID), slog.Any("error", err))
		}
	}

	srv.grantMerchantRole(ctx, ownerID)

	store.Products = make([]*entity.Product, 0)
	srv.log(ctx).Info("Store created", slog.String("storeID", store.ID), slog.String("ownerID", ownerID))

	return store, nil
}

// GetMyStores lists the stores owned by the calling user.
func (srv *storeService) GetMyStores(ctx context.Context, ownerID string) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own stores")
	}

	return stores, nil
}

// UpdateStore applies owner edits after an ownership check.
func (srv *storeService) UpdateStore(ctx context.Context, userID, storeID string, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	store, err := srv.ownedStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("el nombre de la tienda es obligatorio")
		}
		store.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.Category != nil {
		if strings.TrimSpace(*input.Category) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("la categoría es obligatoria")
		}
		store.Category = *input.Category
	}
	if input.City != nil {
		store.City = strings.ToLower(strings.TrimSpace(*input.City))
	}
	if input.Address != nil {
		if strings.TrimSpace(*input.Address) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("la dirección es obligatoria")
		}
		store.Address = strings.TrimSpace(*input.Address)
	}
	if input.Phone != nil {
		if *input.Phone != "" && !usecase.ValidPhone(*input.Phone) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("el número de WhatsApp debe tener 9 dígitos y empezar con 9")
		}
		store.Phone = *input.Phone
	}
	if input.SocialMedia != nil {
		store.SocialMedia = input.SocialMedia
	}
	if input.Tags != nil {
		if err := usecase.ValidateTags(input.Tags); err != nil {
			return nil, err
		}
		store.Tags = input.Tags
	}
	if input.Latitude != nil || input.Longitude != nil {
		if input.Latitude == nil || input.Longitude == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("la ubicación requiere latitud y longitud")
		}
		store.Location = &orb.Point{*input.Longitude, *input.Latitude}
	}
	store.UpdatedAt = time.Now()

	if err := srv.storeRepo.Update(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to update store")
	}

	return store, nil
}

// UploadCoverImage adds one cover/gallery image to an existing store.
func (srv *storeService) UploadCoverImage(ctx context.Context, userID, storeID string, upload usecase.ImageUpload) (string, error) {
	store, err := srv.ownedStore(ctx, userID, storeID)
	if err != nil {
		return "", err
	}

	// The blob key keeps the original filename; re-uploading the same
	// filename overwrites the earlier blob. Accepted limitation.
	key := fmt.Sprintf("stores/%s/cover/%s", storeID, upload.Filename)
	url, err := srv.storage.Upload(ctx, key, upload.ContentType, upload.Body)
	if err != nil {
		srv.log(ctx).Error("Cover upload failed", slog.String("storeID", storeID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrUploadFailed, "cover upload failed")
	}

	if store.CoverImage == "" {
		store.CoverImage = url
	}
	store.GalleryImages = append(store.GalleryImages, url)
	store.UpdatedAt = time.Now()
	if err := srv.storeRepo.Update(ctx, store); err != nil {
		return "", errors.Wrap(err, "failed to record cover image")
	}

	return url, nil
}

// RemoveCoverImage deletes one cover/gallery image. The blob goes first;
// a failed blob delete leaves the record untouched so the gallery never
// points at a removed image while the blob still exists.
func (srv *storeService) RemoveCoverImage(ctx context.Context, userID, storeID, filename string) (*entity.Store, error) {
	store, err := srv.ownedStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	suffix := "/" + filename
	kept := make([]string, 0, len(store.GalleryImages))
	var removed string
	for _, url := range store.GalleryImages {
		if removed == "" && strings.HasSuffix(url, suffix) {
			removed = url

			continue
		}
		kept = append(kept, url)
	}
	if removed == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("la imagen no pertenece a la tienda")
	}

	key := fmt.Sprintf("stores/%s/cover/%s", storeID, filename)
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Error("Cover image delete failed",
			slog.String("storeID", storeID), slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to delete cover image")
	}

	store.GalleryImages = kept
	if store.CoverImage == removed {
		store.CoverImage = ""
		if len(kept) > 0 {
			store.CoverImage = kept[0]
		}
	}
	store.UpdatedAt = time.Now()
	if err := srv.storeRepo.Update(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to record cover image removal")
	}

	return store, nil
}

// RenewPlan charges another coverage period and extends the current plan.
// The payment lands through the append-only history; the store document's
// plan reference is updated afterwards.
func (srv *storeService) RenewPlan(ctx context.Context, userID, storeID string) (*entity.Store, error) {
	store, err := srv.ownedStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	planDef, ok := entity.FindPlanDefinition(store.CurrentPlan.PlanType)
	if !ok {
		return nil, domainerrors.ErrPlanNotSelected
	}

	now := time.Now()
	amount := planDef.WeeklyCost
	if store.CurrentPlan.DiscountEndDate != nil && store.CurrentPlan.DiscountEndDate.After(now) {
		amount = planDef.WeeklyCost * entity.IncubatorDiscount
	}

	// Same simulated acknowledgment as the wizard submission.
	select {
	case <-time.After(srv.paymentDelay):
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "payment acknowledgment interrupted")
	}

	// An expired plan restarts coverage from now; a live one extends it.
	coverageStart := store.CurrentPlan.EndDate
	if coverageStart.Before(now) {
		coverageStart = now
	}
	coverageEnd := coverageStart.Add(planCoverage)

	payment := entity.Payment{
		PlanType:      planDef.PlanType,
		Amount:        amount,
		PaymentDate:   now,
		CoverageEnd:   coverageEnd,
		TransactionID: fmt.Sprintf("txn_%s", uuid.New().String()),
	}
	if err := srv.storeRepo.AppendPayment(ctx, storeID, payment); err != nil {
		srv.log(ctx).Error("Plan renewal payment failed",
			slog.String("storeID", storeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record renewal payment")
	}

	store.CurrentPlan.EndDate = coverageEnd
	store.CurrentPlan.IsActive = true
	store.Payments = append(store.Payments, payment)
	store.UpdatedAt = now
	if err := srv.storeRepo.Update(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to extend plan coverage")
	}

	srv.log(ctx).Info("Plan renewed",
		slog.String("storeID", storeID), slog.String("plan", string(planDef.PlanType)))

	return store, nil
}

// Plans returns the static plan catalog.
func (srv *storeService) Plans(_ context.Context) []entity.PlanDefinition {
	return entity.PlanCatalog
}

// ValidateIncubatorCode checks a code without consuming it and returns the
// fraction of the weekly cost charged when it is applied at submission.
func (srv *storeService) ValidateIncubatorCode(ctx context.Context, code string) (float64, error) {
	if _, err := srv.codeRepo.FindUnactivated(ctx, code); err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return 0, errors.Wrap(domainerrors.ErrIncubatorCodeInvalid, "incubator code rejected")
		}

		return 0, errors.Wrap(err, "failed to check incubator code")
	}

	return entity.IncubatorDiscount, nil
}

// ownedStore loads a store and verifies the caller owns it.
func (srv *storeService) ownedStore(ctx context.Context, userID, storeID string) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load store")
	}
	if store.OwnerID != userID {
		return nil, errors.Wrap(domainerrors.ErrStoreOwnershipViolation, "ownership check failed")
	}

	return store, nil
}

// uploadCovers writes the wizard's cover images under the new store's key
// space. The first uploaded image becomes the main cover.
func (srv *storeService) uploadCovers(ctx context.Context, storeID string, uploads []usecase.ImageUpload) (string, []string, error) {
	var coverImage string
	galleryImages := make([]string, 0, len(uploads))

	for _, upload := range uploads {
		key := fmt.Sprintf("stores/%s/cover/%s", storeID, upload.Filename)
		url, err := srv.storage.Upload(ctx, key, upload.ContentType, upload.Body)
		if err != nil {
			srv.log(ctx).Error("Cover upload failed during submission",
				slog.String("storeID", storeID), slog.String("key", key), slog.Any("error", err))

			return "", nil, errors.Wrap(domainerrors.ErrUploadFailed, "cover upload failed")
		}

		if coverImage == "" {
			coverImage = url
		}
		galleryImages = append(galleryImages, url)
	}

	return coverImage, galleryImages, nil
}

// grantMerchantRole marks the owner as a merchant after their first store.
func (srv *storeService) grantMerchantRole(ctx context.Context, ownerID string) {
	user, err := srv.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to load owner for role grant", slog.String("ownerID", ownerID), slog.Any("error", err))

		return
	}
	if user.Roles.Contains(entity.RoleMerchant) {
		return
	}

	user.GrantRole(entity.RoleMerchant)
	user.UpdatedAt = time.Now()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to grant merchant role", slog.String("ownerID", ownerID), slog.Any("error", err))
	}
}
