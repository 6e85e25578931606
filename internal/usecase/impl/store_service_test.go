package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"vitrina/config"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	mockRepo "vitrina/internal/mocks/repository"
	mockSvc "vitrina/internal/mocks/service"
	"vitrina/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeServiceFixtures struct {
	service   usecase.StoreUsecase
	storeRepo *mockRepo.MockStoreRepository
	userRepo  *mockRepo.MockUserRepository
	codeRepo  *mockRepo.MockCodeRepository
	storage   *mockSvc.MockStorageService
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	codeRepo := mockRepo.NewMockCodeRepository(t)
	storage := mockSvc.NewMockStorageService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewStoreService(StoreServiceParams{
		StoreRepo: storeRepo,
		UserRepo:  userRepo,
		CodeRepo:  codeRepo,
		Storage:   storage,
		Config: &config.Config{
			Payment: &config.PaymentConfig{SimulatedDelay: time.Millisecond},
		},
		Logger: logger,
	})

	return storeServiceFixtures{
		service:   service,
		storeRepo: storeRepo,
		userRepo:  userRepo,
		codeRepo:  codeRepo,
		storage:   storage,
	}
}

func validStoreInput() usecase.CreateStoreInput {
	return usecase.CreateStoreInput{
		PlanType:      entity.PlanFreemium,
		PaymentMethod: "yape",
		Name:          "Dulcería Lima",
		Category:      "gastronomia",
		City:          "Lima",
		Address:       "Av. Arequipa 123",
		Phone:         "987654321",
	}
}

// coverUpload builds an in-memory wizard cover image.
func coverUpload(filename string) usecase.ImageUpload {
	return usecase.ImageUpload{
		Filename:    filename,
		ContentType: "image/jpeg",
		Body:        strings.NewReader("imagen"),
	}
}

func keyEndingIn(suffix string) interface{} {
	return mock.MatchedBy(func(key string) bool { return strings.HasSuffix(key, suffix) })
}

func TestStoreService_CreateStore_Success(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	input := validStoreInput()
	input.CoverImages = []usecase.ImageUpload{coverUpload("frente.jpg"), coverUpload("interior.jpg")}

	fx.storage.EXPECT().
		Upload(ctx, keyEndingIn("/cover/frente.jpg"), "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/frente.jpg", nil).
		Once()
	fx.storage.EXPECT().
		Upload(ctx, keyEndingIn("/cover/interior.jpg"), "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/interior.jpg", nil).
		Once()

	var created *entity.Store
	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(_ context.Context, store *entity.Store) { created = store }).
		Return(nil).
		Once()

	fx.userRepo.EXPECT().
		FindByID(ctx, "owner-1").
		Return(&entity.User{ID: "owner-1", Roles: entity.Roles{entity.RoleUser}}, nil).
		Once()
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Roles.Contains(entity.RoleMerchant)
		})).
		Return(nil).
		Once()

	store, err := fx.service.CreateStore(ctx, "owner-1", input)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "owner-1", store.OwnerID)
	assert.Equal(t, "lima", store.City)
	assert.Equal(t, "https://cdn.example.com/frente.jpg", store.CoverImage)
	assert.Equal(t, []string{"https://cdn.example.com/frente.jpg", "https://cdn.example.com/interior.jpg"}, store.GalleryImages)

	assert.True(t, store.CurrentPlan.IsActive)
	assert.Nil(t, store.CurrentPlan.DiscountEndDate)
	require.Len(t, store.Payments, 1)
	assert.InDelta(t, 6.00, store.Payments[0].Amount, 0.001)
	assert.True(t, strings.HasPrefix(store.Payments[0].TransactionID, "txn_"))

	// A brand-new store always carries an empty product list, never nil.
	require.NotNil(t, store.Products)
	assert.Empty(t, store.Products)
}

func TestStoreService_CreateStore_IncubatorCodeHalvesCharge(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	input := validStoreInput()
	input.IncubatorCode = "INCUBA2026"

	fx.codeRepo.EXPECT().
		FindUnactivated(ctx, "INCUBA2026").
		Return(&entity.IncubatorCode{ID: "code-1", Code: "INCUBA2026"}, nil).
		Once()
	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil).
		Once()
	fx.codeRepo.EXPECT().Activate(ctx, "code-1", "owner-1").Return(nil).Once()
	fx.userRepo.EXPECT().
		FindByID(ctx, "owner-1").
		Return(&entity.User{ID: "owner-1", Roles: entity.Roles{entity.RoleUser, entity.RoleMerchant}}, nil).
		Once()

	store, err := fx.service.CreateStore(ctx, "owner-1", input)
	require.NoError(t, err)

	require.Len(t, store.Payments, 1)
	assert.InDelta(t, 3.00, store.Payments[0].Amount, 0.001)
	assert.NotNil(t, store.CurrentPlan.DiscountEndDate)
}

func TestStoreService_CreateStore_InvalidIncubatorCode(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	input := validStoreInput()
	input.IncubatorCode = "INVENTADO"

	// The code is resolved before any charge or upload happens.
	fx.codeRepo.EXPECT().
		FindUnactivated(ctx, "INVENTADO").
		Return(nil, repository.ErrCodeNotFound).
		Once()

	store, err := fx.service.CreateStore(ctx, "owner-1", input)
	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrIncubatorCodeInvalid)
}

func TestStoreService_CreateStore_GatesReplayedServerSide(t *testing.T) {
	fx := createTestStoreService(t)

	input := validStoreInput()
	input.Name = ""

	// The submission fails at the wizard replay; no dependency is touched.
	store, err := fx.service.CreateStore(context.Background(), "owner-1", input)
	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrWizardStepBlocked)
}

func TestStoreService_CreateStore_UploadFailureAborts(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	input := validStoreInput()
	input.CoverImages = []usecase.ImageUpload{coverUpload("frente.jpg"), coverUpload("interior.jpg")}

	fx.storage.EXPECT().
		Upload(ctx, keyEndingIn("/cover/frente.jpg"), "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/frente.jpg", nil).
		Once()
	// The second upload fails: the submission aborts, the first blob is
	// left orphaned and the store record is never written.
	fx.storage.EXPECT().
		Upload(ctx, keyEndingIn("/cover/interior.jpg"), "image/jpeg", mock.Anything).
		Return("", assert.AnError).
		Once()

	store, err := fx.service.CreateStore(ctx, "owner-1", input)
	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}

func TestStoreService_UpdateStore_MergesOnlyProvidedFields(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	existing := &entity.Store{
		ID:       "s1",
		OwnerID:  "owner-1",
		Name:     "Dulcería Lima",
		Category: "gastronomia",
		Address:  "Av. Arequipa 123",
		City:     "lima",
	}
	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(existing, nil).Once()
	fx.storeRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Store")).Return(nil).Once()

	newCity := "Arequipa"
	newDescription := "Postres artesanales"
	store, err := fx.service.UpdateStore(ctx, "owner-1", "s1", &usecase.UpdateStoreInput{
		City:        &newCity,
		Description: &newDescription,
	})
	require.NoError(t, err)

	assert.Equal(t, "arequipa", store.City)
	assert.Equal(t, "Postres artesanales", store.Description)
	assert.Equal(t, "Dulcería Lima", store.Name, "untouched fields keep their value")
}

func TestStoreService_UpdateStore_RejectsInvalidPhone(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		FindByID(ctx, "s1").
		Return(&entity.Store{ID: "s1", OwnerID: "owner-1"}, nil).
		Once()

	badPhone := "812345678"
	_, err := fx.service.UpdateStore(ctx, "owner-1", "s1", &usecase.UpdateStoreInput{Phone: &badPhone})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_UpdateStore_OwnershipEnforced(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		FindByID(ctx, "s1").
		Return(&entity.Store{ID: "s1", OwnerID: "owner-1"}, nil).
		Once()

	_, err := fx.service.UpdateStore(ctx, "intruso", "s1", &usecase.UpdateStoreInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreOwnershipViolation)
}

func TestStoreService_UploadCoverImage_FirstUploadBecomesCover(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	existing := &entity.Store{ID: "s1", OwnerID: "owner-1"}
	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(existing, nil).Once()
	fx.storage.EXPECT().
		Upload(ctx, "stores/s1/cover/frente.jpg", "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/frente.jpg", nil).
		Once()
	fx.storeRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(store *entity.Store) bool {
			return store.CoverImage == "https://cdn.example.com/frente.jpg" &&
				len(store.GalleryImages) == 1
		})).
		Return(nil).
		Once()

	url, err := fx.service.UploadCoverImage(ctx, "owner-1", "s1", coverUpload("frente.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/frente.jpg", url)
}

func TestStoreService_ValidateIncubatorCode(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.codeRepo.EXPECT().
		FindUnactivated(ctx, "INCUBA2026").
		Return(&entity.IncubatorCode{ID: "code-1", Code: "INCUBA2026"}, nil).
		Once()

	discount, err := fx.service.ValidateIncubatorCode(ctx, "INCUBA2026")
	require.NoError(t, err)
	assert.InDelta(t, entity.IncubatorDiscount, discount, 0.001)

	fx.codeRepo.EXPECT().
		FindUnactivated(ctx, "USADO").
		Return(nil, repository.ErrCodeNotFound).
		Once()

	_, err = fx.service.ValidateIncubatorCode(ctx, "USADO")
	assert.ErrorIs(t, err, domainerrors.ErrIncubatorCodeInvalid)
}

func TestStoreService_Plans(t *testing.T) {
	fx := createTestStoreService(t)

	plans := fx.service.Plans(context.Background())
	require.Len(t, plans, 4)
	assert.Equal(t, entity.PlanFreemium, plans[0].PlanType)
}

func TestStoreService_RenewPlan_AppendsPaymentAndExtendsCoverage(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	currentEnd := time.Now().Add(48 * time.Hour)
	existing := &entity.Store{
		ID:      "s1",
		OwnerID: "owner-1",
		CurrentPlan: entity.SubscriptionPlan{
			PlanType: entity.PlanFreemium,
			EndDate:  currentEnd,
			IsActive: true,
		},
	}
	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(existing, nil).Once()

	fx.storeRepo.EXPECT().
		AppendPayment(ctx, "s1", mock.MatchedBy(func(p entity.Payment) bool {
			return p.PlanType == entity.PlanFreemium &&
				p.Amount == 6.00 &&
				strings.HasPrefix(p.TransactionID, "txn_") &&
				p.CoverageEnd.Equal(currentEnd.Add(planCoverage))
		})).
		Return(nil).
		Once()
	fx.storeRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(s *entity.Store) bool {
			return s.CurrentPlan.EndDate.Equal(currentEnd.Add(planCoverage)) && s.CurrentPlan.IsActive
		})).
		Return(nil).
		Once()

	store, err := fx.service.RenewPlan(ctx, "owner-1", "s1")
	require.NoError(t, err)
	require.Len(t, store.Payments, 1)
	assert.Equal(t, currentEnd.Add(planCoverage), store.CurrentPlan.EndDate)
}

func TestStoreService_RenewPlan_DiscountWindowHalvesCharge(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	discountEnd := time.Now().Add(72 * time.Hour)
	existing := &entity.Store{
		ID:      "s1",
		OwnerID: "owner-1",
		CurrentPlan: entity.SubscriptionPlan{
			PlanType:        entity.PlanFreemium,
			EndDate:         time.Now().Add(24 * time.Hour),
			DiscountEndDate: &discountEnd,
		},
	}
	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(existing, nil).Once()

	fx.storeRepo.EXPECT().
		AppendPayment(ctx, "s1", mock.MatchedBy(func(p entity.Payment) bool {
			return p.Amount == 3.00
		})).
		Return(nil).
		Once()
	fx.storeRepo.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()

	_, err := fx.service.RenewPlan(ctx, "owner-1", "s1")
	require.NoError(t, err)
}

func TestStoreService_RenewPlan_ExpiredPlanRestartsFromNow(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	existing := &entity.Store{
		ID:      "s1",
		OwnerID: "owner-1",
		CurrentPlan: entity.SubscriptionPlan{
			PlanType: entity.PlanFreemium,
			EndDate:  time.Now().Add(-24 * time.Hour),
			IsActive: false,
		},
	}
	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(existing, nil).Once()

	fx.storeRepo.EXPECT().
		AppendPayment(ctx, "s1", mock.MatchedBy(func(p entity.Payment) bool {
			// Coverage restarts from the renewal moment, not the lapsed end date.
			return assert.WithinDuration(t, time.Now().Add(planCoverage), p.CoverageEnd, 5*time.Second)
		})).
		Return(nil).
		Once()
	fx.storeRepo.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()

	store, err := fx.service.RenewPlan(ctx, "owner-1", "s1")
	require.NoError(t, err)
	assert.True(t, store.CurrentPlan.IsActive)
}

func TestStoreService_RenewPlan_OwnershipEnforced(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		FindByID(ctx, "s1").
		Return(&entity.Store{ID: "s1", OwnerID: "owner-1"}, nil).
		Once()

	_, err := fx.service.RenewPlan(ctx, "intruso", "s1")
	assert.ErrorIs(t, err, domainerrors.ErrStoreOwnershipViolation)
}

func TestStoreService_RemoveCoverImage_PromotesNextCover(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	existing := &entity.Store{
		ID:         "s1",
		OwnerID:    "owner-1",
		CoverImage: "https://cdn.example.com/stores/s1/cover/frente.jpg",
		GalleryImages: []string{
			"https://cdn.example.com/stores/s1/cover/frente.jpg",
			"https://cdn.example.com/stores/s1/cover/interior.jpg",
		},
	}
	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(existing, nil).Once()
	fx.storage.EXPECT().Delete(ctx, "stores/s1/cover/frente.jpg").Return(nil).Once()
	fx.storeRepo.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()

	store, err := fx.service.RemoveCoverImage(ctx, "owner-1", "s1", "frente.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/stores/s1/cover/interior.jpg"}, store.GalleryImages)
	assert.Equal(t, "https://cdn.example.com/stores/s1/cover/interior.jpg", store.CoverImage)
}

func TestStoreService_RemoveCoverImage_UnknownFilename(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	existing := &entity.Store{
		ID:            "s1",
		OwnerID:       "owner-1",
		GalleryImages: []string{"https://cdn.example.com/stores/s1/cover/frente.jpg"},
	}
	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(existing, nil).Once()

	_, err := fx.service.RemoveCoverImage(ctx, "owner-1", "s1", "inexistente.jpg")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_RemoveCoverImage_BlobDeleteFailureKeepsRecord(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	existing := &entity.Store{
		ID:            "s1",
		OwnerID:       "owner-1",
		CoverImage:    "https://cdn.example.com/stores/s1/cover/frente.jpg",
		GalleryImages: []string{"https://cdn.example.com/stores/s1/cover/frente.jpg"},
	}
	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(existing, nil).Once()
	fx.storage.EXPECT().
		Delete(ctx, "stores/s1/cover/frente.jpg").
		Return(errors.New("bucket unavailable")).
		Once()

	_, err := fx.service.RemoveCoverImage(ctx, "owner-1", "s1", "frente.jpg")
	require.Error(t, err)
}
