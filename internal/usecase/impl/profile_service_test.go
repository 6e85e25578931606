package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

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

type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
	storage  *mockSvc.MockStorageService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	storage := mockSvc.NewMockStorageService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Storage:  storage,
		Logger:   logger,
	})

	return profileServiceFixtures{service: service, userRepo: userRepo, storage: storage}
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrUserNotFound).
		Once()

	_, err := fx.service.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_MergesOnlyProvidedFields(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	existing := &entity.User{
		ID:          "u1",
		DisplayName: "Ana",
		Profile:     entity.UserProfile{Address: "Av. Arequipa 123"},
	}
	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(existing, nil).Once()
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()

	phone := "987654321"
	birthDate := "1995-07-20"
	user, err := fx.service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{
		Phone:     &phone,
		BirthDate: &birthDate,
	})
	require.NoError(t, err)

	assert.Equal(t, "987654321", user.Profile.Phone)
	assert.Equal(t, "1995-07-20", user.Profile.BirthDate)
	assert.Equal(t, "Ana", user.DisplayName, "untouched fields keep their value")
	assert.Equal(t, "Av. Arequipa 123", user.Profile.Address)
}

func TestProfileService_UpdateProfile_RejectsBadInput(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	badPhone := "123456789"
	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil).Once()
	_, err := fx.service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Phone: &badPhone})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	badDate := "20/07/1995"
	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil).Once()
	_, err = fx.service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{BirthDate: &badDate})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UploadPhoto_ReplacesPrevious(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "u1").
		Return(&entity.User{ID: "u1", Profile: entity.UserProfile{PhotoURL: "https://cdn.example.com/old.png"}}, nil).
		Once()
	// The blob key is the user ID, so re-uploads overwrite in place.
	fx.storage.EXPECT().
		Upload(ctx, "profile-images/u1", "image/png", mock.Anything).
		Return("https://cdn.example.com/profile-images/u1", nil).
		Once()
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Profile.PhotoURL == "https://cdn.example.com/profile-images/u1"
		})).
		Return(nil).
		Once()

	url, err := fx.service.UploadPhoto(ctx, "u1", usecase.ImageUpload{
		Filename:    "ana.png",
		ContentType: "image/png",
		Body:        strings.NewReader("imagen"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profile-images/u1", url)
}

func TestProfileService_UploadPhoto_UploadFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil).Once()
	fx.storage.EXPECT().
		Upload(ctx, "profile-images/u1", "image/png", mock.Anything).
		Return("", assert.AnError).
		Once()

	_, err := fx.service.UploadPhoto(ctx, "u1", usecase.ImageUpload{
		ContentType: "image/png",
		Body:        strings.NewReader("imagen"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}
