// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	storage  service.StorageService
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Storage  service.StorageService
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		storage:  params.Storage,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads the calling user's own record.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies the provided fields onto the user's profile.
// Only the owner ever reaches this path; the handler resolves userID from
// the session token.
func (srv *profileService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.Phone != nil {
		if *input.Phone != "" && !usecase.ValidPhone(*input.Phone) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("el número de WhatsApp debe tener 9 dígitos y empezar con 9")
		}
		user.Profile.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Profile.Address = *input.Address
	}
	if input.BirthDate != nil {
		if *input.BirthDate != "" {
			if _, err := time.Parse("2006-01-02", *input.BirthDate); err != nil {
				return nil, domainerrors.ErrValidationFailed.WithDetails("la fecha de nacimiento debe tener formato AAAA-MM-DD")
			}
		}
		user.Profile.BirthDate = *input.BirthDate
	}
	if input.Gender != nil {
		user.Profile.Gender = *input.Gender
	}
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// UploadPhoto stores a new profile photo and records its URL. The blob key
// is the user ID, so a new upload replaces the previous photo.
func (srv *profileService) UploadPhoto(ctx context.Context, userID string, upload usecase.ImageUpload) (string, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("profile-images/%s", userID)
	url, err := srv.storage.Upload(ctx, key, upload.ContentType, upload.Body)
	if err != nil {
		srv.log(ctx).Error("Profile photo upload failed", slog.String("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrUploadFailed, "profile photo upload failed")
	}

	user.Profile.PhotoURL = url
	user.UpdatedAt = time.Now()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to record profile photo")
	}

	return url, nil
}
