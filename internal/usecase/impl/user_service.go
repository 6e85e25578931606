// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	oauthService     service.OAuthService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	OAuthService     service.OAuthService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		oauthService:     params.OAuthService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a first-party account and opens its first session.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Debug("Starting registration", slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  input.DisplayName,
		PasswordHash: passwordHash,
		Roles:        entity.Roles{entity.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID))

	return srv.openSession(ctx, user)
}

// Login authenticates an email/password pair and opens a session.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// An account created via Google sign-in has no password hash; a
	// password login against it must fail the same way a wrong password does.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	return srv.openSession(ctx, user)
}

// LoginWithGoogle verifies a Google ID token and opens a session, creating
// the account on first sign-in.
func (srv *userService) LoginWithGoogle(ctx context.Context, input usecase.GoogleLoginInput) (*usecase.AuthOutput, error) {
	info, err := srv.oauthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGoogleTokenInvalid, "google login failed")
	}

	email := strings.ToLower(info.Email)
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		now := time.Now()
		user = &entity.User{
			ID:          info.Subject,
			Email:       email,
			DisplayName: info.Name,
			Roles:       entity.Roles{entity.RoleUser},
			Profile:     entity.UserProfile{PhotoURL: info.Picture},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := srv.userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user from google sign-in")
		}
		srv.log(ctx).Info("User registered via Google", slog.String("userID", user.ID))
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to load user for google login")
	}

	return srv.openSession(ctx, user)
}

// Refresh rotates a refresh token into a new token pair.
func (srv *userService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token validation failed")
	}

	record, err := srv.refreshTokenRepo.FindByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh session not found")
		}

		return nil, errors.Wrap(err, "failed to load refresh session")
	}
	if time.Now().After(record.ExpiresAt) {
		// Expired records are revoked on sight.
		_ = srv.refreshTokenRepo.Delete(ctx, record.ID)

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh session expired")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	// Rotation: the presented token is revoked before its replacement is issued.
	if err := srv.refreshTokenRepo.Delete(ctx, record.ID); err != nil {
		return nil, errors.Wrap(err, "failed to revoke rotated refresh token")
	}

	return srv.openSession(ctx, user)
}

// Logout revokes the session behind the presented refresh token.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	record, err := srv.refreshTokenRepo.FindByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Already revoked; logout is idempotent.
			return nil
		}

		return errors.Wrap(err, "failed to load session for logout")
	}

	return srv.refreshTokenRepo.Delete(ctx, record.ID)
}

// LogoutAll revokes every session of the user.
func (srv *userService) LogoutAll(ctx context.Context, userID string) error {
	srv.log(ctx).Info("Revoking all sessions", slog.String("userID", userID))

	return srv.refreshTokenRepo.DeleteByUser(ctx, userID)
}

// openSession issues a token pair and persists the hashed refresh token.
func (srv *userService) openSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		CreatedAt: time.Now(),
	}
	if err := srv.refreshTokenRepo.Store(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
