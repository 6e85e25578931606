package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	mockRepo "vitrina/internal/mocks/repository"
	mockSvc "vitrina/internal/mocks/service"
	"vitrina/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	oauthService     *mockSvc.MockOAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	oauthService := mockSvc.NewMockOAuthService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		OAuthService:     oauthService,
		Logger:           logger,
	})

	return userServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		oauthService:     oauthService,
	}
}

// expectSession wires the token issuing path shared by every login flow.
func (fx userServiceFixtures) expectSession(userID string) {
	fx.tokenService.EXPECT().
		GenerateTokens(userID, mock.AnythingOfType("entity.Roles")).
		Return("access-token", "refresh-token", nil).
		Once()
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash").Once()
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour).Once()
	fx.refreshTokenRepo.EXPECT().
		Store(mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil).
		Once()
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ana@example.com").
		Return(nil, repository.ErrUserNotFound).
		Once()
	fx.hasher.EXPECT().Hash("ClaveSegura123!").Return("hashed", nil).Once()

	var createdID string
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			createdID = user.ID
			assert.Equal(t, "ana@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, entity.Roles{entity.RoleUser}, user.Roles)
		}).
		Return(nil).
		Once()

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("string"), mock.AnythingOfType("entity.Roles")).
		Return("access-token", "refresh-token", nil).
		Once()
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash").Once()
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour).Once()
	fx.refreshTokenRepo.EXPECT().
		Store(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, record *entity.RefreshToken) {
			assert.Equal(t, createdID, record.UserID)
			assert.Equal(t, "refresh-hash", record.TokenHash)
		}).
		Return(nil).
		Once()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		DisplayName: "Ana",
		Email:       "  Ana@Example.com ", // Trimmed and lower-cased.
		Password:    "ClaveSegura123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, "ana@example.com", out.User.Email)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ana@example.com").
		Return(&entity.User{ID: "u1", Email: "ana@example.com"}, nil).
		Once()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "ana@example.com",
		Password: "ClaveSegura123!",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           "u1",
		Email:        "ana@example.com",
		PasswordHash: "hashed",
		Roles:        entity.Roles{entity.RoleUser, entity.RoleMerchant},
	}
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil).Once()
	fx.hasher.EXPECT().Check("ClaveSegura123!", "hashed").Return(true).Once()
	fx.expectSession("u1")

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "ClaveSegura123!",
	})
	require.NoError(t, err)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: "u1", Email: "ana@example.com", PasswordHash: "hashed"}
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil).Once()
	fx.hasher.EXPECT().Check("incorrecta", "hashed").Return(false).Once()

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailSameError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nadie@example.com").
		Return(nil, repository.ErrUserNotFound).
		Once()

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_GoogleOnlyAccountRejectsPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	// Google sign-in accounts carry no password hash.
	user := &entity.User{ID: "u1", Email: "ana@example.com"}
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil).Once()

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "cualquiera"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_LoginWithGoogle_FirstSignInCreatesUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.oauthService.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.GoogleUserInfo{
			Subject: "google-sub-1",
			Email:   "Ana@Example.com",
			Name:    "Ana",
			Picture: "https://example.com/ana.png",
		}, nil).
		Once()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ana@example.com").
		Return(nil, repository.ErrUserNotFound).
		Once()
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "google-sub-1", user.ID)
			assert.Empty(t, user.PasswordHash)
			assert.Equal(t, "https://example.com/ana.png", user.Profile.PhotoURL)
		}).
		Return(nil).
		Once()
	fx.expectSession("google-sub-1")

	out, err := fx.service.LoginWithGoogle(ctx, usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", out.User.ID)
}

func TestUserService_LoginWithGoogle_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.oauthService.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, assert.AnError).
		Once()

	_, err := fx.service.LoginWithGoogle(ctx, usecase.GoogleLoginInput{IDToken: "bad-token"})
	assert.ErrorIs(t, err, domainerrors.ErrGoogleTokenInvalid)
}

func TestUserService_Refresh_RotatesSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: "u1", Type: "refresh"}, nil).
		Once()
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash").Once()
	fx.refreshTokenRepo.EXPECT().
		FindByHash(ctx, "old-hash").
		Return(&entity.RefreshToken{ID: "rt1", UserID: "u1", TokenHash: "old-hash", ExpiresAt: time.Now().Add(time.Hour)}, nil).
		Once()
	fx.userRepo.EXPECT().
		FindByID(ctx, "u1").
		Return(&entity.User{ID: "u1", Roles: entity.Roles{entity.RoleUser}}, nil).
		Once()
	// The presented token is revoked before its replacement is stored.
	fx.refreshTokenRepo.EXPECT().Delete(ctx, "rt1").Return(nil).Once()
	fx.expectSession("u1")

	out, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "old-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", out.RefreshToken)
}

func TestUserService_Refresh_ExpiredSessionRevoked(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: "u1", Type: "refresh"}, nil).
		Once()
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash").Once()
	fx.refreshTokenRepo.EXPECT().
		FindByHash(ctx, "old-hash").
		Return(&entity.RefreshToken{ID: "rt1", UserID: "u1", ExpiresAt: time.Now().Add(-time.Minute)}, nil).
		Once()
	fx.refreshTokenRepo.EXPECT().Delete(ctx, "rt1").Return(nil).Once()

	_, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "old-refresh"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_UnknownSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("stray-refresh").
		Return(&service.Claims{UserID: "u1", Type: "refresh"}, nil).
		Once()
	fx.tokenService.EXPECT().HashToken("stray-refresh").Return("stray-hash").Once()
	fx.refreshTokenRepo.EXPECT().
		FindByHash(ctx, "stray-hash").
		Return(nil, repository.ErrRefreshTokenNotFound).
		Once()

	_, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "stray-refresh"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_Idempotent(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("gone-refresh").Return("gone-hash").Once()
	fx.refreshTokenRepo.EXPECT().
		FindByHash(ctx, "gone-hash").
		Return(nil, repository.ErrRefreshTokenNotFound).
		Once()

	assert.NoError(t, fx.service.Logout(ctx, "gone-refresh"))
}

func TestUserService_LogoutAll(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().DeleteByUser(ctx, "u1").Return(nil).Once()

	assert.NoError(t, fx.service.LogoutAll(ctx, "u1"))
}
