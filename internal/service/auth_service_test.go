package service

import (
	"context"
	"strings"
	"testing"
	"time"

	cachemocks "boardinghouse/internal/cache/mocks"
	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"
	repomocks "boardinghouse/internal/repository/mocks"
	"boardinghouse/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(ctrl *gomock.Controller) (*AuthService, *repomocks.MockUserRepository, *repomocks.MockRefreshTokenRepository, *cachemocks.MockCache) {
	mockUserRepo := repomocks.NewMockUserRepository(ctrl)
	mockTokenRepo := repomocks.NewMockRefreshTokenRepository(ctrl)
	mockCache := cachemocks.NewMockCache(ctrl)

	service := NewAuthService(AuthServiceConfig{
		UserRepo:         mockUserRepo,
		RefreshTokenRepo: mockTokenRepo,
		Cache:            mockCache,
		JWTManager:       auth.NewJWTManager("testsecret", 15*time.Minute),
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	})

	return service, mockUserRepo, mockTokenRepo, mockCache
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("creates active client and returns tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockUserRepo, mockTokenRepo, mockCache := newTestAuthService(ctrl)

		mockUserRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, user *models.User) error {
				assert.Equal(t, models.RoleClient, user.Role)
				assert.True(t, user.IsActive)
				assert.NoError(t, auth.CheckPassword("secret123", user.Password))
				user.ID = primitive.NewObjectID()
				return nil
			})

		mockTokenRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			SetRefreshToken(gomock.Any(), gomock.Any(), gomock.Any(), 7*24*time.Hour).
			Return(nil)

		resp, err := service.Signup(context.Background(), &models.SignupRequest{
			Email:    "tenant@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.True(t, strings.HasPrefix(resp.RefreshToken, "rf_"))
		assert.Equal(t, 900, resp.ExpiresIn)
		assert.Equal(t, models.RoleClient, resp.User.Role)
	})

	t.Run("propagates duplicate email error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockUserRepo, _, _ := newTestAuthService(ctrl)

		mockUserRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(apperrors.ErrUserAlreadyExists)

		resp, err := service.Signup(context.Background(), &models.SignupRequest{
			Email:    "dup@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
		assert.Nil(t, resp)
	})
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	activeUser := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "tenant@example.com",
		Password: hashedPassword,
		Role:     models.RoleClient,
		IsActive: true,
	}

	t.Run("returns tokens for valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockUserRepo, mockTokenRepo, mockCache := newTestAuthService(ctrl)

		mockUserRepo.EXPECT().
			FindByEmail(gomock.Any(), "tenant@example.com").
			Return(activeUser, nil)
		mockTokenRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		mockCache.EXPECT().SetRefreshToken(gomock.Any(), gomock.Any(), activeUser.ID.Hex(), gomock.Any()).Return(nil)

		resp, err := service.Login(context.Background(), &models.LoginRequest{
			Email:    "tenant@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("returns invalid credentials for unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockUserRepo, _, _ := newTestAuthService(ctrl)

		mockUserRepo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, apperrors.ErrUserNotFound)

		resp, err := service.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Nil(t, resp)
	})

	t.Run("returns invalid credentials for wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockUserRepo, _, _ := newTestAuthService(ctrl)

		mockUserRepo.EXPECT().
			FindByEmail(gomock.Any(), "tenant@example.com").
			Return(activeUser, nil)

		resp, err := service.Login(context.Background(), &models.LoginRequest{
			Email:    "tenant@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Nil(t, resp)
	})

	t.Run("rejects deactivated accounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockUserRepo, _, _ := newTestAuthService(ctrl)

		inactive := *activeUser
		inactive.IsActive = false

		mockUserRepo.EXPECT().
			FindByEmail(gomock.Any(), "tenant@example.com").
			Return(&inactive, nil)

		resp, err := service.Login(context.Background(), &models.LoginRequest{
			Email:    "tenant@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, apperrors.ErrAccountInactive)
		assert.Nil(t, resp)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	userID := primitive.NewObjectID()
	activeUser := &models.User{
		ID:       userID,
		Email:    "tenant@example.com",
		Role:     models.RoleClient,
		IsActive: true,
	}

	t.Run("issues access token from cached refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockUserRepo, _, mockCache := newTestAuthService(ctrl)

		mockCache.EXPECT().
			GetRefreshToken(gomock.Any(), "rf_cached").
			Return(userID.Hex(), nil)
		mockUserRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(activeUser, nil)

		resp, err := service.Refresh(context.Background(), &models.RefreshRequest{RefreshToken: "rf_cached"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, 900, resp.ExpiresIn)
	})

	t.Run("falls back to database on cache miss and re-caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockUserRepo, mockTokenRepo, mockCache := newTestAuthService(ctrl)

		mockCache.EXPECT().
			GetRefreshToken(gomock.Any(), "rf_stored").
			Return("", nil)
		mockTokenRepo.EXPECT().
			FindByToken(gomock.Any(), "rf_stored").
			Return(&models.RefreshToken{
				Token:     "rf_stored",
				UserID:    userID,
				ExpiresAt: time.Now().Add(24 * time.Hour),
			}, nil)
		mockCache.EXPECT().
			SetRefreshToken(gomock.Any(), "rf_stored", userID.Hex(), gomock.Any()).
			Return(nil)
		mockUserRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(activeUser, nil)

		resp, err := service.Refresh(context.Background(), &models.RefreshRequest{RefreshToken: "rf_stored"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("rejects unknown refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, mockTokenRepo, mockCache := newTestAuthService(ctrl)

		mockCache.EXPECT().
			GetRefreshToken(gomock.Any(), "rf_unknown").
			Return("", nil)
		mockTokenRepo.EXPECT().
			FindByToken(gomock.Any(), "rf_unknown").
			Return(nil, apperrors.ErrInvalidRefreshToken)

		resp, err := service.Refresh(context.Background(), &models.RefreshRequest{RefreshToken: "rf_unknown"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
		assert.Nil(t, resp)
	})

	t.Run("rejects expired refresh token still present in database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, mockTokenRepo, mockCache := newTestAuthService(ctrl)

		mockCache.EXPECT().
			GetRefreshToken(gomock.Any(), "rf_expired").
			Return("", nil)
		mockTokenRepo.EXPECT().
			FindByToken(gomock.Any(), "rf_expired").
			Return(&models.RefreshToken{
				Token:     "rf_expired",
				UserID:    userID,
				ExpiresAt: time.Now().Add(-1 * time.Hour),
			}, nil)

		resp, err := service.Refresh(context.Background(), &models.RefreshRequest{RefreshToken: "rf_expired"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
		assert.Nil(t, resp)
	})

	t.Run("rejects refresh for deactivated accounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockUserRepo, _, mockCache := newTestAuthService(ctrl)

		inactive := *activeUser
		inactive.IsActive = false

		mockCache.EXPECT().
			GetRefreshToken(gomock.Any(), "rf_cached").
			Return(userID.Hex(), nil)
		mockUserRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(&inactive, nil)

		resp, err := service.Refresh(context.Background(), &models.RefreshRequest{RefreshToken: "rf_cached"})

		assert.ErrorIs(t, err, apperrors.ErrAccountInactive)
		assert.Nil(t, resp)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("removes token from database and cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, mockTokenRepo, mockCache := newTestAuthService(ctrl)

		mockTokenRepo.EXPECT().
			DeleteByToken(gomock.Any(), "rf_token").
			Return(nil)
		mockCache.EXPECT().
			DeleteRefreshToken(gomock.Any(), "rf_token").
			Return(nil)

		err := service.Logout(context.Background(), &models.LogoutRequest{RefreshToken: "rf_token"})

		assert.NoError(t, err)
	})

	t.Run("propagates database delete errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, mockTokenRepo, _ := newTestAuthService(ctrl)

		mockTokenRepo.EXPECT().
			DeleteByToken(gomock.Any(), "rf_token").
			Return(apperrors.ErrInvalidRefreshToken)

		err := service.Logout(context.Background(), &models.LogoutRequest{RefreshToken: "rf_token"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})
}

func TestGenerateRandomToken(t *testing.T) {
	a := generateRandomToken()
	b := generateRandomToken()

	assert.True(t, strings.HasPrefix(a, "rf_"))
	assert.Len(t, a, 3+64)
	assert.NotEqual(t, a, b)
}
