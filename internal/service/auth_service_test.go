package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trackbudget/internal/auth"
	"trackbudget/internal/errors"
	"trackbudget/internal/model"
)

const testJWTSecret = "test-secret"

func TestAuthService_Signup(t *testing.T) {
	t.Run("new email gets an account and tokens", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockStore := new(MockTokenStore)
		mockRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// Password must be stored hashed, never verbatim.
			return u.Email == "new@example.com" && u.PasswordHash != "hunter22" && !u.IsPremium
		})).Return(nil)
		mockStore.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, auth.RefreshTokenExpiry).Return(nil)

		svc := NewAuthService(mockRepo, auth.NewJWTService(testJWTSecret), mockStore)
		access, refresh, user, err := svc.Signup(context.Background(), "new@example.com", "hunter22", "New User")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, "new@example.com", user.Email)
		mockRepo.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("create losing the race to a duplicate is still a conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockStore := new(MockTokenStore)
		mockRepo.On("FindByEmail", mock.Anything, "raced@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.ErrUserExists)

		svc := NewAuthService(mockRepo, auth.NewJWTService(testJWTSecret), mockStore)
		_, _, _, err := svc.Signup(context.Background(), "raced@example.com", "hunter22", "Racer")

		assert.ErrorIs(t, err, errors.ErrUserExists)
		mockStore.AssertNotCalled(t, "StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("existing email is a conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockStore := new(MockTokenStore)
		mockRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{ID: 1, Email: "taken@example.com"}, nil)

		svc := NewAuthService(mockRepo, auth.NewJWTService(testJWTSecret), mockStore)
		_, _, _, err := svc.Signup(context.Background(), "taken@example.com", "hunter22", "Dup")

		assert.ErrorIs(t, err, errors.ErrUserExists)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcryptCost)
	assert.NoError(t, err)
	stored := &model.User{ID: 1, Email: "user@example.com", PasswordHash: string(hashed)}

	t.Run("valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockStore := new(MockTokenStore)
		mockRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(stored, nil)
		mockRepo.On("TouchLastLogin", mock.Anything, uint(1)).Return(nil)
		mockStore.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "user@example.com", auth.RefreshTokenExpiry).Return(nil)

		svc := NewAuthService(mockRepo, auth.NewJWTService(testJWTSecret), mockStore)
		access, refresh, user, err := svc.Login(context.Background(), "user@example.com", "correct-password")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, uint(1), user.ID)
		mockRepo.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(stored, nil)

		svc := NewAuthService(mockRepo, auth.NewJWTService(testJWTSecret), new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "user@example.com", "wrong")

		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(mockRepo, auth.NewJWTService(testJWTSecret), new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService(testJWTSecret)
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "user@example.com")
	assert.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "user@example.com", nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, mockStore)
		access, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		mockStore.AssertExpectations(t)
	})

	t.Run("token missing from the store is rejected", func(t *testing.T) {
		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", errors.ErrInvalidRefreshToken)

		svc := NewAuthService(new(MockUserRepository), jwtService, mockStore)
		_, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, errors.ErrInvalidRefreshToken)
	})

	t.Run("identity mismatch is rejected", func(t *testing.T) {
		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(2), "other@example.com", nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, mockStore)
		_, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, errors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		_, err := svc.RefreshToken(context.Background(), "not-a-jwt")

		assert.ErrorIs(t, err, errors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService(testJWTSecret)
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "user@example.com")
	assert.NoError(t, err)

	mockStore := new(MockTokenStore)
	mockStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	svc := NewAuthService(new(MockUserRepository), jwtService, mockStore)
	assert.NoError(t, svc.Logout(context.Background(), refreshToken))
	mockStore.AssertExpectations(t)
}
