package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"trackbudget/internal/auth"
	"trackbudget/internal/cache"
	"trackbudget/internal/logger"
	"trackbudget/internal/repository"
)

// AccountService owns whole-account operations.
type AccountService interface {
	// DeleteAccount removes every row the user owns and the user row
	// itself in one transaction, then revokes outstanding tokens.
	DeleteAccount(ctx context.Context, userID uint) error
}

type accountService struct {
	userRepo   repository.UserRepository
	tokenStore auth.TokenStoreInterface
	cache      *cache.Client
}

// NewAccountService creates a new account service.
func NewAccountService(userRepo repository.UserRepository, tokenStore auth.TokenStoreInterface, cache *cache.Client) AccountService {
	return &accountService{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		cache:      cache,
	}
}

func (s *accountService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.userRepo.DeleteCascade(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	// Revocation is best-effort; the user row is already gone, so
	// anything resolving the user will fail regardless.
	if err := s.tokenStore.RevokeUser(ctx, userID); err != nil {
		logger.Get().Warn("revoke tokens after account deletion failed",
			zap.Uint("user_id", userID), zap.Error(err))
	}
	_ = s.cache.Delete(ctx, fmt.Sprintf("user:%d", userID))

	logger.Get().Info("account deleted", zap.Uint("user_id", userID))
	return nil
}
