package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"trackbudget/internal/cache"
)

const (
	refreshTokenKeyPrefix = "refresh_token:"
	revokedUserKeyPrefix  = "revoked_user:"
)

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID uint, email string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
	RevokeUser(ctx context.Context, userID uint) error
	IsUserRevoked(ctx context.Context, userID uint) (bool, error)
}

// TokenStore handles storage and retrieval of tokens in Redis.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores a refresh token in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	data := map[string]interface{}{
		"user_id": userID,
		"email":   email,
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal token data: %w", err)
	}

	key := refreshTokenKeyPrefix + tokenID
	return s.cache.Set(ctx, key, payload, ttl)
}

// GetRefreshToken retrieves refresh token data from Redis.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (userID uint, email string, err error) {
	key := refreshTokenKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return 0, "", fmt.Errorf("refresh token not found")
	}

	var tokenData map[string]interface{}
	if err := json.Unmarshal(data, &tokenData); err != nil {
		return 0, "", fmt.Errorf("unmarshal token data: %w", err)
	}

	uid, ok := tokenData["user_id"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("invalid user_id in token data")
	}
	userID = uint(uid)

	email, ok = tokenData["email"].(string)
	if !ok {
		return 0, "", fmt.Errorf("invalid email in token data")
	}

	return userID, email, nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	key := refreshTokenKeyPrefix + tokenID
	return s.cache.Delete(ctx, key)
}

// RevokeUser marks every outstanding token for the user as invalid.
// Used on account deletion; the marker only needs to outlive the
// longest-lived token.
func (s *TokenStore) RevokeUser(ctx context.Context, userID uint) error {
	key := revokedUserKeyPrefix + strconv.FormatUint(uint64(userID), 10)
	return s.cache.Set(ctx, key, []byte("1"), RefreshTokenExpiry)
}

// IsUserRevoked checks whether the user's tokens have been revoked.
func (s *TokenStore) IsUserRevoked(ctx context.Context, userID uint) (bool, error) {
	key := revokedUserKeyPrefix + strconv.FormatUint(uint64(userID), 10)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, nil // fail safe
	}
	return data != nil, nil
}
