package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trackbudget/internal/billing"
	"trackbudget/internal/cache"
	"trackbudget/internal/errors"
	"trackbudget/internal/logger"
	"trackbudget/internal/model"
	"trackbudget/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileService reads and mutates the user profile. Every GetProfile
// reconciles the locally cached premium flag against the billing
// authority (or the admin list) before responding.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uint) (*model.User, error)
	SaveProfile(ctx context.Context, userID uint, fullName, email, jobDescription string) error
	ChangePassword(ctx context.Context, userID uint, newPassword string) error
	Upgrade(ctx context.Context, userID uint) error
	ListUsers(ctx context.Context, callerEmail string) ([]model.User, error)
}

type profileService struct {
	userRepo  repository.UserRepository
	authority billing.Authority
	cache     *cache.Client
	isAdmin   func(email string) bool
}

// NewProfileService creates a profile service. isAdmin (usually
// (*config.Config).IsAdmin) marks emails that are always premium
// regardless of the authority's answer; nil means no admins.
func NewProfileService(userRepo repository.UserRepository, authority billing.Authority, cache *cache.Client, isAdmin func(email string) bool) ProfileService {
	return &profileService{
		userRepo:  userRepo,
		authority: authority,
		cache:     cache,
		isAdmin:   isAdmin,
	}
}

func (s *profileService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetProfile returns the user with a freshly reconciled premium flag.
// When the authority lookup fails the cached flag is served unchanged
// and reconciliation is skipped for this request.
func (s *profileService) GetProfile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	truePremium, ok := s.resolvePremium(ctx, user.Email)
	if !ok {
		return user, nil
	}

	if user.IsPremium != truePremium {
		if err := s.userRepo.UpdatePremium(ctx, userID, truePremium); err != nil {
			return nil, fmt.Errorf("persist premium flag: %w", err)
		}
		user.IsPremium = truePremium
		s.storeUser(ctx, user)
		logger.Get().Info("premium flag reconciled",
			zap.Uint("user_id", userID),
			zap.Bool("premium", truePremium))
	}
	return user, nil
}

// SaveProfile overwrites the free-text profile fields.
func (s *profileService) SaveProfile(ctx context.Context, userID uint, fullName, email, jobDescription string) error {
	if err := s.userRepo.UpdateProfile(ctx, userID, fullName, email, jobDescription); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return nil
}

// ChangePassword replaces the stored credential hash.
func (s *profileService) ChangePassword(ctx context.Context, userID uint, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return nil
}

// Upgrade force-sets the premium flag so the feature unlock is visible
// immediately after checkout, without waiting for reconciliation.
func (s *profileService) Upgrade(ctx context.Context, userID uint) error {
	if err := s.userRepo.UpdatePremium(ctx, userID, true); err != nil {
		return fmt.Errorf("upgrade: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return nil
}

// ListUsers returns every account; admin callers only.
func (s *profileService) ListUsers(ctx context.Context, callerEmail string) ([]model.User, error) {
	if s.isAdmin == nil || !s.isAdmin(callerEmail) {
		return nil, errors.ErrAdminOnly
	}
	return s.userRepo.List(ctx)
}

// resolvePremium computes the authoritative premium state. ok is false
// when the authority could not be consulted.
func (s *profileService) resolvePremium(ctx context.Context, email string) (premium, ok bool) {
	if s.isAdmin != nil && s.isAdmin(email) {
		return true, true
	}
	active, err := s.authority.ActiveSubscription(ctx, email)
	if err != nil {
		logger.Get().Warn("billing authority lookup failed, serving cached premium flag",
			zap.Error(err))
		return false, false
	}
	return active, true
}

func (s *profileService) getUser(ctx context.Context, userID uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	s.storeUser(ctx, user)
	return user, nil
}

func (s *profileService) storeUser(ctx context.Context, user *model.User) {
	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(user.ID), payload, profileCacheTTL)
	}
}
