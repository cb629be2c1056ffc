package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"trackbudget/internal/model"
	"trackbudget/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uint, fullName, email, jobDescription string) error {
	args := m.Called(ctx, id, fullName, email, jobDescription)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePremium(ctx context.Context, id uint, premium bool) error {
	args := m.Called(ctx, id, premium)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) RevokeUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockTokenStore) IsUserRevoked(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockAuthority is a mock implementation of billing.Authority.
type MockAuthority struct {
	mock.Mock
}

func (m *MockAuthority) ActiveSubscription(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockOwnedRepository is a mock implementation of repository.OwnedRepository.
type MockOwnedRepository[T any] struct {
	mock.Mock
}

func (m *MockOwnedRepository[T]) ListByUser(ctx context.Context, userID uint) ([]T, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockOwnedRepository[T]) Create(ctx context.Context, rec *T) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockOwnedRepository[T]) Update(ctx context.Context, userID, id uint, rec *T) error {
	args := m.Called(ctx, userID, id, rec)
	return args.Error(0)
}

func (m *MockOwnedRepository[T]) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockBillRepository is a mock implementation of repository.BillRepository.
type MockBillRepository struct {
	MockOwnedRepository[model.Bill]
}

func (m *MockBillRepository) SetPaid(ctx context.Context, userID, id uint, paid bool) error {
	args := m.Called(ctx, userID, id, paid)
	return args.Error(0)
}

// MockRetirementRepository is a mock implementation of repository.RetirementRepository.
type MockRetirementRepository struct {
	mock.Mock
}

func (m *MockRetirementRepository) FindPlan(ctx context.Context, userID uint) (*model.RetirementPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RetirementPlan), args.Error(1)
}

func (m *MockRetirementRepository) UpsertPlan(ctx context.Context, plan *model.RetirementPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockRetirementRepository) SumContributions(ctx context.Context, userID uint) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRetirementRepository) SummarizeContributions(ctx context.Context, userID uint) ([]repository.ContributionTypeTotal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ContributionTypeTotal), args.Error(1)
}
