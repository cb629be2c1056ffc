package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	apperrors "trackbudget/internal/errors"
	"trackbudget/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, id uint, fullName, email, jobDescription string) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	UpdatePremium(ctx context.Context, id uint, premium bool) error
	TouchLastLogin(ctx context.Context, id uint) error
	DeleteCascade(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateEntry(err) {
			return apperrors.ErrUserExists
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uint, fullName, email, jobDescription string) error {
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"full_name":       fullName,
			"email":           email,
			"job_description": jobDescription,
		}).Error
	if isDuplicateEntry(err) {
		return apperrors.ErrUserExists
	}
	return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *userRepository) UpdatePremium(ctx context.Context, id uint, premium bool) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("is_premium", premium).Error
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).Error
}

// isDuplicateEntry reports MySQL error 1062, a unique-key violation.
// Signup's existence pre-check races with concurrent requests and
// SaveProfile can move an account onto a taken email; both land here.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// DeleteCascade removes every row owned by the user, then the user row,
// in one transaction so a failure leaves nothing half-deleted.
func (r *userRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&model.Expense{},
			&model.Income{},
			&model.SavingsBucket{},
			&model.Bill{},
			&model.Asset{},
			&model.RetirementPlan{},
			&model.RetirementContribution{},
			&model.CalendarNote{},
		}
		for _, entity := range owned {
			if err := tx.Where("user_id = ?", id).Delete(entity).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.User{}, id).Error
	})
}
