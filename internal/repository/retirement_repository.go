package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trackbudget/internal/model"
)

// ContributionTypeTotal is one row of the contribution summary.
type ContributionTypeTotal struct {
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
}

// RetirementRepository handles the single-row-per-user plan and its
// contribution aggregates. Contribution CRUD itself rides the generic
// owned repository.
type RetirementRepository interface {
	FindPlan(ctx context.Context, userID uint) (*model.RetirementPlan, error)
	UpsertPlan(ctx context.Context, plan *model.RetirementPlan) error
	SumContributions(ctx context.Context, userID uint) (decimal.Decimal, error)
	SummarizeContributions(ctx context.Context, userID uint) ([]ContributionTypeTotal, error)
}

type retirementRepository struct {
	db *gorm.DB
}

// NewRetirementRepository creates a retirement repository.
func NewRetirementRepository(db *gorm.DB) RetirementRepository {
	return &retirementRepository{db: db}
}

func (r *retirementRepository) FindPlan(ctx context.Context, userID uint) (*model.RetirementPlan, error) {
	var plan model.RetirementPlan
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpsertPlan inserts the plan or overwrites the existing row keyed by
// user_id.
func (r *retirementRepository) UpsertPlan(ctx context.Context, plan *model.RetirementPlan) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"current_age", "retire_age", "current_savings", "retirement_goal",
		}),
	}).Create(plan).Error
}

func (r *retirementRepository) SumContributions(ctx context.Context, userID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.RetirementContribution{}).
		Where("user_id = ?", userID).
		Select("SUM(amount)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *retirementRepository) SummarizeContributions(ctx context.Context, userID uint) ([]ContributionTypeTotal, error) {
	var rows []ContributionTypeTotal
	err := r.db.WithContext(ctx).Model(&model.RetirementContribution{}).
		Where("user_id = ?", userID).
		Select("type, SUM(amount) as total").
		Group("type").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
