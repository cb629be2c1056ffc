package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"trackbudget/internal/model"
	"trackbudget/internal/repository"
)

// RetirementOutlook is the derived progress view over the plan and its
// contributions.
type RetirementOutlook struct {
	CurrentAge     int             `json:"current_age"`
	RetireAge      int             `json:"retire_age"`
	CurrentSavings decimal.Decimal `json:"current_savings"`
	RetirementGoal decimal.Decimal `json:"retirement_goal"`
	TotalSaved     decimal.Decimal `json:"total_saved"`
	Progress       float64         `json:"progress"`
	Remaining      decimal.Decimal `json:"remaining"`
	MonthlyNeeded  decimal.Decimal `json:"monthly_needed"`
	GoalMet        bool            `json:"goal_met"`
}

// RetirementService owns the per-user plan and its progress math.
type RetirementService interface {
	Outlook(ctx context.Context, userID uint) (*RetirementOutlook, error)
	SavePlan(ctx context.Context, userID uint, plan *model.RetirementPlan) error
	ContributionSummary(ctx context.Context, userID uint) ([]repository.ContributionTypeTotal, error)
}

type retirementService struct {
	repo repository.RetirementRepository
}

// NewRetirementService creates a new retirement service.
func NewRetirementService(repo repository.RetirementRepository) RetirementService {
	return &retirementService{repo: repo}
}

// Outlook computes progress toward the retirement goal. A user without
// a plan gets the zero-valued outlook rather than an error.
func (s *retirementService) Outlook(ctx context.Context, userID uint) (*RetirementOutlook, error) {
	plan, err := s.repo.FindPlan(ctx, userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("find plan: %w", err)
		}
		plan = &model.RetirementPlan{
			CurrentSavings: decimal.Zero,
			RetirementGoal: decimal.Zero,
		}
	}

	contributed, err := s.repo.SumContributions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum contributions: %w", err)
	}
	return computeOutlook(plan, contributed), nil
}

// SavePlan upserts the single plan row for the user.
func (s *retirementService) SavePlan(ctx context.Context, userID uint, plan *model.RetirementPlan) error {
	plan.ID = 0
	plan.UserID = userID
	if err := plan.Validate(); err != nil {
		return err
	}
	return s.repo.UpsertPlan(ctx, plan)
}

func (s *retirementService) ContributionSummary(ctx context.Context, userID uint) ([]repository.ContributionTypeTotal, error) {
	return s.repo.SummarizeContributions(ctx, userID)
}

// computeOutlook derives the progress view.
//
// Progress is clamped to [0, 1]: exceeding the goal reads as 100%, not
// more. Remaining is clamped to zero. GoalMet distinguishes "remaining
// is zero because the goal is reached" from the degenerate zero-goal
// plan, where nothing meaningful can be computed.
func computeOutlook(plan *model.RetirementPlan, contributed decimal.Decimal) *RetirementOutlook {
	totalSaved := plan.CurrentSavings.Add(contributed)
	goal := plan.RetirementGoal

	remaining := goal.Sub(totalSaved)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	progress := 0.0
	if goal.IsPositive() {
		progress, _ = totalSaved.Div(goal).Float64()
		if progress > 1 {
			progress = 1
		}
		if progress < 0 {
			progress = 0
		}
	}

	goalMet := goal.IsPositive() && remaining.IsZero()

	monthlyNeeded := decimal.Zero
	yearsLeft := plan.RetireAge - plan.CurrentAge
	if !goalMet && remaining.IsPositive() && yearsLeft > 0 {
		monthlyNeeded = remaining.Div(decimal.NewFromInt(int64(yearsLeft) * 12)).Round(2)
	}

	return &RetirementOutlook{
		CurrentAge:     plan.CurrentAge,
		RetireAge:      plan.RetireAge,
		CurrentSavings: plan.CurrentSavings,
		RetirementGoal: goal,
		TotalSaved:     totalSaved,
		Progress:       progress,
		Remaining:      remaining,
		MonthlyNeeded:  monthlyNeeded,
		GoalMet:        goalMet,
	}
}
