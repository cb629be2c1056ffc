package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"trackbudget/internal/model"
)

func TestComputeOutlook(t *testing.T) {
	tests := []struct {
		name            string
		plan            *model.RetirementPlan
		contributed     decimal.Decimal
		wantProgress    float64
		wantRemaining   decimal.Decimal
		wantMonthly     decimal.Decimal
		wantGoalMet     bool
		wantTotalSaved  decimal.Decimal
	}{
		{
			name: "partway to goal",
			plan: &model.RetirementPlan{
				CurrentAge:     30,
				RetireAge:      40,
				CurrentSavings: decimal.NewFromInt(20000),
				RetirementGoal: decimal.NewFromInt(100000),
			},
			contributed:    decimal.NewFromInt(20000),
			wantProgress:   0.4,
			wantRemaining:  decimal.NewFromInt(60000),
			wantMonthly:    decimal.NewFromInt(500), // 60000 / (10 years * 12)
			wantTotalSaved: decimal.NewFromInt(40000),
		},
		{
			name: "goal exceeded clamps progress and remaining",
			plan: &model.RetirementPlan{
				CurrentAge:     50,
				RetireAge:      65,
				CurrentSavings: decimal.NewFromInt(90000),
				RetirementGoal: decimal.NewFromInt(100000),
			},
			contributed:    decimal.NewFromInt(30000),
			wantProgress:   1,
			wantRemaining:  decimal.Zero,
			wantMonthly:    decimal.Zero,
			wantGoalMet:    true,
			wantTotalSaved: decimal.NewFromInt(120000),
		},
		{
			name: "goal hit exactly",
			plan: &model.RetirementPlan{
				CurrentAge:     40,
				RetireAge:      60,
				CurrentSavings: decimal.NewFromInt(100000),
				RetirementGoal: decimal.NewFromInt(100000),
			},
			contributed:    decimal.Zero,
			wantProgress:   1,
			wantRemaining:  decimal.Zero,
			wantMonthly:    decimal.Zero,
			wantGoalMet:    true,
			wantTotalSaved: decimal.NewFromInt(100000),
		},
		{
			name: "zero goal is not goal met",
			plan: &model.RetirementPlan{
				CurrentAge:     30,
				RetireAge:      65,
				CurrentSavings: decimal.Zero,
				RetirementGoal: decimal.Zero,
			},
			contributed:    decimal.Zero,
			wantProgress:   0,
			wantRemaining:  decimal.Zero,
			wantMonthly:    decimal.Zero,
			wantGoalMet:    false,
			wantTotalSaved: decimal.Zero,
		},
		{
			name: "no years left skips monthly math",
			plan: &model.RetirementPlan{
				CurrentAge:     65,
				RetireAge:      65,
				CurrentSavings: decimal.NewFromInt(10000),
				RetirementGoal: decimal.NewFromInt(100000),
			},
			contributed:    decimal.Zero,
			wantProgress:   0.1,
			wantRemaining:  decimal.NewFromInt(90000),
			wantMonthly:    decimal.Zero,
			wantTotalSaved: decimal.NewFromInt(10000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outlook := computeOutlook(tt.plan, tt.contributed)

			assert.InDelta(t, tt.wantProgress, outlook.Progress, 1e-9)
			assert.True(t, outlook.Remaining.Equal(tt.wantRemaining), "remaining = %s", outlook.Remaining)
			assert.True(t, outlook.MonthlyNeeded.Equal(tt.wantMonthly), "monthly_needed = %s", outlook.MonthlyNeeded)
			assert.Equal(t, tt.wantGoalMet, outlook.GoalMet)
			assert.True(t, outlook.TotalSaved.Equal(tt.wantTotalSaved))
		})
	}
}

func TestRetirementService_Outlook_NoPlan(t *testing.T) {
	mockRepo := new(MockRetirementRepository)
	mockRepo.On("FindPlan", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("SumContributions", mock.Anything, uint(1)).Return(decimal.Zero, nil)

	svc := NewRetirementService(mockRepo)
	outlook, err := svc.Outlook(context.Background(), 1)

	assert.NoError(t, err)
	assert.True(t, outlook.RetirementGoal.IsZero())
	assert.True(t, outlook.TotalSaved.IsZero())
	assert.False(t, outlook.GoalMet)
	mockRepo.AssertExpectations(t)
}

func TestRetirementService_SavePlan(t *testing.T) {
	mockRepo := new(MockRetirementRepository)
	mockRepo.On("UpsertPlan", mock.Anything, mock.MatchedBy(func(p *model.RetirementPlan) bool {
		return p.UserID == 3 && p.ID == 0
	})).Return(nil)

	svc := NewRetirementService(mockRepo)
	err := svc.SavePlan(context.Background(), 3, &model.RetirementPlan{
		ID:             42, // stale client-side id must not leak into the upsert
		CurrentAge:     30,
		RetireAge:      65,
		CurrentSavings: decimal.NewFromInt(1000),
		RetirementGoal: decimal.NewFromInt(500000),
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRetirementService_SavePlan_InvalidPlan(t *testing.T) {
	mockRepo := new(MockRetirementRepository)

	svc := NewRetirementService(mockRepo)
	err := svc.SavePlan(context.Background(), 3, &model.RetirementPlan{
		CurrentAge:     30,
		RetireAge:      65,
		CurrentSavings: decimal.NewFromInt(-5),
		RetirementGoal: decimal.NewFromInt(500000),
	})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "UpsertPlan", mock.Anything, mock.Anything)
}
