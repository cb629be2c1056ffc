package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"trackbudget/internal/errors"
)

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-01-31"))
	assert.False(t, ValidDate("2025-02-30"))
	assert.False(t, ValidDate("01/31/2025"))
	assert.False(t, ValidDate("2025-1-3"))
	assert.False(t, ValidDate(""))
}

func TestExpenseValidate(t *testing.T) {
	valid := Expense{Name: "Rent", Amount: decimal.NewFromInt(1200), Date: "2025-01-01", WantOrNeed: TagNeed}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	assert.ErrorIs(t, noName.Validate(), errors.ErrEmptyName)

	negative := valid
	negative.Amount = decimal.NewFromInt(-5)
	assert.ErrorIs(t, negative.Validate(), errors.ErrInvalidAmount)

	badDate := valid
	badDate.Date = "January 1st"
	assert.ErrorIs(t, badDate.Validate(), errors.ErrInvalidDate)
}

func TestSavingsBucketValidate_AllowsNegativeBalance(t *testing.T) {
	// Withdrawals can drive a bucket below zero; only the target is
	// constrained.
	b := SavingsBucket{
		Name:          "Vacation",
		TargetAmount:  decimal.NewFromInt(3000),
		CurrentAmount: decimal.NewFromInt(-50),
	}
	assert.NoError(t, b.Validate())

	b.TargetAmount = decimal.NewFromInt(-1)
	assert.ErrorIs(t, b.Validate(), errors.ErrInvalidAmount)
}

func TestRetirementPlanValidate(t *testing.T) {
	p := RetirementPlan{
		CurrentAge:     30,
		RetireAge:      65,
		CurrentSavings: decimal.NewFromInt(1000),
		RetirementGoal: decimal.NewFromInt(500000),
	}
	assert.NoError(t, p.Validate())

	p.CurrentSavings = decimal.NewFromInt(-1)
	assert.ErrorIs(t, p.Validate(), errors.ErrInvalidAmount)
}
