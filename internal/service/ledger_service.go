package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"trackbudget/internal/model"
	"trackbudget/internal/repository"
)

// historyLimit bounds the merged transaction history response.
const historyLimit = 100

// notificationWindowDays is the inclusive look-ahead for bill reminders.
const notificationWindowDays = 7

// DashboardSummary holds the independent per-entity totals shown on the
// dashboard.
type DashboardSummary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalAssets   decimal.Decimal `json:"total_assets"`
}

// CategoryTotal is one group of the want/need expense breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// HistoryEntry is one row of the merged expense/income history.
type HistoryEntry struct {
	TransactionType string          `json:"transaction_type"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
}

// LedgerService computes derived read-only views over the caller's rows.
type LedgerService interface {
	Dashboard(ctx context.Context, userID uint) (*DashboardSummary, error)
	ExpenseBreakdown(ctx context.Context, userID uint) ([]CategoryTotal, error)
	History(ctx context.Context, userID uint) ([]HistoryEntry, error)
	UpcomingBills(ctx context.Context, userID uint) ([]model.Bill, error)
}

type ledgerService struct {
	expenses repository.OwnedRepository[model.Expense]
	income   repository.OwnedRepository[model.Income]
	assets   repository.OwnedRepository[model.Asset]
	bills    repository.BillRepository
	now      func() time.Time
}

// NewLedgerService creates the aggregation service.
func NewLedgerService(
	expenses repository.OwnedRepository[model.Expense],
	income repository.OwnedRepository[model.Income],
	assets repository.OwnedRepository[model.Asset],
	bills repository.BillRepository,
) LedgerService {
	return &ledgerService{
		expenses: expenses,
		income:   income,
		assets:   assets,
		bills:    bills,
		now:      time.Now,
	}
}

func (s *ledgerService) Dashboard(ctx context.Context, userID uint) (*DashboardSummary, error) {
	expenses, err := s.expenses.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	income, err := s.income.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list income: %w", err)
	}
	assets, err := s.assets.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	summary := &DashboardSummary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalAssets:   decimal.Zero,
	}
	for _, e := range expenses {
		summary.TotalExpenses = summary.TotalExpenses.Add(e.Amount)
	}
	for _, i := range income {
		summary.TotalIncome = summary.TotalIncome.Add(i.Amount)
	}
	for _, a := range assets {
		summary.TotalAssets = summary.TotalAssets.Add(a.Worth)
	}
	return summary, nil
}

func (s *ledgerService) ExpenseBreakdown(ctx context.Context, userID uint) ([]CategoryTotal, error) {
	expenses, err := s.expenses.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return breakdownByTag(expenses), nil
}

func (s *ledgerService) History(ctx context.Context, userID uint) ([]HistoryEntry, error) {
	expenses, err := s.expenses.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	income, err := s.income.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list income: %w", err)
	}
	return mergeHistory(expenses, income), nil
}

// UpcomingBills returns unpaid bills due within the notification window
// starting today. "Today" is the server's local calendar date at query
// time.
func (s *ledgerService) UpcomingBills(ctx context.Context, userID uint) ([]model.Bill, error) {
	bills, err := s.bills.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	return upcomingBills(bills, s.now()), nil
}

// breakdownByTag groups expenses by their want/need tag, summing per
// group. Untagged rows fall into "Other". Groups are ordered by total
// descending.
func breakdownByTag(expenses []model.Expense) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		tag := e.WantOrNeed
		if tag == "" {
			tag = "Other"
		}
		totals[tag] = totals[tag].Add(e.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for tag, total := range totals {
		out = append(out, CategoryTotal{Category: tag, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// mergeHistory unions expenses and income tagged with their kind,
// ordered by date descending and capped at historyLimit rows.
func mergeHistory(expenses []model.Expense, income []model.Income) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(expenses)+len(income))
	for _, e := range expenses {
		entries = append(entries, HistoryEntry{
			TransactionType: "expense",
			Name:            e.Name,
			Amount:          e.Amount,
			Date:            e.Date,
		})
	}
	for _, i := range income {
		entries = append(entries, HistoryEntry{
			TransactionType: "income",
			Name:            i.Name,
			Amount:          i.Amount,
			Date:            i.Date,
		})
	}

	// ISO dates compare correctly as strings.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	if len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}
	return entries
}

// upcomingBills filters to unpaid bills due within
// [today, today+notificationWindowDays], ordered by due date ascending.
func upcomingBills(bills []model.Bill, today time.Time) []model.Bill {
	from := today.Format(model.DateLayout)
	to := today.AddDate(0, 0, notificationWindowDays).Format(model.DateLayout)

	due := make([]model.Bill, 0)
	for _, b := range bills {
		if b.IsPaid {
			continue
		}
		if b.DueDate >= from && b.DueDate <= to {
			due = append(due, b)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueDate < due[j].DueDate
	})
	return due
}
