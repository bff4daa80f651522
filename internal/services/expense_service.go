package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"mymoney/internal/core"
	"mymoney/internal/storage"
)

const DefaultExpensePageSize = 20

type ExpenseService struct {
	store *storage.Store
}

func NewExpenseService(store *storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// ExpenseSummary partitions one month's expenses by payment status.
type ExpenseSummary struct {
	TotalAmount  decimal.Decimal
	PaidAmount   decimal.Decimal
	UnpaidAmount decimal.Decimal
	TotalCount   int
	PaidCount    int
	UnpaidCount  int
}

// List returns one page of matching expenses, the pre-pagination match
// count, and whether more pages follow.
func (s *ExpenseService) List(ctx context.Context, f core.ExpenseFilter, sortBy core.ExpenseSortField, dir core.SortDirection, limit, offset int) ([]core.Expense, int, bool, error) {
	if limit <= 0 {
		limit = DefaultExpensePageSize
	}
	if offset < 0 {
		offset = 0
	}
	items, total, err := s.store.ListExpenses(ctx, f, sortBy, dir, limit, offset)
	if err != nil {
		return nil, 0, false, err
	}
	return items, total, (offset + limit) < total, nil
}

func (s *ExpenseService) Get(ctx context.Context, id int64) (*core.Expense, error) {
	return s.store.GetExpense(ctx, id)
}

func (s *ExpenseService) Create(ctx context.Context, in core.NewExpense) (*core.Expense, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	e, err := s.store.CreateExpense(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	slog.InfoContext(ctx, "Expense created",
		"id", e.ID, "description", e.Description, "amount", e.Amount.String())
	return e, nil
}

func (s *ExpenseService) Update(ctx context.Context, id int64, patch core.ExpensePatch) (*core.Expense, error) {
	return s.store.UpdateExpense(ctx, id, patch)
}

func (s *ExpenseService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeleteExpense(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		slog.InfoContext(ctx, "Expense deleted", "id", id)
	}
	return deleted, nil
}

func (s *ExpenseService) MarkPaid(ctx context.Context, id int64, paid bool) (*core.Expense, error) {
	e, err := s.store.MarkExpensePaid(ctx, id, paid)
	if err != nil {
		return nil, err
	}
	if e != nil {
		slog.InfoContext(ctx, "Expense payment updated", "id", id, "paid", paid)
	}
	return e, nil
}

// Summary totals the month's expenses split by paid flag; month and year
// default to the current calendar month. The split is computed by summation
// over one load, not by separate queries.
func (s *ExpenseService) Summary(ctx context.Context, month, year *int) (*ExpenseSummary, error) {
	today := time.Now().UTC()
	m := int(today.Month())
	y := today.Year()
	if month != nil {
		m = *month
	}
	if year != nil {
		y = *year
	}

	expenses, err := s.store.ListExpensesByMonth(ctx, y, m)
	if err != nil {
		return nil, err
	}

	sum := &ExpenseSummary{TotalCount: len(expenses)}
	for _, e := range expenses {
		sum.TotalAmount = sum.TotalAmount.Add(e.Amount)
		if e.IsPaid {
			sum.PaidAmount = sum.PaidAmount.Add(e.Amount)
			sum.PaidCount++
		}
	}
	sum.UnpaidAmount = sum.TotalAmount.Sub(sum.PaidAmount)
	sum.UnpaidCount = sum.TotalCount - sum.PaidCount
	return sum, nil
}

// MonthTotal sums expense amounts for one calendar month.
func (s *ExpenseService) MonthTotal(ctx context.Context, year, month int) (decimal.Decimal, error) {
	return s.store.MonthExpenseTotal(ctx, year, month)
}

// TopCategories returns the month's largest category groups.
func (s *ExpenseService) TopCategories(ctx context.Context, year, month, limit int) ([]storage.CategoryTotal, error) {
	return s.store.TopCategoryTotals(ctx, year, month, limit)
}

// Recent returns the latest expenses across all months.
func (s *ExpenseService) Recent(ctx context.Context, limit int) ([]core.Expense, error) {
	return s.store.RecentExpenses(ctx, limit)
}
