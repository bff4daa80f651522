package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"mymoney/internal/core"
	"mymoney/internal/storage"
)

type testEnv struct {
	store       *storage.Store
	categories  *CategoryService
	expenses    *ExpenseService
	incomes     *IncomeService
	investments *InvestmentService
	settings    *SettingsService
	dashboard   *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	env := &testEnv{
		store:       store,
		categories:  NewCategoryService(store),
		expenses:    NewExpenseService(store),
		incomes:     NewIncomeService(store),
		investments: NewInvestmentService(store),
		settings:    NewSettingsService(store),
	}
	env.dashboard = NewDashboardService(env.expenses, env.incomes, env.investments)
	return env
}

func (e *testEnv) mustCategory(t *testing.T, name string) *core.Category {
	t.Helper()
	c, err := e.categories.Create(context.Background(), core.NewCategory{Name: name})
	if err != nil {
		t.Fatalf("create category %q: %v", name, err)
	}
	return c
}

func (e *testEnv) mustExpense(t *testing.T, categoryID int64, amount string, date time.Time) *core.Expense {
	t.Helper()
	exp, err := e.expenses.Create(context.Background(), core.NewExpense{
		Amount:      dec(amount),
		Description: "test expense",
		Date:        date,
		CategoryID:  categoryID,
	})
	if err != nil {
		t.Fatalf("create expense: %v", err)
	}
	return exp
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string        { return &s }
func boolPtr(b bool) *bool           { return &b }
func timePtr(t time.Time) *time.Time { return &t }
func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
