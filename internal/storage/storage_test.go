package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"mymoney/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustCategory(t *testing.T, s *Store, name string) *core.Category {
	t.Helper()
	c, err := s.CreateCategory(context.Background(), core.NewCategory{Name: name})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	return c
}

func mustExpense(t *testing.T, s *Store, categoryID int64, amount string, date time.Time) *core.Expense {
	t.Helper()
	e, err := s.CreateExpense(context.Background(), core.NewExpense{
		Amount:      decimal.RequireFromString(amount),
		Description: "test",
		Date:        date,
		CategoryID:  categoryID,
	})
	if err != nil {
		t.Fatalf("create expense: %v", err)
	}
	return e
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestScaledIntegerConversions(t *testing.T) {
	tests := []struct {
		in        string
		wantCents int64
	}{
		{"0", 0},
		{"42.50", 4250},
		{"0.01", 1},
		{"1234567.89", 123456789},
		{"19.999", 2000}, // rounds half away from zero
	}
	for _, tt := range tests {
		if got := cents(decimal.RequireFromString(tt.in)); got != tt.wantCents {
			t.Errorf("cents(%s) = %d, want %d", tt.in, got, tt.wantCents)
		}
	}

	// Quantity keeps 8 decimal places exactly.
	q := decimal.RequireFromString("0.00000001")
	if got := fromQuantityUnits(quantityUnits(q)); !got.Equal(q) {
		t.Errorf("quantity round trip = %s, want %s", got, q)
	}
}

func TestMonthFilterBoundaries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cat := mustCategory(t, s, "Misc")

	mustExpense(t, s, cat.ID, "10", day("2025-02-28"))
	mustExpense(t, s, cat.ID, "20", day("2025-03-01"))
	mustExpense(t, s, cat.ID, "30", day("2025-03-31"))
	mustExpense(t, s, cat.ID, "40", day("2025-04-01"))

	total, err := s.MonthExpenseTotal(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("MonthExpenseTotal: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("50")) {
		t.Errorf("march total = %s, want 50", total)
	}

	expenses, err := s.ListExpensesByMonth(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("ListExpensesByMonth: %v", err)
	}
	if len(expenses) != 2 {
		t.Errorf("march expenses = %d, want 2", len(expenses))
	}
}

func TestExpenseSortTieBreak(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cat := mustCategory(t, s, "Misc")

	// Same date; the id must break the tie so pagination stays stable.
	first := mustExpense(t, s, cat.ID, "10", day("2025-03-15"))
	second := mustExpense(t, s, cat.ID, "20", day("2025-03-15"))

	items, _, err := s.ListExpenses(ctx, core.ExpenseFilter{}, core.SortByDate, core.SortAsc, 10, 0)
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Errorf("order = [%d %d], want [%d %d]", items[0].ID, items[1].ID, first.ID, second.ID)
	}
}

func TestExpenseSurvivesCategoryDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cat := mustCategory(t, s, "Doomed")
	exp := mustExpense(t, s, cat.ID, "10", day("2025-03-15"))

	deleted, err := s.DeleteCategory(ctx, cat.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteCategory = (%v, %v)", deleted, err)
	}

	// The expense still reads; the join just comes back empty.
	got, err := s.GetExpense(ctx, exp.ID)
	if err != nil {
		t.Fatalf("GetExpense: %v", err)
	}
	if got == nil {
		t.Fatal("expense gone after category delete")
	}
	if got.Category.ID != 0 {
		t.Errorf("dangling category resolved to %+v", got.Category)
	}
	if got.CategoryID != cat.ID {
		t.Errorf("CategoryID = %d, want %d", got.CategoryID, cat.ID)
	}
}

func TestTopCategoryTotals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	food := mustCategory(t, s, "Food")
	rent := mustCategory(t, s, "Rent")
	mustExpense(t, s, food.ID, "30", day("2025-03-01"))
	mustExpense(t, s, food.ID, "20", day("2025-03-02"))
	mustExpense(t, s, rent.ID, "900", day("2025-03-05"))
	mustExpense(t, s, food.ID, "999", day("2025-04-01")) // other month

	totals, err := s.TopCategoryTotals(ctx, 2025, 3, 5)
	if err != nil {
		t.Fatalf("TopCategoryTotals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("groups = %d, want 2", len(totals))
	}
	if totals[0].Category.Name != "Rent" || !totals[0].Total.Equal(decimal.RequireFromString("900")) {
		t.Errorf("totals[0] = %s %s", totals[0].Category.Name, totals[0].Total)
	}
	if totals[1].Category.Name != "Food" || totals[1].Count != 2 {
		t.Errorf("totals[1] = %s count %d", totals[1].Category.Name, totals[1].Count)
	}
}

func TestUpdateExpenseRefreshesUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cat := mustCategory(t, s, "Misc")
	exp := mustExpense(t, s, cat.ID, "10", day("2025-03-15"))

	time.Sleep(10 * time.Millisecond)

	amount := decimal.RequireFromString("11")
	updated, err := s.UpdateExpense(ctx, exp.ID, core.ExpensePatch{Amount: &amount})
	if err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}
	if !updated.UpdatedAt.After(exp.UpdatedAt) {
		t.Errorf("UpdatedAt not refreshed: %s -> %s", exp.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(exp.CreatedAt) {
		t.Errorf("CreatedAt changed: %s -> %s", exp.CreatedAt, updated.CreatedAt)
	}
}

func TestEmptyPatchReturnsCurrentRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cat := mustCategory(t, s, "Misc")

	got, err := s.UpdateCategory(ctx, cat.ID, core.CategoryPatch{})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if got == nil || got.Name != "Misc" {
		t.Errorf("empty patch result = %+v", got)
	}
}

func TestRecentExpensesOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cat := mustCategory(t, s, "Misc")

	mustExpense(t, s, cat.ID, "10", day("2025-03-01"))
	late := mustExpense(t, s, cat.ID, "20", day("2025-03-20"))
	sameDay := mustExpense(t, s, cat.ID, "30", day("2025-03-20"))

	recent, err := s.RecentExpenses(ctx, 2)
	if err != nil {
		t.Fatalf("RecentExpenses: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d rows", len(recent))
	}
	// Same date resolves by most recently created.
	if recent[0].ID != sameDay.ID || recent[1].ID != late.ID {
		t.Errorf("recent order = [%d %d], want [%d %d]", recent[0].ID, recent[1].ID, sameDay.ID, late.ID)
	}
}
