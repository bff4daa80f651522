package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"mymoney/internal/core"
)

const (
	topCategoryLimit   = 5
	recentExpenseLimit = 5
	trendMonths        = 6
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// DashboardService composes the expense, income, and investment services
// into one cross-cutting summary. It owns no state and only reads.
type DashboardService struct {
	expenses    *ExpenseService
	incomes     *IncomeService
	investments *InvestmentService
}

func NewDashboardService(expenses *ExpenseService, incomes *IncomeService, investments *InvestmentService) *DashboardService {
	return &DashboardService{
		expenses:    expenses,
		incomes:     incomes,
		investments: investments,
	}
}

type CategorySummary struct {
	Category         core.Category
	TotalAmount      decimal.Decimal
	Percentage       decimal.Decimal
	TransactionCount int
}

type AllocationSlice struct {
	AssetType  core.AssetType
	TotalValue decimal.Decimal
	Percentage decimal.Decimal
}

type MonthlyExpense struct {
	Month       string // YYYY-MM
	TotalAmount decimal.Decimal
}

type DashboardSummary struct {
	TotalExpensesThisMonth decimal.Decimal
	TotalExpensesLastMonth decimal.Decimal
	ExpenseChangePercent   *decimal.Decimal
	TotalPortfolioValue    decimal.Decimal
	TotalPortfolioCost     decimal.Decimal
	NetWorth               decimal.Decimal
	TotalMonthlyIncome     decimal.Decimal
	IncomeStreamsCount     int
	TopCategories          []CategorySummary
	RecentExpenses         []core.Expense
	PortfolioAllocation    []AllocationSlice
	MonthlyExpenseTrend    []MonthlyExpense
}

// Summary builds the dashboard for the given YYYY-MM month, defaulting to
// the current calendar month.
func (s *DashboardService) Summary(ctx context.Context, month *string) (*DashboardSummary, error) {
	year, mon, err := resolveMonth(month)
	if err != nil {
		return nil, err
	}
	prevYear, prevMon := previousMonth(year, mon)

	out := &DashboardSummary{}

	if out.TotalExpensesThisMonth, err = s.expenses.MonthTotal(ctx, year, mon); err != nil {
		return nil, err
	}
	if out.TotalExpensesLastMonth, err = s.expenses.MonthTotal(ctx, prevYear, prevMon); err != nil {
		return nil, err
	}
	if out.TotalExpensesLastMonth.IsPositive() {
		change := out.TotalExpensesThisMonth.Sub(out.TotalExpensesLastMonth).
			Div(out.TotalExpensesLastMonth).Mul(hundred)
		out.ExpenseChangePercent = &change
	}

	portfolios, err := s.investments.ListPortfolios(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range portfolios {
		totals := core.ComputePortfolioTotals(p)
		out.TotalPortfolioValue = out.TotalPortfolioValue.Add(totals.TotalValue)
		out.TotalPortfolioCost = out.TotalPortfolioCost.Add(totals.TotalCost)
	}
	// Net worth deliberately ignores cash flow; it is the portfolio value.
	out.NetWorth = out.TotalPortfolioValue

	if out.TopCategories, err = s.topCategories(ctx, year, mon); err != nil {
		return nil, err
	}
	if out.RecentExpenses, err = s.expenses.Recent(ctx, recentExpenseLimit); err != nil {
		return nil, err
	}
	if out.PortfolioAllocation, err = s.portfolioAllocation(ctx); err != nil {
		return nil, err
	}
	if out.MonthlyExpenseTrend, err = s.monthlyTrend(ctx, year, mon); err != nil {
		return nil, err
	}
	if out.TotalMonthlyIncome, err = s.incomes.TotalMonthlyIncome(ctx); err != nil {
		return nil, err
	}
	if out.IncomeStreamsCount, err = s.incomes.ActiveCount(ctx); err != nil {
		return nil, err
	}

	return out, nil
}

// topCategories keeps the month's five largest category groups. Percentages
// are relative to the subtotal of the kept groups, not the whole month.
func (s *DashboardService) topCategories(ctx context.Context, year, month int) ([]CategorySummary, error) {
	totals, err := s.expenses.TopCategories(ctx, year, month, topCategoryLimit)
	if err != nil {
		return nil, err
	}

	grandTotal := decimal.Zero
	for _, t := range totals {
		grandTotal = grandTotal.Add(t.Total)
	}
	if grandTotal.IsZero() {
		grandTotal = one
	}

	out := make([]CategorySummary, 0, len(totals))
	for _, t := range totals {
		out = append(out, CategorySummary{
			Category:         t.Category,
			TotalAmount:      t.Total,
			Percentage:       t.Total.Div(grandTotal).Mul(hundred),
			TransactionCount: t.Count,
		})
	}
	return out, nil
}

// portfolioAllocation groups every asset by type, valuing unpriced assets at
// cost. Percentages are against the total across all groups.
func (s *DashboardService) portfolioAllocation(ctx context.Context) ([]AllocationSlice, error) {
	assets, err := s.investments.ListAssets(ctx)
	if err != nil {
		return nil, err
	}

	byType := map[core.AssetType]decimal.Decimal{}
	for _, a := range assets {
		value := core.AssetTotalCost(a)
		if cv := core.AssetCurrentValue(a); cv != nil {
			value = *cv
		}
		byType[a.AssetType] = byType[a.AssetType].Add(value)
	}

	total := decimal.Zero
	for _, v := range byType {
		total = total.Add(v)
	}
	if total.IsZero() {
		total = one
	}

	out := make([]AllocationSlice, 0, len(byType))
	for t, v := range byType {
		out = append(out, AllocationSlice{
			AssetType:  t,
			TotalValue: v,
			Percentage: v.Div(total).Mul(hundred),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalValue.Equal(out[j].TotalValue) {
			return out[i].TotalValue.GreaterThan(out[j].TotalValue)
		}
		return out[i].AssetType < out[j].AssetType
	})
	return out, nil
}

// monthlyTrend returns six consecutive month totals ending at the target
// month, oldest first. Months without expenses report zero.
func (s *DashboardService) monthlyTrend(ctx context.Context, year, month int) ([]MonthlyExpense, error) {
	out := make([]MonthlyExpense, trendMonths)
	y, m := year, month
	for i := trendMonths - 1; i >= 0; i-- {
		total, err := s.expenses.MonthTotal(ctx, y, m)
		if err != nil {
			return nil, err
		}
		out[i] = MonthlyExpense{
			Month:       fmt.Sprintf("%04d-%02d", y, m),
			TotalAmount: total,
		}
		y, m = previousMonth(y, m)
	}
	return out, nil
}

func resolveMonth(month *string) (int, int, error) {
	if month == nil || *month == "" {
		today := time.Now().UTC()
		return today.Year(), int(today.Month()), nil
	}
	t, err := time.Parse("2006-01", *month)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid month %q, expected YYYY-MM", core.ErrValidation, *month)
	}
	return t.Year(), int(t.Month()), nil
}

func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}
