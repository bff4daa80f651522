package graph

import (
	"time"

	"github.com/shopspring/decimal"

	"mymoney/internal/core"
	"mymoney/internal/services"
)

// Wire models mirror the core entities with json tags matching the schema's
// field names, so the default resolver can pick fields up by tag. Derived
// figures (net amounts, valuations) are computed here once per conversion.

type categoryModel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      *string   `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCategoryModel(c core.Category) categoryModel {
	return categoryModel{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt,
	}
}

type expenseModel struct {
	ID             int64                `json:"id"`
	Amount         decimal.Decimal      `json:"amount"`
	Description    string               `json:"description"`
	Notes          *string              `json:"notes"`
	Date           time.Time            `json:"date"`
	CategoryID     int64                `json:"categoryId"`
	Category       *categoryModel       `json:"category"`
	IsRecurring    bool                 `json:"isRecurring"`
	RecurrenceRule *core.RecurrenceRule `json:"recurrenceRule"`
	IsPaid         bool                 `json:"isPaid"`
	PaidAt         *time.Time           `json:"paidAt"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func newExpenseModel(e core.Expense) expenseModel {
	m := expenseModel{
		ID:             e.ID,
		Amount:         e.Amount,
		Description:    e.Description,
		Notes:          e.Notes,
		Date:           e.Date,
		CategoryID:     e.CategoryID,
		IsRecurring:    e.IsRecurring,
		RecurrenceRule: e.RecurrenceRule,
		IsPaid:         e.IsPaid,
		PaidAt:         e.PaidAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	// A dangling category reference leaves the join empty.
	if e.Category.ID != 0 {
		c := newCategoryModel(e.Category)
		m.Category = &c
	}
	return m
}

func newExpenseModels(expenses []core.Expense) []expenseModel {
	out := make([]expenseModel, len(expenses))
	for i, e := range expenses {
		out[i] = newExpenseModel(e)
	}
	return out
}

type expensePage struct {
	Items      []expenseModel `json:"items"`
	TotalCount int            `json:"totalCount"`
	HasMore    bool           `json:"hasMore"`
}

type expenseSummaryModel struct {
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	UnpaidAmount decimal.Decimal `json:"unpaidAmount"`
	TotalCount   int             `json:"totalCount"`
	PaidCount    int             `json:"paidCount"`
	UnpaidCount  int             `json:"unpaidCount"`
}

type incomeModel struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Amount     decimal.Decimal  `json:"amount"`
	NetAmount  decimal.Decimal  `json:"netAmount"`
	IncomeType core.IncomeType  `json:"incomeType"`
	IsActive   bool             `json:"isActive"`
	StartDate  *time.Time       `json:"startDate"`
	Notes      *string          `json:"notes"`
	Currency   string           `json:"currency"`
	IsGross    bool             `json:"isGross"`
	TaxRate    *decimal.Decimal `json:"taxRate"`
	OtherFees  *decimal.Decimal `json:"otherFees"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func newIncomeModel(i core.Income) incomeModel {
	return incomeModel{
		ID:         i.ID,
		Name:       i.Name,
		Amount:     i.Amount,
		NetAmount:  i.NetAmount(),
		IncomeType: i.IncomeType,
		IsActive:   i.IsActive,
		StartDate:  i.StartDate,
		Notes:      i.Notes,
		Currency:   i.Currency,
		IsGross:    i.IsGross,
		TaxRate:    i.TaxRate,
		OtherFees:  i.OtherFees,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

type incomePage struct {
	Items      []incomeModel `json:"items"`
	TotalCount int           `json:"totalCount"`
	HasMore    bool          `json:"hasMore"`
}

type assetModel struct {
	ID              int64            `json:"id"`
	PortfolioID     int64            `json:"portfolioId"`
	Symbol          string           `json:"symbol"`
	Name            string           `json:"name"`
	AssetType       core.AssetType   `json:"assetType"`
	Quantity        decimal.Decimal  `json:"quantity"`
	PurchasePrice   decimal.Decimal  `json:"purchasePrice"`
	PurchaseDate    time.Time        `json:"purchaseDate"`
	CurrentPrice    *decimal.Decimal `json:"currentPrice"`
	Currency        string           `json:"currency"`
	Notes           *string          `json:"notes"`
	TotalCost       decimal.Decimal  `json:"totalCost"`
	CurrentValue    *decimal.Decimal `json:"currentValue"`
	GainLoss        *decimal.Decimal `json:"gainLoss"`
	GainLossPercent *decimal.Decimal `json:"gainLossPercent"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func newAssetModel(a core.Asset) assetModel {
	return assetModel{
		ID:              a.ID,
		PortfolioID:     a.PortfolioID,
		Symbol:          a.Symbol,
		Name:            a.Name,
		AssetType:       a.AssetType,
		Quantity:        a.Quantity,
		PurchasePrice:   a.PurchasePrice,
		PurchaseDate:    a.PurchaseDate,
		CurrentPrice:    a.CurrentPrice,
		Currency:        a.Currency,
		Notes:           a.Notes,
		TotalCost:       core.AssetTotalCost(a),
		CurrentValue:    core.AssetCurrentValue(a),
		GainLoss:        core.AssetGainLoss(a),
		GainLossPercent: core.AssetGainLossPercent(a),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

type portfolioModel struct {
	ID                   int64            `json:"id"`
	Name                 string           `json:"name"`
	Description          *string          `json:"description"`
	Assets               []assetModel     `json:"assets"`
	TotalValue           decimal.Decimal  `json:"totalValue"`
	TotalCost            decimal.Decimal  `json:"totalCost"`
	TotalGainLoss        decimal.Decimal  `json:"totalGainLoss"`
	TotalGainLossPercent decimal.Decimal  `json:"totalGainLossPercent"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

func newPortfolioModel(p core.Portfolio) portfolioModel {
	totals := core.ComputePortfolioTotals(p)
	m := portfolioModel{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		Assets:               make([]assetModel, len(p.Assets)),
		TotalValue:           totals.TotalValue,
		TotalCost:            totals.TotalCost,
		TotalGainLoss:        totals.TotalGainLoss,
		TotalGainLossPercent: totals.TotalGainLossPercent,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
	for i, a := range p.Assets {
		m.Assets[i] = newAssetModel(a)
	}
	return m
}

type settingsModel struct {
	ID           int64     `json:"id"`
	MainCurrency string    `json:"mainCurrency"`
	Language     string    `json:"language"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newSettingsModel(s core.UserSettings) settingsModel {
	return settingsModel{
		ID:           s.ID,
		MainCurrency: s.MainCurrency,
		Language:     s.Language,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

type currencyModel struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type languageModel struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

type categorySummaryModel struct {
	Category         categoryModel   `json:"category"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Percentage       decimal.Decimal `json:"percentage"`
	TransactionCount int             `json:"transactionCount"`
}

type allocationModel struct {
	AssetType  core.AssetType  `json:"assetType"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Percentage decimal.Decimal `json:"percentage"`
}

type monthlyExpenseModel struct {
	Month       string          `json:"month"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type dashboardModel struct {
	TotalExpensesThisMonth decimal.Decimal        `json:"totalExpensesThisMonth"`
	TotalExpensesLastMonth decimal.Decimal        `json:"totalExpensesLastMonth"`
	ExpenseChangePercent   *decimal.Decimal       `json:"expenseChangePercent"`
	TotalPortfolioValue    decimal.Decimal        `json:"totalPortfolioValue"`
	TotalPortfolioCost     decimal.Decimal        `json:"totalPortfolioCost"`
	NetWorth               decimal.Decimal        `json:"netWorth"`
	TotalMonthlyIncome     decimal.Decimal        `json:"totalMonthlyIncome"`
	IncomeStreamsCount     int                    `json:"incomeStreamsCount"`
	TopCategories          []categorySummaryModel `json:"topCategories"`
	RecentExpenses         []expenseModel         `json:"recentExpenses"`
	PortfolioAllocation    []allocationModel      `json:"portfolioAllocation"`
	MonthlyExpenseTrend    []monthlyExpenseModel  `json:"monthlyExpenseTrend"`
}

func newDashboardModel(d services.DashboardSummary) dashboardModel {
	m := dashboardModel{
		TotalExpensesThisMonth: d.TotalExpensesThisMonth,
		TotalExpensesLastMonth: d.TotalExpensesLastMonth,
		ExpenseChangePercent:   d.ExpenseChangePercent,
		TotalPortfolioValue:    d.TotalPortfolioValue,
		TotalPortfolioCost:     d.TotalPortfolioCost,
		NetWorth:               d.NetWorth,
		TotalMonthlyIncome:     d.TotalMonthlyIncome,
		IncomeStreamsCount:     d.IncomeStreamsCount,
		TopCategories:          make([]categorySummaryModel, len(d.TopCategories)),
		RecentExpenses:         newExpenseModels(d.RecentExpenses),
		PortfolioAllocation:    make([]allocationModel, len(d.PortfolioAllocation)),
		MonthlyExpenseTrend:    make([]monthlyExpenseModel, len(d.MonthlyExpenseTrend)),
	}
	for i, t := range d.TopCategories {
		m.TopCategories[i] = categorySummaryModel{
			Category:         newCategoryModel(t.Category),
			TotalAmount:      t.TotalAmount,
			Percentage:       t.Percentage,
			TransactionCount: t.TransactionCount,
		}
	}
	for i, a := range d.PortfolioAllocation {
		m.PortfolioAllocation[i] = allocationModel{
			AssetType:  a.AssetType,
			TotalValue: a.TotalValue,
			Percentage: a.Percentage,
		}
	}
	for i, t := range d.MonthlyExpenseTrend {
		m.MonthlyExpenseTrend[i] = monthlyExpenseModel{Month: t.Month, TotalAmount: t.TotalAmount}
	}
	return m
}
