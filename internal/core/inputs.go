package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Create inputs carry validate tags checked by the services layer. Patch
// types hold one pointer per mutable column; a nil pointer means "leave
// unchanged", so partial updates never clobber fields the caller omitted.

type NewCategory struct {
	Name  string  `validate:"required,max=100"`
	Color string  `validate:"omitempty,hexcolor"`
	Icon  *string `validate:"omitempty,max=50"`
}

type CategoryPatch struct {
	Name  *string
	Color *string
	Icon  *string
}

type NewExpense struct {
	Amount         decimal.Decimal
	Description    string `validate:"required,max=255"`
	Notes          *string
	Date           time.Time
	CategoryID     int64 `validate:"required"`
	IsRecurring    bool
	RecurrenceRule *RecurrenceRule
}

type ExpensePatch struct {
	Amount         *decimal.Decimal
	Description    *string
	Notes          *string
	Date           *time.Time
	CategoryID     *int64
	IsRecurring    *bool
	RecurrenceRule *RecurrenceRule
}

// ExpenseFilter narrows an expense listing. All fields are optional and
// AND-combined. Search matches description or notes, case-insensitively.
type ExpenseFilter struct {
	CategoryID  *int64
	StartDate   *time.Time
	EndDate     *time.Time
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
	IsRecurring *bool
	IsPaid      *bool
	Search      *string
}

type ExpenseSortField string

const (
	SortByDate   ExpenseSortField = "date"
	SortByAmount ExpenseSortField = "amount"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type NewIncome struct {
	Name       string `validate:"required,max=100"`
	Amount     decimal.Decimal
	IncomeType IncomeType `validate:"required"`
	IsActive   bool
	StartDate  *time.Time
	Notes      *string
	Currency   string `validate:"omitempty,len=3"`
	IsGross    bool
	TaxRate    *decimal.Decimal
	OtherFees  *decimal.Decimal
}

type IncomePatch struct {
	Name       *string
	Amount     *decimal.Decimal
	IncomeType *IncomeType
	IsActive   *bool
	StartDate  *time.Time
	Notes      *string
	Currency   *string
	IsGross    *bool
	TaxRate    *decimal.Decimal
	OtherFees  *decimal.Decimal
}

type NewPortfolio struct {
	Name        string `validate:"required,max=100"`
	Description *string
}

type PortfolioPatch struct {
	Name        *string
	Description *string
}

type NewAsset struct {
	PortfolioID   int64     `validate:"required"`
	Symbol        string    `validate:"required,max=20"`
	Name          string    `validate:"required,max=200"`
	AssetType     AssetType `validate:"required"`
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
	CurrentPrice  *decimal.Decimal
	Currency      string `validate:"omitempty,len=3"`
	Notes         *string
}

type AssetPatch struct {
	Symbol        *string
	Name          *string
	AssetType     *AssetType
	Quantity      *decimal.Decimal
	PurchasePrice *decimal.Decimal
	PurchaseDate  *time.Time
	CurrentPrice  *decimal.Decimal
	Currency      *string
	Notes         *string
}

type SettingsPatch struct {
	MainCurrency *string
	Language     *string
}
