// Package core holds the domain entities and the derived arithmetic over
// them. All monetary and quantity values are decimal.Decimal; derived values
// (net amounts, valuations, percentages) are computed on demand and never
// stored on the entity.
package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#6B7280"

var (
	ErrValidation = errors.New("validation failed")
)

type RecurrenceRule string

const (
	RecurrenceDaily     RecurrenceRule = "daily"
	RecurrenceWeekly    RecurrenceRule = "weekly"
	RecurrenceBiweekly  RecurrenceRule = "biweekly"
	RecurrenceMonthly   RecurrenceRule = "monthly"
	RecurrenceQuarterly RecurrenceRule = "quarterly"
	RecurrenceYearly    RecurrenceRule = "yearly"
)

type IncomeType string

const (
	IncomeSalary      IncomeType = "salary"
	IncomeFreelance   IncomeType = "freelance"
	IncomeInvestments IncomeType = "investments"
	IncomeRental      IncomeType = "rental"
	IncomeBusiness    IncomeType = "business"
	IncomeOther       IncomeType = "other"
)

type AssetType string

const (
	AssetStock  AssetType = "stock"
	AssetCrypto AssetType = "crypto"
	AssetFund   AssetType = "fund"
	AssetETF    AssetType = "etf"
	AssetBond   AssetType = "bond"
	AssetFII    AssetType = "fii"
	AssetOther  AssetType = "other"
)

type Category struct {
	ID        int64
	Name      string
	Color     string
	Icon      *string
	CreatedAt time.Time
}

type Expense struct {
	ID             int64
	Amount         decimal.Decimal
	Description    string
	Notes          *string
	Date           time.Time // day precision
	CategoryID     int64
	Category       Category
	IsRecurring    bool
	RecurrenceRule *RecurrenceRule
	IsPaid         bool
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Income struct {
	ID         int64
	Name       string
	Amount     decimal.Decimal
	IncomeType IncomeType
	IsActive   bool
	StartDate  *time.Time
	Notes      *string
	Currency   string
	IsGross    bool
	TaxRate    *decimal.Decimal // percent
	OtherFees  *decimal.Decimal // fixed amount
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NetAmount is the income after tax and fee deductions, floored at zero.
// Non-gross incomes are already net.
func (i Income) NetAmount() decimal.Decimal {
	if !i.IsGross {
		return i.Amount
	}
	net := i.Amount
	if i.TaxRate != nil {
		tax := i.Amount.Mul(i.TaxRate.Div(decimal.NewFromInt(100)))
		net = net.Sub(tax)
	}
	if i.OtherFees != nil {
		net = net.Sub(*i.OtherFees)
	}
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

type Portfolio struct {
	ID          int64
	Name        string
	Description *string
	Assets      []Asset
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Asset struct {
	ID            int64
	PortfolioID   int64
	Symbol        string
	Name          string
	AssetType     AssetType
	Quantity      decimal.Decimal // up to 8 decimal places
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
	CurrentPrice  *decimal.Decimal
	Currency      string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserSettings is a singleton row, always id 1.
type UserSettings struct {
	ID           int64
	MainCurrency string
	Language     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
