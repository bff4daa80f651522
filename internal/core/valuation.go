package core

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// AssetTotalCost is quantity times purchase price.
func AssetTotalCost(a Asset) decimal.Decimal {
	return a.Quantity.Mul(a.PurchasePrice)
}

// AssetCurrentValue is quantity times current price, or nil when the asset
// has no current price.
func AssetCurrentValue(a Asset) *decimal.Decimal {
	if a.CurrentPrice == nil {
		return nil
	}
	v := a.Quantity.Mul(*a.CurrentPrice)
	return &v
}

// AssetGainLoss is current value minus total cost, nil when unpriced.
func AssetGainLoss(a Asset) *decimal.Decimal {
	cv := AssetCurrentValue(a)
	if cv == nil {
		return nil
	}
	gl := cv.Sub(AssetTotalCost(a))
	return &gl
}

// AssetGainLossPercent is gain/loss relative to cost, nil when unpriced or
// the cost is zero.
func AssetGainLossPercent(a Asset) *decimal.Decimal {
	gl := AssetGainLoss(a)
	cost := AssetTotalCost(a)
	if gl == nil || cost.IsZero() {
		return nil
	}
	pct := gl.Div(cost).Mul(hundred)
	return &pct
}

type PortfolioTotals struct {
	TotalCost            decimal.Decimal
	TotalValue           decimal.Decimal
	TotalGainLoss        decimal.Decimal
	TotalGainLossPercent decimal.Decimal
}

// ComputePortfolioTotals rolls up the portfolio's assets. Assets without a
// current price contribute their cost to the total value, so partially
// priced portfolios do not understate it. Gain/loss is only reported when at
// least one asset carries a real current value.
func ComputePortfolioTotals(p Portfolio) PortfolioTotals {
	var t PortfolioTotals
	hasValue := false
	for _, a := range p.Assets {
		cost := AssetTotalCost(a)
		t.TotalCost = t.TotalCost.Add(cost)
		if cv := AssetCurrentValue(a); cv != nil {
			t.TotalValue = t.TotalValue.Add(*cv)
			hasValue = true
		} else {
			t.TotalValue = t.TotalValue.Add(cost)
		}
	}
	if hasValue {
		t.TotalGainLoss = t.TotalValue.Sub(t.TotalCost)
		if t.TotalCost.IsPositive() {
			t.TotalGainLossPercent = t.TotalGainLoss.Div(t.TotalCost).Mul(hundred)
		}
	}
	return t
}
