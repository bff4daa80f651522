package services

import (
	"context"
	"errors"
	"testing"

	"mymoney/internal/core"
)

func TestPortfolioLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.investments.CreatePortfolio(ctx, core.NewPortfolio{
		Name:        "Retirement",
		Description: strPtr("long-term holdings"),
	})
	if err != nil {
		t.Fatalf("CreatePortfolio: %v", err)
	}

	if _, err := env.investments.CreateAsset(ctx, core.NewAsset{
		PortfolioID: p.ID, Symbol: "VWCE", Name: "All-World", AssetType: core.AssetETF,
		Quantity: dec("12.5"), PurchasePrice: dec("98.40"), PurchaseDate: date("2024-01-15"),
	}); err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	got, err := env.investments.GetPortfolio(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPortfolio: %v", err)
	}
	if len(got.Assets) != 1 || got.Assets[0].Symbol != "VWCE" {
		t.Fatalf("assets = %+v, want one VWCE", got.Assets)
	}
	if !got.Assets[0].Quantity.Equal(dec("12.5")) {
		t.Errorf("Quantity = %s, want 12.5", got.Assets[0].Quantity)
	}

	updated, err := env.investments.UpdatePortfolio(ctx, p.ID, core.PortfolioPatch{Name: strPtr("FIRE")})
	if err != nil {
		t.Fatalf("UpdatePortfolio: %v", err)
	}
	if updated.Name != "FIRE" {
		t.Errorf("Name = %q, want FIRE", updated.Name)
	}

	deleted, err := env.investments.DeletePortfolio(ctx, p.ID)
	if err != nil || !deleted {
		t.Fatalf("DeletePortfolio = (%v, %v), want (true, nil)", deleted, err)
	}
	gone, err := env.investments.GetPortfolio(ctx, p.ID)
	if err != nil || gone != nil {
		t.Fatalf("GetPortfolio after delete = (%v, %v), want (nil, nil)", gone, err)
	}
}

func TestAssetPriceUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.investments.CreatePortfolio(ctx, core.NewPortfolio{Name: "Main"})
	if err != nil {
		t.Fatal(err)
	}
	a, err := env.investments.CreateAsset(ctx, core.NewAsset{
		PortfolioID: p.ID, Symbol: "AAPL", Name: "Apple", AssetType: core.AssetStock,
		Quantity: dec("4"), PurchasePrice: dec("150"), PurchaseDate: date("2024-06-01"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if a.CurrentPrice != nil {
		t.Fatalf("new asset already priced: %s", a.CurrentPrice)
	}

	priced, err := env.investments.UpdateAssetPrice(ctx, a.ID, dec("187.25"))
	if err != nil {
		t.Fatalf("UpdateAssetPrice: %v", err)
	}
	if priced.CurrentPrice == nil || !priced.CurrentPrice.Equal(dec("187.25")) {
		t.Errorf("CurrentPrice = %v, want 187.25", priced.CurrentPrice)
	}
	// Only the price moved.
	if !priced.PurchasePrice.Equal(dec("150")) || priced.Symbol != "AAPL" {
		t.Errorf("unexpected field change: %+v", priced)
	}

	missing, err := env.investments.UpdateAssetPrice(ctx, 9999, dec("1"))
	if err != nil || missing != nil {
		t.Fatalf("UpdateAssetPrice missing = (%v, %v), want (nil, nil)", missing, err)
	}
}

func TestAssetCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.investments.CreateAsset(ctx, core.NewAsset{
		Symbol: "AAPL", Name: "Apple", AssetType: core.AssetStock,
		Quantity: dec("1"), PurchasePrice: dec("1"), PurchaseDate: date("2024-06-01"),
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestCategoryUniqueName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustCategory(t, "Food")
	if _, err := env.categories.Create(ctx, core.NewCategory{Name: "Food"}); err == nil {
		t.Fatal("expected error for duplicate category name")
	}
}
