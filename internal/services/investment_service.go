package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"mymoney/internal/core"
	"mymoney/internal/storage"
)

type InvestmentService struct {
	store *storage.Store
}

func NewInvestmentService(store *storage.Store) *InvestmentService {
	return &InvestmentService{store: store}
}

func (s *InvestmentService) ListPortfolios(ctx context.Context) ([]core.Portfolio, error) {
	return s.store.ListPortfolios(ctx)
}

func (s *InvestmentService) GetPortfolio(ctx context.Context, id int64) (*core.Portfolio, error) {
	return s.store.GetPortfolio(ctx, id)
}

func (s *InvestmentService) CreatePortfolio(ctx context.Context, in core.NewPortfolio) (*core.Portfolio, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	p, err := s.store.CreatePortfolio(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create portfolio %q: %w", in.Name, err)
	}
	slog.InfoContext(ctx, "Portfolio created", "id", p.ID, "name", p.Name)
	return p, nil
}

func (s *InvestmentService) UpdatePortfolio(ctx context.Context, id int64, patch core.PortfolioPatch) (*core.Portfolio, error) {
	return s.store.UpdatePortfolio(ctx, id, patch)
}

func (s *InvestmentService) DeletePortfolio(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeletePortfolio(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		slog.InfoContext(ctx, "Portfolio deleted", "id", id)
	}
	return deleted, nil
}

func (s *InvestmentService) ListAssets(ctx context.Context) ([]core.Asset, error) {
	return s.store.ListAssets(ctx)
}

func (s *InvestmentService) GetAsset(ctx context.Context, id int64) (*core.Asset, error) {
	return s.store.GetAsset(ctx, id)
}

func (s *InvestmentService) CreateAsset(ctx context.Context, in core.NewAsset) (*core.Asset, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	a, err := s.store.CreateAsset(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create asset %q: %w", in.Symbol, err)
	}
	slog.InfoContext(ctx, "Asset created", "id", a.ID, "symbol", a.Symbol, "portfolio_id", a.PortfolioID)
	return a, nil
}

func (s *InvestmentService) UpdateAsset(ctx context.Context, id int64, patch core.AssetPatch) (*core.Asset, error) {
	return s.store.UpdateAsset(ctx, id, patch)
}

// UpdateAssetPrice refreshes only the asset's current price.
func (s *InvestmentService) UpdateAssetPrice(ctx context.Context, id int64, price decimal.Decimal) (*core.Asset, error) {
	return s.store.UpdateAsset(ctx, id, core.AssetPatch{CurrentPrice: &price})
}

func (s *InvestmentService) DeleteAsset(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeleteAsset(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		slog.InfoContext(ctx, "Asset deleted", "id", id)
	}
	return deleted, nil
}
