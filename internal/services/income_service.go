package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"mymoney/internal/core"
	"mymoney/internal/storage"
)

const DefaultIncomePageSize = 50

type IncomeService struct {
	store *storage.Store
}

func NewIncomeService(store *storage.Store) *IncomeService {
	return &IncomeService{store: store}
}

func (s *IncomeService) List(ctx context.Context, isActive *bool, limit, offset int) ([]core.Income, int, bool, error) {
	if limit <= 0 {
		limit = DefaultIncomePageSize
	}
	if offset < 0 {
		offset = 0
	}
	items, total, err := s.store.ListIncomes(ctx, isActive, limit, offset)
	if err != nil {
		return nil, 0, false, err
	}
	return items, total, (offset + limit) < total, nil
}

func (s *IncomeService) Get(ctx context.Context, id int64) (*core.Income, error) {
	return s.store.GetIncome(ctx, id)
}

func (s *IncomeService) Create(ctx context.Context, in core.NewIncome) (*core.Income, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	i, err := s.store.CreateIncome(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create income %q: %w", in.Name, err)
	}
	slog.InfoContext(ctx, "Income created", "id", i.ID, "name", i.Name, "amount", i.Amount.String())
	return i, nil
}

func (s *IncomeService) Update(ctx context.Context, id int64, patch core.IncomePatch) (*core.Income, error) {
	return s.store.UpdateIncome(ctx, id, patch)
}

func (s *IncomeService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeleteIncome(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		slog.InfoContext(ctx, "Income deleted", "id", id)
	}
	return deleted, nil
}

// TotalMonthlyIncome sums the raw amount of every active income stream.
func (s *IncomeService) TotalMonthlyIncome(ctx context.Context) (decimal.Decimal, error) {
	return s.store.TotalActiveIncome(ctx)
}

func (s *IncomeService) ActiveCount(ctx context.Context) (int, error) {
	return s.store.ActiveIncomeCount(ctx)
}
