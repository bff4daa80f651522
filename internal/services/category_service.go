package services

import (
	"context"
	"fmt"
	"log/slog"

	"mymoney/internal/core"
	"mymoney/internal/storage"
)

type CategoryService struct {
	store *storage.Store
}

func NewCategoryService(store *storage.Store) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) List(ctx context.Context) ([]core.Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*core.Category, error) {
	return s.store.GetCategory(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in core.NewCategory) (*core.Category, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	c, err := s.store.CreateCategory(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create category %q: %w", in.Name, err)
	}
	slog.InfoContext(ctx, "Category created", "id", c.ID, "name", c.Name)
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, patch core.CategoryPatch) (*core.Category, error) {
	return s.store.UpdateCategory(ctx, id, patch)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeleteCategory(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		slog.InfoContext(ctx, "Category deleted", "id", id)
	}
	return deleted, nil
}
