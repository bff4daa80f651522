package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"mymoney/internal/core"
)

const categoryColumns = "id, name, color, icon, created_at"

func scanCategory(row interface{ Scan(...any) error }) (*core.Category, error) {
	var (
		c         core.Category
		icon      sql.NullString
		createdAt string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Color, &icon, &createdAt); err != nil {
		return nil, err
	}
	c.Icon = stringPtr(icon)
	var err error
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse category created_at: %w", err)
	}
	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// GetCategory returns nil without an error when the id is absent.
func (s *Store) GetCategory(ctx context.Context, id int64) (*core.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (s *Store) CreateCategory(ctx context.Context, in core.NewCategory) (*core.Category, error) {
	color := in.Color
	if color == "" {
		color = core.DefaultCategoryColor
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (name, color, icon, created_at) VALUES (?, ?, ?, ?)",
		in.Name, color, nullString(in.Icon), fmtTime(now()))
	if err != nil {
		// duplicate names hit the UNIQUE constraint here
		return nil, fmt.Errorf("create category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create category id: %w", err)
	}
	return s.GetCategory(ctx, id)
}

// UpdateCategory applies only the patch fields that are set. It returns nil
// without an error when the id is absent.
func (s *Store) UpdateCategory(ctx context.Context, id int64, patch core.CategoryPatch) (*core.Category, error) {
	var (
		set  []string
		args []any
	)
	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Color != nil {
		set = append(set, "color = ?")
		args = append(args, *patch.Color)
	}
	if patch.Icon != nil {
		set = append(set, "icon = ?")
		args = append(args, *patch.Icon)
	}
	if len(set) == 0 {
		return s.GetCategory(ctx, id)
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE categories SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("update category rows: %w", err)
	} else if n == 0 {
		return nil, nil
	}
	return s.GetCategory(ctx, id)
}

// DeleteCategory reports whether a row was removed. Expenses that reference
// the category are left in place.
func (s *Store) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete category rows: %w", err)
	}
	return n > 0, nil
}
