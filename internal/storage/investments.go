package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"mymoney/internal/core"
)

const assetColumns = `id, portfolio_id, symbol, name, asset_type, quantity_units,
       purchase_price_cents, purchase_date, current_price_cents, currency, notes,
       created_at, updated_at`

const portfolioColumns = "id, name, description, created_at, updated_at"

func scanAsset(row interface{ Scan(...any) error }) (*core.Asset, error) {
	var (
		a             core.Asset
		assetType     string
		quantityUnits int64
		priceCents    int64
		purchaseDate  string
		currentCents  sql.NullInt64
		notes         sql.NullString
		createdAt     string
		updatedAt     string
	)
	if err := row.Scan(&a.ID, &a.PortfolioID, &a.Symbol, &a.Name, &assetType,
		&quantityUnits, &priceCents, &purchaseDate, &currentCents, &a.Currency,
		&notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	a.AssetType = core.AssetType(assetType)
	a.Quantity = fromQuantityUnits(quantityUnits)
	a.PurchasePrice = fromCents(priceCents)
	a.CurrentPrice = fromCentsPtr(intPtr(currentCents))
	a.Notes = stringPtr(notes)

	var err error
	if a.PurchaseDate, err = parseDate(purchaseDate); err != nil {
		return nil, fmt.Errorf("parse asset purchase_date: %w", err)
	}
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse asset created_at: %w", err)
	}
	if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse asset updated_at: %w", err)
	}
	return &a, nil
}

func scanPortfolio(row interface{ Scan(...any) error }) (*core.Portfolio, error) {
	var (
		p           core.Portfolio
		description sql.NullString
		createdAt   string
		updatedAt   string
	)
	if err := row.Scan(&p.ID, &p.Name, &description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Description = stringPtr(description)

	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse portfolio created_at: %w", err)
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse portfolio updated_at: %w", err)
	}
	return &p, nil
}

// ListPortfolios returns all portfolios ordered by name, each with its
// assets attached.
func (s *Store) ListPortfolios(ctx context.Context) ([]core.Portfolio, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+portfolioColumns+" FROM portfolios ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	defer rows.Close()

	var out []core.Portfolio
	byID := map[int64]int{}
	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, fmt.Errorf("scan portfolio: %w", err)
		}
		byID[p.ID] = len(out)
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	assets, err := s.ListAssets(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range assets {
		if i, ok := byID[a.PortfolioID]; ok {
			out[i].Assets = append(out[i].Assets, a)
		}
	}
	return out, nil
}

// GetPortfolio returns nil without an error when the id is absent.
func (s *Store) GetPortfolio(ctx context.Context, id int64) (*core.Portfolio, error) {
	p, err := scanPortfolio(s.db.QueryRowContext(ctx,
		"SELECT "+portfolioColumns+" FROM portfolios WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get portfolio: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+assetColumns+" FROM assets WHERE portfolio_id = ? ORDER BY id ASC", id)
	if err != nil {
		return nil, fmt.Errorf("get portfolio assets: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		p.Assets = append(p.Assets, *a)
	}
	return p, rows.Err()
}

func (s *Store) CreatePortfolio(ctx context.Context, in core.NewPortfolio) (*core.Portfolio, error) {
	ts := fmtTime(now())
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO portfolios (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)",
		in.Name, nullString(in.Description), ts, ts)
	if err != nil {
		return nil, fmt.Errorf("create portfolio: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create portfolio id: %w", err)
	}
	return s.GetPortfolio(ctx, id)
}

// UpdatePortfolio applies only the patch fields that are set. It returns nil
// without an error when the id is absent.
func (s *Store) UpdatePortfolio(ctx context.Context, id int64, patch core.PortfolioPatch) (*core.Portfolio, error) {
	set := []string{"updated_at = ?"}
	args := []any{fmtTime(now())}
	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE portfolios SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update portfolio: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("update portfolio rows: %w", err)
	} else if n == 0 {
		return nil, nil
	}
	return s.GetPortfolio(ctx, id)
}

func (s *Store) DeletePortfolio(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM portfolios WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete portfolio: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete portfolio rows: %w", err)
	}
	return n > 0, nil
}

// ListAssets returns every asset across all portfolios.
func (s *Store) ListAssets(ctx context.Context) ([]core.Asset, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+assetColumns+" FROM assets ORDER BY portfolio_id ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var out []core.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// GetAsset returns nil without an error when the id is absent.
func (s *Store) GetAsset(ctx context.Context, id int64) (*core.Asset, error) {
	a, err := scanAsset(s.db.QueryRowContext(ctx,
		"SELECT "+assetColumns+" FROM assets WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

func (s *Store) CreateAsset(ctx context.Context, in core.NewAsset) (*core.Asset, error) {
	currency := in.Currency
	if currency == "" {
		currency = core.DefaultCurrency
	}
	ts := fmtTime(now())
	res, err := s.db.ExecContext(ctx, `
INSERT INTO assets (portfolio_id, symbol, name, asset_type, quantity_units,
                    purchase_price_cents, purchase_date, current_price_cents,
                    currency, notes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.PortfolioID, in.Symbol, in.Name, string(in.AssetType),
		quantityUnits(in.Quantity), cents(in.PurchasePrice), fmtDate(in.PurchaseDate),
		nullInt(centsPtr(in.CurrentPrice)), currency, nullString(in.Notes), ts, ts)
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create asset id: %w", err)
	}
	return s.GetAsset(ctx, id)
}

// UpdateAsset applies only the patch fields that are set and refreshes
// updated_at. It returns nil without an error when the id is absent.
func (s *Store) UpdateAsset(ctx context.Context, id int64, patch core.AssetPatch) (*core.Asset, error) {
	set := []string{"updated_at = ?"}
	args := []any{fmtTime(now())}
	if patch.Symbol != nil {
		set = append(set, "symbol = ?")
		args = append(args, *patch.Symbol)
	}
	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.AssetType != nil {
		set = append(set, "asset_type = ?")
		args = append(args, string(*patch.AssetType))
	}
	if patch.Quantity != nil {
		set = append(set, "quantity_units = ?")
		args = append(args, quantityUnits(*patch.Quantity))
	}
	if patch.PurchasePrice != nil {
		set = append(set, "purchase_price_cents = ?")
		args = append(args, cents(*patch.PurchasePrice))
	}
	if patch.PurchaseDate != nil {
		set = append(set, "purchase_date = ?")
		args = append(args, fmtDate(*patch.PurchaseDate))
	}
	if patch.CurrentPrice != nil {
		set = append(set, "current_price_cents = ?")
		args = append(args, cents(*patch.CurrentPrice))
	}
	if patch.Currency != nil {
		set = append(set, "currency = ?")
		args = append(args, *patch.Currency)
	}
	if patch.Notes != nil {
		set = append(set, "notes = ?")
		args = append(args, *patch.Notes)
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE assets SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update asset: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("update asset rows: %w", err)
	} else if n == 0 {
		return nil, nil
	}
	return s.GetAsset(ctx, id)
}

func (s *Store) DeleteAsset(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM assets WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete asset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete asset rows: %w", err)
	}
	return n > 0, nil
}
