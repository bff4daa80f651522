package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"mymoney/internal/core"
)

const incomeColumns = `id, name, amount_cents, income_type, is_active, start_date, notes,
       currency, is_gross, tax_rate_bp, other_fees_cents, created_at, updated_at`

func scanIncome(row interface{ Scan(...any) error }) (*core.Income, error) {
	var (
		i           core.Income
		amountCents int64
		incomeType  string
		startDate   sql.NullString
		notes       sql.NullString
		taxRateBP   sql.NullInt64
		feesCents   sql.NullInt64
		createdAt   string
		updatedAt   string
	)
	if err := row.Scan(&i.ID, &i.Name, &amountCents, &incomeType, &i.IsActive,
		&startDate, &notes, &i.Currency, &i.IsGross, &taxRateBP, &feesCents,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	i.Amount = fromCents(amountCents)
	i.IncomeType = core.IncomeType(incomeType)
	i.Notes = stringPtr(notes)
	i.TaxRate = fromBasisPoints(intPtr(taxRateBP))
	i.OtherFees = fromCentsPtr(intPtr(feesCents))

	var err error
	if i.StartDate, err = datePtr(startDate); err != nil {
		return nil, fmt.Errorf("parse income start_date: %w", err)
	}
	if i.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse income created_at: %w", err)
	}
	if i.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse income updated_at: %w", err)
	}
	return &i, nil
}

// ListIncomes pages incomes newest-first, optionally narrowed by active flag,
// and returns the pre-pagination count.
func (s *Store) ListIncomes(ctx context.Context, isActive *bool, limit, offset int) ([]core.Income, int, error) {
	where := ""
	var args []any
	if isActive != nil {
		where = " WHERE is_active = ?"
		args = append(args, *isActive)
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM incomes"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count incomes: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+incomeColumns+" FROM incomes"+where+
			" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?",
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list incomes: %w", err)
	}
	defer rows.Close()

	var out []core.Income
	for rows.Next() {
		i, err := scanIncome(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan income: %w", err)
		}
		out = append(out, *i)
	}
	return out, total, rows.Err()
}

// GetIncome returns nil without an error when the id is absent.
func (s *Store) GetIncome(ctx context.Context, id int64) (*core.Income, error) {
	i, err := scanIncome(s.db.QueryRowContext(ctx,
		"SELECT "+incomeColumns+" FROM incomes WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get income: %w", err)
	}
	return i, nil
}

func (s *Store) CreateIncome(ctx context.Context, in core.NewIncome) (*core.Income, error) {
	currency := in.Currency
	if currency == "" {
		currency = core.DefaultCurrency
	}
	ts := fmtTime(now())
	res, err := s.db.ExecContext(ctx, `
INSERT INTO incomes (name, amount_cents, income_type, is_active, start_date, notes,
                     currency, is_gross, tax_rate_bp, other_fees_cents, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Name, cents(in.Amount), string(in.IncomeType), in.IsActive,
		nullDate(in.StartDate), nullString(in.Notes), currency, in.IsGross,
		nullInt(basisPoints(in.TaxRate)), nullInt(centsPtr(in.OtherFees)), ts, ts)
	if err != nil {
		return nil, fmt.Errorf("create income: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create income id: %w", err)
	}
	return s.GetIncome(ctx, id)
}

// UpdateIncome applies only the patch fields that are set and refreshes
// updated_at. It returns nil without an error when the id is absent.
func (s *Store) UpdateIncome(ctx context.Context, id int64, patch core.IncomePatch) (*core.Income, error) {
	set := []string{"updated_at = ?"}
	args := []any{fmtTime(now())}
	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Amount != nil {
		set = append(set, "amount_cents = ?")
		args = append(args, cents(*patch.Amount))
	}
	if patch.IncomeType != nil {
		set = append(set, "income_type = ?")
		args = append(args, string(*patch.IncomeType))
	}
	if patch.IsActive != nil {
		set = append(set, "is_active = ?")
		args = append(args, *patch.IsActive)
	}
	if patch.StartDate != nil {
		set = append(set, "start_date = ?")
		args = append(args, fmtDate(*patch.StartDate))
	}
	if patch.Notes != nil {
		set = append(set, "notes = ?")
		args = append(args, *patch.Notes)
	}
	if patch.Currency != nil {
		set = append(set, "currency = ?")
		args = append(args, *patch.Currency)
	}
	if patch.IsGross != nil {
		set = append(set, "is_gross = ?")
		args = append(args, *patch.IsGross)
	}
	if patch.TaxRate != nil {
		set = append(set, "tax_rate_bp = ?")
		args = append(args, cents(*patch.TaxRate))
	}
	if patch.OtherFees != nil {
		set = append(set, "other_fees_cents = ?")
		args = append(args, cents(*patch.OtherFees))
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE incomes SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update income: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("update income rows: %w", err)
	} else if n == 0 {
		return nil, nil
	}
	return s.GetIncome(ctx, id)
}

func (s *Store) DeleteIncome(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM incomes WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete income: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete income rows: %w", err)
	}
	return n > 0, nil
}

// TotalActiveIncome sums the raw amount over active incomes. Gross and net
// are deliberately not distinguished here.
func (s *Store) TotalActiveIncome(ctx context.Context) (decimal.Decimal, error) {
	var total int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount_cents), 0) FROM incomes WHERE is_active = 1").Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total active income: %w", err)
	}
	return fromCents(total), nil
}

func (s *Store) ActiveIncomeCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM incomes WHERE is_active = 1").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("active income count: %w", err)
	}
	return n, nil
}
