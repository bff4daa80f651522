package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"mymoney/internal/core"
)

// Expense rows are read with their category joined. The join is LEFT so
// expenses whose category was deleted still list, with a zero category.
const expenseSelect = `
SELECT e.id, e.amount_cents, e.description, e.notes, e.date, e.category_id,
       e.is_recurring, e.recurrence_rule, e.is_paid, e.paid_at,
       e.created_at, e.updated_at,
       c.id, c.name, c.color, c.icon, c.created_at
FROM expenses e
LEFT JOIN categories c ON c.id = e.category_id`

func scanExpense(row interface{ Scan(...any) error }) (*core.Expense, error) {
	var (
		e              core.Expense
		amountCents    int64
		notes          sql.NullString
		date           string
		recurrenceRule sql.NullString
		paidAt         sql.NullString
		createdAt      string
		updatedAt      string
		catID          sql.NullInt64
		catName        sql.NullString
		catColor       sql.NullString
		catIcon        sql.NullString
		catCreatedAt   sql.NullString
	)
	if err := row.Scan(&e.ID, &amountCents, &e.Description, &notes, &date, &e.CategoryID,
		&e.IsRecurring, &recurrenceRule, &e.IsPaid, &paidAt, &createdAt, &updatedAt,
		&catID, &catName, &catColor, &catIcon, &catCreatedAt); err != nil {
		return nil, err
	}

	e.Amount = fromCents(amountCents)
	e.Notes = stringPtr(notes)
	if recurrenceRule.Valid {
		r := core.RecurrenceRule(recurrenceRule.String)
		e.RecurrenceRule = &r
	}

	var err error
	if e.Date, err = parseDate(date); err != nil {
		return nil, fmt.Errorf("parse expense date: %w", err)
	}
	if e.PaidAt, err = timePtr(paidAt); err != nil {
		return nil, fmt.Errorf("parse expense paid_at: %w", err)
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse expense created_at: %w", err)
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse expense updated_at: %w", err)
	}

	if catID.Valid {
		e.Category = core.Category{
			ID:    catID.Int64,
			Name:  catName.String,
			Color: catColor.String,
			Icon:  stringPtr(catIcon),
		}
		if catCreatedAt.Valid {
			if e.Category.CreatedAt, err = parseTime(catCreatedAt.String); err != nil {
				return nil, fmt.Errorf("parse expense category created_at: %w", err)
			}
		}
	}
	return &e, nil
}

func expenseWhere(f core.ExpenseFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.CategoryID != nil {
		conds = append(conds, "e.category_id = ?")
		args = append(args, *f.CategoryID)
	}
	if f.StartDate != nil {
		conds = append(conds, "e.date >= ?")
		args = append(args, fmtDate(*f.StartDate))
	}
	if f.EndDate != nil {
		conds = append(conds, "e.date <= ?")
		args = append(args, fmtDate(*f.EndDate))
	}
	if f.MinAmount != nil {
		conds = append(conds, "e.amount_cents >= ?")
		args = append(args, cents(*f.MinAmount))
	}
	if f.MaxAmount != nil {
		conds = append(conds, "e.amount_cents <= ?")
		args = append(args, cents(*f.MaxAmount))
	}
	if f.IsRecurring != nil {
		conds = append(conds, "e.is_recurring = ?")
		args = append(args, *f.IsRecurring)
	}
	if f.IsPaid != nil {
		conds = append(conds, "e.is_paid = ?")
		args = append(args, *f.IsPaid)
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + strings.ToLower(*f.Search) + "%"
		conds = append(conds, "(LOWER(e.description) LIKE ? OR LOWER(COALESCE(e.notes, '')) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListExpenses returns one page of matches plus the pre-pagination count.
// The id tie-break keeps pagination deterministic under equal sort keys.
func (s *Store) ListExpenses(ctx context.Context, f core.ExpenseFilter, sortBy core.ExpenseSortField, dir core.SortDirection, limit, offset int) ([]core.Expense, int, error) {
	where, args := expenseWhere(f)

	var total int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM expenses e"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count expenses: %w", err)
	}

	sortCol := "e.date"
	if sortBy == core.SortByAmount {
		sortCol = "e.amount_cents"
	}
	sortDir := "DESC"
	if dir == core.SortAsc {
		sortDir = "ASC"
	}
	order := fmt.Sprintf(" ORDER BY %s %s, e.id ASC LIMIT ? OFFSET ?", sortCol, sortDir)

	rows, err := s.db.QueryContext(ctx, expenseSelect+where+order, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, *e)
	}
	return out, total, rows.Err()
}

// GetExpense returns nil without an error when the id is absent.
func (s *Store) GetExpense(ctx context.Context, id int64) (*core.Expense, error) {
	e, err := scanExpense(s.db.QueryRowContext(ctx, expenseSelect+" WHERE e.id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

func (s *Store) CreateExpense(ctx context.Context, in core.NewExpense) (*core.Expense, error) {
	var rule sql.NullString
	if in.RecurrenceRule != nil {
		rule = sql.NullString{String: string(*in.RecurrenceRule), Valid: true}
	}
	ts := fmtTime(now())
	res, err := s.db.ExecContext(ctx, `
INSERT INTO expenses (amount_cents, description, notes, date, category_id,
                      is_recurring, recurrence_rule, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cents(in.Amount), in.Description, nullString(in.Notes), fmtDate(in.Date),
		in.CategoryID, in.IsRecurring, rule, ts, ts)
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create expense id: %w", err)
	}
	return s.GetExpense(ctx, id)
}

// UpdateExpense applies only the patch fields that are set and refreshes
// updated_at. It returns nil without an error when the id is absent.
func (s *Store) UpdateExpense(ctx context.Context, id int64, patch core.ExpensePatch) (*core.Expense, error) {
	set := []string{"updated_at = ?"}
	args := []any{fmtTime(now())}
	if patch.Amount != nil {
		set = append(set, "amount_cents = ?")
		args = append(args, cents(*patch.Amount))
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Notes != nil {
		set = append(set, "notes = ?")
		args = append(args, *patch.Notes)
	}
	if patch.Date != nil {
		set = append(set, "date = ?")
		args = append(args, fmtDate(*patch.Date))
	}
	if patch.CategoryID != nil {
		set = append(set, "category_id = ?")
		args = append(args, *patch.CategoryID)
	}
	if patch.IsRecurring != nil {
		set = append(set, "is_recurring = ?")
		args = append(args, *patch.IsRecurring)
	}
	if patch.RecurrenceRule != nil {
		set = append(set, "recurrence_rule = ?")
		args = append(args, string(*patch.RecurrenceRule))
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE expenses SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("update expense rows: %w", err)
	} else if n == 0 {
		return nil, nil
	}
	return s.GetExpense(ctx, id)
}

func (s *Store) DeleteExpense(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete expense rows: %w", err)
	}
	return n > 0, nil
}

// MarkExpensePaid sets the paid flag; paid_at tracks the flag, stamped when
// paying and cleared when unpaying. No other field is touched.
func (s *Store) MarkExpensePaid(ctx context.Context, id int64, paid bool) (*core.Expense, error) {
	ts := now()
	var paidAt sql.NullString
	if paid {
		paidAt = nullTime(&ts)
	}
	res, err := s.db.ExecContext(ctx,
		"UPDATE expenses SET is_paid = ?, paid_at = ?, updated_at = ? WHERE id = ?",
		paid, paidAt, fmtTime(ts), id)
	if err != nil {
		return nil, fmt.Errorf("mark expense paid: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("mark expense paid rows: %w", err)
	} else if n == 0 {
		return nil, nil
	}
	return s.GetExpense(ctx, id)
}

// ListExpensesByMonth returns every expense dated in the given month.
func (s *Store) ListExpensesByMonth(ctx context.Context, year, month int) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		expenseSelect+" WHERE strftime('%Y-%m', e.date) = ? ORDER BY e.date ASC, e.id ASC",
		monthKey(year, month))
	if err != nil {
		return nil, fmt.Errorf("list expenses by month: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// MonthExpenseTotal sums expense amounts for the given month.
func (s *Store) MonthExpenseTotal(ctx context.Context, year, month int) (decimal.Decimal, error) {
	var total int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount_cents), 0) FROM expenses WHERE strftime('%Y-%m', date) = ?",
		monthKey(year, month)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("month expense total: %w", err)
	}
	return fromCents(total), nil
}

// RecentExpenses returns the latest expenses by date, then creation time.
func (s *Store) RecentExpenses(ctx context.Context, limit int) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		expenseSelect+" ORDER BY e.date DESC, e.created_at DESC, e.id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("recent expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// CategoryTotal is a per-category aggregate for one month.
type CategoryTotal struct {
	Category core.Category
	Total    decimal.Decimal
	Count    int
}

// TopCategoryTotals groups the month's expenses by category, largest total
// first, keeping at most limit groups.
func (s *Store) TopCategoryTotals(ctx context.Context, year, month, limit int) ([]CategoryTotal, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT c.id, c.name, c.color, c.icon, c.created_at,
       SUM(e.amount_cents) AS total_cents, COUNT(e.id)
FROM expenses e
JOIN categories c ON c.id = e.category_id
WHERE strftime('%Y-%m', e.date) = ?
GROUP BY c.id
ORDER BY total_cents DESC
LIMIT ?`, monthKey(year, month), limit)
	if err != nil {
		return nil, fmt.Errorf("top category totals: %w", err)
	}
	defer rows.Close()

	var out []CategoryTotal
	for rows.Next() {
		var (
			ct         CategoryTotal
			icon       sql.NullString
			createdAt  string
			totalCents int64
		)
		if err := rows.Scan(&ct.Category.ID, &ct.Category.Name, &ct.Category.Color,
			&icon, &createdAt, &totalCents, &ct.Count); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		ct.Category.Icon = stringPtr(icon)
		created, err := parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse category created_at: %w", err)
		}
		ct.Category.CreatedAt = created
		ct.Total = fromCents(totalCents)
		out = append(out, ct)
	}
	return out, rows.Err()
}
