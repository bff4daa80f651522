// Package storage persists the domain over SQLite. Monetary values are
// stored as scaled integers (cents, basis points, 1e-8 quantity units) and
// converted to decimals at the package boundary, so sums and comparisons in
// SQL stay exact.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04:05.999999999"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ── scaled integer conversions ──

func cents(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

func fromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

func centsPtr(d *decimal.Decimal) *int64 {
	if d == nil {
		return nil
	}
	c := cents(*d)
	return &c
}

func fromCentsPtr(c *int64) *decimal.Decimal {
	if c == nil {
		return nil
	}
	d := fromCents(*c)
	return &d
}

// quantity units carry 8 decimal places
func quantityUnits(d decimal.Decimal) int64 {
	return d.Round(8).Shift(8).IntPart()
}

func fromQuantityUnits(u int64) decimal.Decimal {
	return decimal.New(u, -8)
}

// tax rates are stored in basis points (percent with 2 decimal places)
func basisPoints(d *decimal.Decimal) *int64 {
	return centsPtr(d)
}

func fromBasisPoints(bp *int64) *decimal.Decimal {
	return fromCentsPtr(bp)
}

// ── date and time formatting ──

func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func fmtTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.ParseInLocation(timeLayout, s, time.UTC)
}

func now() time.Time {
	return time.Now().UTC()
}

// monthKey matches the strftime('%Y-%m', date) form used in month filters.
func monthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ── nullable column helpers ──

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullInt(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func intPtr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}

func nullDate(p *time.Time) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: fmtDate(*p), Valid: true}
}

func datePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := parseDate(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullTime(p *time.Time) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: fmtTime(*p), Valid: true}
}

func timePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
