package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"mymoney/internal/core"
)

const settingsColumns = "id, main_currency, language, created_at, updated_at"

func scanSettings(row interface{ Scan(...any) error }) (*core.UserSettings, error) {
	var (
		u         core.UserSettings
		createdAt string
		updatedAt string
	)
	if err := row.Scan(&u.ID, &u.MainCurrency, &u.Language, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse settings created_at: %w", err)
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse settings updated_at: %w", err)
	}
	return &u, nil
}

// GetSettings returns the singleton settings row, inserting the defaults in
// the same transaction as the read when the row does not exist yet.
func (s *Store) GetSettings(ctx context.Context) (*core.UserSettings, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin settings tx: %w", err)
	}
	defer tx.Rollback()

	settings, err := scanSettings(tx.QueryRowContext(ctx,
		"SELECT "+settingsColumns+" FROM user_settings WHERE id = ?", core.SettingsRowID))
	if err == sql.ErrNoRows {
		ts := fmtTime(now())
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO user_settings (id, main_currency, language, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			core.SettingsRowID, core.DefaultCurrency, core.DefaultLanguage, ts, ts); err != nil {
			return nil, fmt.Errorf("insert default settings: %w", err)
		}
		settings, err = scanSettings(tx.QueryRowContext(ctx,
			"SELECT "+settingsColumns+" FROM user_settings WHERE id = ?", core.SettingsRowID))
		if err != nil {
			return nil, fmt.Errorf("reread settings: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit settings tx: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies only the patch fields that are set and refreshes
// updated_at. The row is created first if it does not exist.
func (s *Store) UpdateSettings(ctx context.Context, patch core.SettingsPatch) (*core.UserSettings, error) {
	if _, err := s.GetSettings(ctx); err != nil {
		return nil, err
	}

	set := []string{"updated_at = ?"}
	args := []any{fmtTime(now())}
	if patch.MainCurrency != nil {
		set = append(set, "main_currency = ?")
		args = append(args, *patch.MainCurrency)
	}
	if patch.Language != nil {
		set = append(set, "language = ?")
		args = append(args, *patch.Language)
	}

	args = append(args, core.SettingsRowID)
	if _, err := s.db.ExecContext(ctx,
		"UPDATE user_settings SET "+strings.Join(set, ", ")+" WHERE id = ?", args...); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return s.GetSettings(ctx)
}
