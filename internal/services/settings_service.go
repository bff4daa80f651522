package services

import (
	"context"
	"fmt"
	"log/slog"

	"mymoney/internal/core"
	"mymoney/internal/storage"
)

type SettingsService struct {
	store *storage.Store
}

func NewSettingsService(store *storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the singleton settings row, creating it with defaults on
// first read.
func (s *SettingsService) Get(ctx context.Context) (*core.UserSettings, error) {
	return s.store.GetSettings(ctx)
}

// Update validates each provided code against the fixed supported lists and
// persists nothing when either is unknown.
func (s *SettingsService) Update(ctx context.Context, patch core.SettingsPatch) (*core.UserSettings, error) {
	if patch.MainCurrency != nil && !core.ValidCurrencyCode(*patch.MainCurrency) {
		return nil, fmt.Errorf("%w: invalid currency code %q", core.ErrValidation, *patch.MainCurrency)
	}
	if patch.Language != nil && !core.ValidLanguageCode(*patch.Language) {
		return nil, fmt.Errorf("%w: invalid language code %q", core.ErrValidation, *patch.Language)
	}

	settings, err := s.store.UpdateSettings(ctx, patch)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Settings updated",
		"currency", settings.MainCurrency, "language", settings.Language)
	return settings, nil
}
