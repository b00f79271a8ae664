package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
)

// LoadSettings returns the persisted settings row, or the defaults
// (empty jurisdiction, all notifications enabled) when none exists.
// Loading always yields exactly one settings object.
func (s *Store) LoadSettings(ctx context.Context) (model.Settings, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM settings WHERE key = ?
	`, SettingsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	var settings model.Settings
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return model.Settings{}, fmt.Errorf("load settings: decode: %w", err)
	}
	return settings, nil
}

// SaveSettings upserts the single settings row.
func (s *Store) SaveSettings(ctx context.Context, settings model.Settings) error {
	value, err := settingsJSON(settings)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, SettingsKey, value)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// settingsJSON encodes settings for the key-keyed settings row.
func settingsJSON(settings model.Settings) (string, error) {
	value, err := json.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("encode settings: %w", err)
	}
	return string(value), nil
}
