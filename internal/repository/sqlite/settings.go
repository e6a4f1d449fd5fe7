package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tkarimov/pricewatch/internal/models"
)

// GetSettings returns the stored monitoring parameters, or the defaults
// when nothing has been saved yet.
func (r *Repository) GetSettings(ctx context.Context) (models.Settings, error) {
	const opn = "repository.sqlite.GetSettings"

	var (
		settings models.Settings
		enabled  int
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT refresh_interval, target_price, alarm_enabled FROM settings WHERE id = 1").
		Scan(&settings.RefreshInterval, &settings.TargetPrice, &enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, fmt.Errorf("%s: failed to get settings: %w", opn, err)
	}

	settings.AlarmEnabled = enabled != 0

	return settings, nil
}

// UpdateSettings replaces the stored monitoring parameters.
func (r *Repository) UpdateSettings(ctx context.Context, settings models.Settings) error {
	const opn = "repository.sqlite.UpdateSettings"

	enabled := 0
	if settings.AlarmEnabled {
		enabled = 1
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO settings (id, refresh_interval, target_price, alarm_enabled) VALUES (1, ?, ?, ?)",
		settings.RefreshInterval, settings.TargetPrice, enabled)
	if err != nil {
		return fmt.Errorf("%s: failed to update settings: %w", opn, err)
	}

	return nil
}
