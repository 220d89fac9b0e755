package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/calendar"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/database"
)

type calendarSettingsRepositoryImpl struct {
	db *database.DB
}

func NewCalendarSettingsRepository(db *database.DB) calendar.SettingsRepository {
	return &calendarSettingsRepositoryImpl{db: db}
}

// GetByCompanyID implements calendar.SettingsRepository. Holidays live in a
// jsonb column and scan straight into the slice.
func (r *calendarSettingsRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) (calendar.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, holidays, saturday_enabled, saturday_type,
			start_time, end_time, created_at, updated_at
		FROM calendar_settings
		WHERE company_id = $1
	`

	var settings calendar.Settings
	err := q.QueryRow(ctx, query, companyID).Scan(
		&settings.ID, &settings.CompanyID, &settings.Holidays,
		&settings.SaturdayEnabled, &settings.SaturdayType,
		&settings.StartTime, &settings.EndTime,
		&settings.CreatedAt, &settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.Settings{}, calendar.ErrSettingsNotFound
		}
		return calendar.Settings{}, fmt.Errorf("failed to get calendar settings: %w", err)
	}

	return settings, nil
}

// Upsert implements calendar.SettingsRepository. One settings row per company.
func (r *calendarSettingsRepositoryImpl) Upsert(ctx context.Context, settings calendar.Settings) (calendar.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendar_settings (
			company_id, holidays, saturday_enabled, saturday_type, start_time, end_time
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id) DO UPDATE SET
			holidays = EXCLUDED.holidays,
			saturday_enabled = EXCLUDED.saturday_enabled,
			saturday_type = EXCLUDED.saturday_type,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			updated_at = NOW()
		RETURNING id, company_id, holidays, saturday_enabled, saturday_type,
			start_time, end_time, created_at, updated_at
	`

	var saved calendar.Settings
	err := q.QueryRow(ctx, query,
		settings.CompanyID, settings.Holidays, settings.SaturdayEnabled,
		settings.SaturdayType, settings.StartTime, settings.EndTime,
	).Scan(
		&saved.ID, &saved.CompanyID, &saved.Holidays,
		&saved.SaturdayEnabled, &saved.SaturdayType,
		&saved.StartTime, &saved.EndTime,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return calendar.Settings{}, fmt.Errorf("failed to upsert calendar settings: %w", err)
	}

	return saved, nil
}
