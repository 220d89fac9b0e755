package calendar

import "context"

type SettingsRepository interface {
	// GetByCompanyID returns ErrSettingsNotFound when the company never
	// configured a calendar; callers fall back to DefaultSettings.
	GetByCompanyID(ctx context.Context, companyID string) (Settings, error)
	Upsert(ctx context.Context, settings Settings) (Settings, error)
}
