package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/calendar"
)

// CalendarService manages company calendar settings and exposes the
// working-days engine over them.
type CalendarService interface {
	GetSettings(ctx context.Context) (calendar.SettingsResponse, error)
	UpdateSettings(ctx context.Context, req calendar.UpdateSettingsRequest) (calendar.SettingsResponse, error)
	AddHoliday(ctx context.Context, req calendar.AddHolidayRequest) (calendar.SettingsResponse, error)
	RemoveHoliday(ctx context.Context, date string) (calendar.SettingsResponse, error)
	WorkingDays(ctx context.Context, year, month int) (calendar.Breakdown, error)

	// ResolveSettings returns the company's settings, falling back to the
	// documented defaults when none are stored. Never errors on absence.
	ResolveSettings(ctx context.Context, companyID string) calendar.Settings
}

type calendarServiceImpl struct {
	settingsRepo calendar.SettingsRepository
}

func NewCalendarService(settingsRepo calendar.SettingsRepository) CalendarService {
	return &calendarServiceImpl{settingsRepo: settingsRepo}
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func (s *calendarServiceImpl) GetSettings(ctx context.Context) (calendar.SettingsResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return calendar.SettingsResponse{}, err
	}

	return mapToSettingsResponse(s.ResolveSettings(ctx, companyID)), nil
}

func (s *calendarServiceImpl) UpdateSettings(ctx context.Context, req calendar.UpdateSettingsRequest) (calendar.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.SettingsResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return calendar.SettingsResponse{}, err
	}

	current := s.ResolveSettings(ctx, companyID)

	if req.SaturdayEnabled != nil {
		current.SaturdayEnabled = *req.SaturdayEnabled
	}
	if req.SaturdayType != nil {
		current.SaturdayType = calendar.SaturdayType(*req.SaturdayType)
	}
	if req.StartTime != nil {
		current.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		current.EndTime = *req.EndTime
	}

	updated, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return calendar.SettingsResponse{}, err
	}

	return mapToSettingsResponse(updated), nil
}

func (s *calendarServiceImpl) AddHoliday(ctx context.Context, req calendar.AddHolidayRequest) (calendar.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.SettingsResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return calendar.SettingsResponse{}, err
	}

	current := s.ResolveSettings(ctx, companyID)
	for _, h := range current.Holidays {
		if h.Date == req.Date {
			return calendar.SettingsResponse{}, calendar.ErrHolidayExists
		}
	}

	holidayType := req.Type
	if holidayType == "" {
		holidayType = "public"
	}
	current.Holidays = append(current.Holidays, calendar.Holiday{
		Date: req.Date,
		Name: req.Name,
		Type: holidayType,
	})

	updated, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return calendar.SettingsResponse{}, err
	}

	return mapToSettingsResponse(updated), nil
}

func (s *calendarServiceImpl) RemoveHoliday(ctx context.Context, date string) (calendar.SettingsResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return calendar.SettingsResponse{}, err
	}

	current := s.ResolveSettings(ctx, companyID)

	kept := current.Holidays[:0]
	found := false
	for _, h := range current.Holidays {
		if h.Date == date {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return calendar.SettingsResponse{}, calendar.ErrHolidayNotFound
	}
	current.Holidays = kept

	updated, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return calendar.SettingsResponse{}, err
	}

	return mapToSettingsResponse(updated), nil
}

func (s *calendarServiceImpl) WorkingDays(ctx context.Context, year, month int) (calendar.Breakdown, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return calendar.Breakdown{}, err
	}

	settings := s.ResolveSettings(ctx, companyID)
	return WorkingDays(year, month, settings.Holidays, settings.SaturdayEnabled, settings.SaturdayType)
}

func (s *calendarServiceImpl) ResolveSettings(ctx context.Context, companyID string) calendar.Settings {
	settings, err := s.settingsRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, calendar.ErrSettingsNotFound) {
			slog.Warn("Calendar settings lookup failed, using defaults", "company_id", companyID, "error", err)
		}
		return calendar.DefaultSettings(companyID)
	}
	return settings
}

func mapToSettingsResponse(s calendar.Settings) calendar.SettingsResponse {
	holidays := s.Holidays
	if holidays == nil {
		holidays = []calendar.Holiday{}
	}
	return calendar.SettingsResponse{
		CompanyID:       s.CompanyID,
		Holidays:        holidays,
		SaturdayEnabled: s.SaturdayEnabled,
		SaturdayType:    string(s.SaturdayType),
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
	}
}
