package calendar

import (
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/validator"
)

type SettingsResponse struct {
	CompanyID       string    `json:"company_id"`
	Holidays        []Holiday `json:"holidays"`
	SaturdayEnabled bool      `json:"saturday_enabled"`
	SaturdayType    string    `json:"saturday_type"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
}

type UpdateSettingsRequest struct {
	SaturdayEnabled *bool   `json:"saturday_enabled,omitempty"`
	SaturdayType    *string `json:"saturday_type,omitempty"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SaturdayType != nil && *r.SaturdayType != string(SaturdayTypeFull) && *r.SaturdayType != string(SaturdayTypeHalf) {
		errs = append(errs, validator.ValidationError{Field: "saturday_type", Message: "must be 'full' or 'half'"})
	}
	if r.StartTime != nil && !validator.IsValidClock(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be in HH:MM format"})
	}
	if r.EndTime != nil && !validator.IsValidClock(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be in HH:MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

func (r *AddHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.Name == "" {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
