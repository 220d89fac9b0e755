package response

import (
	"errors"
	"net/http"

	"github.com/zentra-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/calendar"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/employee"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/increment"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Increment domain errors
	case errors.Is(err, increment.ErrIncrementNotFound):
		NotFound(w, "Salary increment not found")
	case errors.Is(err, increment.ErrNoPendingIncrement):
		NotFound(w, "No pending increment for this employee")
	case errors.Is(err, increment.ErrPendingIncrementExists):
		Conflict(w, "Employee already has a pending increment")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, adjustment.ErrLoanNotFound):
		NotFound(w, "Loan not found")
	case errors.Is(err, adjustment.ErrExtraPaymentNotFound):
		NotFound(w, "Extra payment not found")
	case errors.Is(err, adjustment.ErrInvalidLoanStatus):
		BadRequest(w, "Invalid loan status", nil)

	// Calendar domain errors
	case errors.Is(err, calendar.ErrSettingsNotFound):
		NotFound(w, "Calendar settings not found")
	case errors.Is(err, calendar.ErrInvalidPeriod):
		BadRequest(w, "Invalid year/month", nil)
	case errors.Is(err, calendar.ErrHolidayExists):
		Conflict(w, "Holiday already exists for this date")
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrStatementNotFound):
		NotFound(w, "Payroll statement not found")
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
