package attendance

import "context"

// AttendanceRepository is the read-only input surface for payroll. Attendance
// writes (device import, manual entry) live in the surrounding system.
type AttendanceRepository interface {
	ListByEmployeeMonth(ctx context.Context, employeeID string, companyID string, month string) ([]Record, error)
	ListByCompanyMonth(ctx context.Context, companyID string, month string) ([]Record, error)

	// DistinctMonths returns every "YYYY-MM" month that has at least one
	// attendance record for the company, newest first.
	DistinctMonths(ctx context.Context, companyID string) ([]string, error)
}
