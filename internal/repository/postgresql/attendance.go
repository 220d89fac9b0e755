package postgresql

import (
	"context"

	"github.com/zentra-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, company_id, employee_id, date, check_in, check_out, status, created_at, updated_at
`

func (r *attendanceRepositoryImpl) queryRecords(ctx context.Context, query string, args ...any) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.CompanyID, &rec.EmployeeID, &rec.Date,
			&rec.CheckIn, &rec.CheckOut, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByEmployeeMonth implements attendance.AttendanceRepository. The date
// column is "YYYY-MM-DD" text, so a prefix match scopes it to one month.
func (r *attendanceRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, companyID string, month string) ([]attendance.Record, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND company_id = $2 AND date LIKE $3 || '-%'
		ORDER BY date ASC, check_in ASC NULLS LAST
	`
	return r.queryRecords(ctx, query, employeeID, companyID, month)
}

// ListByCompanyMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByCompanyMonth(ctx context.Context, companyID string, month string) ([]attendance.Record, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE company_id = $1 AND date LIKE $2 || '-%'
		ORDER BY employee_id ASC, date ASC
	`
	return r.queryRecords(ctx, query, companyID, month)
}

// DistinctMonths implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DistinctMonths(ctx context.Context, companyID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT LEFT(date, 7) AS month
		FROM attendance_records
		WHERE company_id = $1
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var months []string
	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, err
		}
		months = append(months, month)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return months, nil
}
