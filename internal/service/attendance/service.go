package attendance

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/validator"
)

// AttendanceService exposes the read-only attendance input surface; writes
// (device import, manual punches) belong to the surrounding system.
type AttendanceService interface {
	ListByMonth(ctx context.Context, month string, employeeID string) ([]attendance.RecordResponse, error)
}

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) AttendanceService {
	return &attendanceServiceImpl{attendanceRepo: attendanceRepo}
}

func (s *attendanceServiceImpl) ListByMonth(ctx context.Context, month string, employeeID string) ([]attendance.RecordResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	var records []attendance.Record
	if employeeID != "" {
		records, err = s.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, companyID, month)
	} else {
		records, err = s.attendanceRepo.ListByCompanyMonth(ctx, companyID, month)
	}
	if err != nil {
		return nil, err
	}

	result := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, attendance.RecordResponse{
			ID:         rec.ID,
			EmployeeID: rec.EmployeeID,
			Date:       rec.Date,
			CheckIn:    rec.CheckIn,
			CheckOut:   rec.CheckOut,
			Status:     string(rec.Status),
		})
	}
	return result, nil
}
