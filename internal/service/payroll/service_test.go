package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/calendar"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/employee"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/increment"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/clock"
	adjustmentService "github.com/zentra-hr/payroll-backend-go/internal/service/adjustment"
	calendarService "github.com/zentra-hr/payroll-backend-go/internal/service/calendar"
	salaryService "github.com/zentra-hr/payroll-backend-go/internal/service/salary"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetActiveByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) UpdateBasicSalary(_ context.Context, id string, companyID string, newSalary decimal.Decimal) error {
	return nil
}

type fakeIncrementRepo struct{}

func (fakeIncrementRepo) Create(_ context.Context, inc increment.Increment) (increment.Increment, error) {
	return inc, nil
}
func (fakeIncrementRepo) GetByID(_ context.Context, _, _ string) (increment.Increment, error) {
	return increment.Increment{}, increment.ErrIncrementNotFound
}
func (fakeIncrementRepo) GetByEmployeeID(_ context.Context, _, _ string) ([]increment.Increment, error) {
	return nil, nil
}
func (fakeIncrementRepo) GetPendingByEmployeeID(_ context.Context, _, _ string) (increment.Increment, error) {
	return increment.Increment{}, increment.ErrNoPendingIncrement
}
func (fakeIncrementRepo) ListByCompanyID(_ context.Context, _ string) ([]increment.Increment, error) {
	return nil, nil
}
func (fakeIncrementRepo) ListPending(_ context.Context, _ string) ([]increment.Increment, error) {
	return nil, nil
}
func (fakeIncrementRepo) LatestEffective(_ context.Context, _, _, _ string) (increment.Increment, error) {
	return increment.Increment{}, increment.ErrIncrementNotFound
}
func (fakeIncrementRepo) ListActivatable(_ context.Context, _, _ string) ([]increment.Increment, error) {
	return nil, nil
}
func (fakeIncrementRepo) Activate(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
	months  []string
}

func (r *fakeAttendanceRepo) ListByEmployeeMonth(_ context.Context, employeeID string, companyID string, month string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.CompanyID == companyID && len(rec.Date) >= 7 && rec.Date[:7] == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListByCompanyMonth(_ context.Context, companyID string, month string) ([]attendance.Record, error) {
	return r.records, nil
}

func (r *fakeAttendanceRepo) DistinctMonths(_ context.Context, companyID string) ([]string, error) {
	return r.months, nil
}

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) GetByCompanyID(_ context.Context, companyID string) (calendar.Settings, error) {
	return calendar.Settings{}, calendar.ErrSettingsNotFound
}

func (fakeSettingsRepo) Upsert(_ context.Context, s calendar.Settings) (calendar.Settings, error) {
	return s, nil
}

type fakeAdvanceRepo struct{}

func (fakeAdvanceRepo) Create(_ context.Context, adv adjustment.Advance) (adjustment.Advance, error) {
	return adv, nil
}
func (fakeAdvanceRepo) ListByCompanyID(_ context.Context, _ string) ([]adjustment.Advance, error) {
	return nil, nil
}
func (fakeAdvanceRepo) ListApprovedByEmployeeMonth(_ context.Context, _, _, _ string) ([]adjustment.Advance, error) {
	return nil, nil
}

type fakeLoanRepo struct{}

func (fakeLoanRepo) Create(_ context.Context, loan adjustment.Loan) (adjustment.Loan, error) {
	return loan, nil
}
func (fakeLoanRepo) GetByID(_ context.Context, _, _ string) (adjustment.Loan, error) {
	return adjustment.Loan{}, adjustment.ErrLoanNotFound
}
func (fakeLoanRepo) ListByCompanyID(_ context.Context, _, _ string) ([]adjustment.Loan, error) {
	return nil, nil
}
func (fakeLoanRepo) ListActiveByEmployee(_ context.Context, _, _ string) ([]adjustment.Loan, error) {
	return nil, nil
}
func (fakeLoanRepo) UpdateStatus(_ context.Context, _, _ string, _ adjustment.LoanStatus) error {
	return nil
}

type fakeExtraPaymentRepo struct{}

func (fakeExtraPaymentRepo) Create(_ context.Context, ep adjustment.ExtraPayment) (adjustment.ExtraPayment, error) {
	return ep, nil
}
func (fakeExtraPaymentRepo) ListByCompanyID(_ context.Context, _, _, _ string) ([]adjustment.ExtraPayment, error) {
	return nil, nil
}
func (fakeExtraPaymentRepo) ListByEmployeeMonth(_ context.Context, _, _, _ string) ([]adjustment.ExtraPayment, error) {
	return nil, nil
}

type fakePayrollRepo struct {
	saved []payroll.Statement
}

func (r *fakePayrollRepo) UpsertStatement(_ context.Context, st payroll.Statement) (payroll.Statement, error) {
	for i := range r.saved {
		if r.saved[i].EmployeeID == st.EmployeeID && r.saved[i].Month == st.Month {
			r.saved[i] = st
			return st, nil
		}
	}
	r.saved = append(r.saved, st)
	return st, nil
}

func (r *fakePayrollRepo) ListStatements(_ context.Context, companyID string, month string, employeeID string) ([]payroll.Statement, error) {
	return r.saved, nil
}

func authedContext(t *testing.T) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{
		"user_id":    "user-1",
		"company_id": "co-1",
		"name":       "Payroll Admin",
		"type":       "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), tok, nil)
}

func strPtr(s string) *string { return &s }

func newTestService(empRepo *fakeEmployeeRepo, attRepo *fakeAttendanceRepo, payRepo *fakePayrollRepo, clk clock.Clock) PayrollService {
	calendarSvc := calendarService.NewCalendarService(fakeSettingsRepo{})
	salarySvc := salaryService.NewSalaryService(fakeIncrementRepo{}, empRepo, clk)
	adjustmentSvc := adjustmentService.NewAdjustmentService(
		&fakeAdvanceRepo{}, &fakeLoanRepo{}, &fakeExtraPaymentRepo{}, empRepo,
	)
	return NewPayrollService(payRepo, empRepo, attRepo, salarySvc, adjustmentSvc, calendarSvc, clk)
}

func TestGenerateMonthlyPastMonth(t *testing.T) {
	t.Parallel()

	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{
			ID: "emp-1", CompanyID: "co-1", FullName: "Asha Verma",
			BasicSalary: decimal.NewFromInt(26000),
			Allowances:  decimal.Zero, Deductions: decimal.Zero,
		},
		{
			ID: "emp-2", CompanyID: "co-1", FullName: "Ravi Nair",
			BasicSalary: decimal.NewFromInt(30000),
			Allowances:  decimal.Zero, Deductions: decimal.Zero,
			FixedSalary: true,
		},
	}}
	attRepo := &fakeAttendanceRepo{records: []attendance.Record{
		{
			CompanyID: "co-1", EmployeeID: "emp-1", Date: "2024-04-01",
			CheckIn:  strPtr("2024-04-01T09:00:00"),
			CheckOut: strPtr("2024-04-01T17:00:00"),
			Status:   attendance.StatusPresent,
		},
	}}
	payRepo := &fakePayrollRepo{}
	clk := clock.Fixed{At: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	svc := newTestService(empRepo, attRepo, payRepo, clk)

	resp, err := svc.GenerateMonthly(authedContext(t), payroll.GenerateRequest{Month: "2024-04"})
	require.NoError(t, err)

	assert.Equal(t, "2024-04", resp.Month)
	assert.Equal(t, 2, resp.EmployeeCount)
	assert.Equal(t, 0, resp.FailedCount)
	require.Len(t, payRepo.saved, 2)

	byID := make(map[string]payroll.StatementResponse)
	for _, st := range resp.Statements {
		byID[st.EmployeeID] = st
	}

	// Non-fixed: one 8h day at 26000/26/480 per minute.
	assert.Equal(t, "1000.00", byID["emp-1"].NetSalary.StringFixed(2))
	assert.Equal(t, float64(26), byID["emp-1"].WorkingDays)

	// Fixed salary for a completed month is paid in full, attendance or not.
	assert.Equal(t, "30000.00", byID["emp-2"].NetSalary.StringFixed(2))

	for _, st := range payRepo.saved {
		assert.Equal(t, "Payroll Admin", st.GeneratedBy)
	}
}

func TestGenerateMonthlyInvalidMonth(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakePayrollRepo{},
		clock.Fixed{At: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)})

	_, err := svc.GenerateMonthly(authedContext(t), payroll.GenerateRequest{Month: "April 2024"})
	assert.Error(t, err)
}

func TestLiveReportSumsTodayEarnings(t *testing.T) {
	t.Parallel()

	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{
			ID: "emp-1", CompanyID: "co-1", FullName: "Asha Verma",
			BasicSalary: decimal.NewFromInt(26000),
			Allowances:  decimal.Zero, Deductions: decimal.Zero,
		},
		{
			ID: "emp-2", CompanyID: "co-1", FullName: "Ravi Nair",
			BasicSalary: decimal.NewFromInt(30000),
			Allowances:  decimal.Zero, Deductions: decimal.Zero,
			FixedSalary: true,
		},
	}}
	attRepo := &fakeAttendanceRepo{records: []attendance.Record{
		{
			// Open record, still accruing.
			CompanyID: "co-1", EmployeeID: "emp-1", Date: "2024-04-15",
			CheckIn: strPtr("2024-04-15T09:00:00"),
			Status:  attendance.StatusPresent,
		},
	}}
	clk := clock.Fixed{At: time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)}

	svc := newTestService(empRepo, attRepo, &fakePayrollRepo{}, clk)

	report, err := svc.LiveReport(authedContext(t))
	require.NoError(t, err)

	assert.Equal(t, "2024-04", report.Month)
	require.Len(t, report.Employees, 2)

	// 180 open minutes at 26000/26/480; the fixed employee contributes none.
	assert.Equal(t, "375.00", report.TodayTotalEarnings.StringFixed(2))
}

func TestMonthsIncludesCurrentMonth(t *testing.T) {
	t.Parallel()

	attRepo := &fakeAttendanceRepo{months: []string{"2024-03", "2024-02"}}
	clk := clock.Fixed{At: time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)}

	svc := newTestService(&fakeEmployeeRepo{}, attRepo, &fakePayrollRepo{}, clk)

	months, err := svc.Months(authedContext(t))
	require.NoError(t, err)

	require.Len(t, months, 3)
	assert.Equal(t, "2024-04", months[0].Month)
	assert.Equal(t, "2024-03", months[1].Month)
	assert.Equal(t, "2024-02", months[2].Month)
}
