package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/zentra-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/employee"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/clock"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/validator"
	adjustmentService "github.com/zentra-hr/payroll-backend-go/internal/service/adjustment"
	attendanceService "github.com/zentra-hr/payroll-backend-go/internal/service/attendance"
	calendarService "github.com/zentra-hr/payroll-backend-go/internal/service/calendar"
	salaryService "github.com/zentra-hr/payroll-backend-go/internal/service/salary"
)

// computeConcurrency bounds the per-employee fan-out of a batch computation.
const computeConcurrency = 8

type PayrollService interface {
	// GenerateMonthly computes and persists statements for every active
	// employee; per-employee failures are reported in the response and never
	// abort the batch.
	GenerateMonthly(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResponse, error)

	// ListStatements returns previously generated statements.
	ListStatements(ctx context.Context, month string, employeeID string) ([]payroll.StatementResponse, error)

	// DetailedReport computes the full breakdown for a month on demand,
	// without persisting anything.
	DetailedReport(ctx context.Context, month string) (payroll.DetailedReport, error)

	// LiveReport is DetailedReport for the current month with "now" as the
	// evaluation cursor, plus today's earned wages. Pure read, safe to poll.
	LiveReport(ctx context.Context) (payroll.LiveReport, error)

	// Months lists every month with attendance data plus the current one,
	// with net salary totals.
	Months(ctx context.Context) ([]payroll.MonthSummary, error)
}

type payrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	salarySvc      salaryService.SalaryService
	adjustmentSvc  adjustmentService.AdjustmentService
	calendarSvc    calendarService.CalendarService
	clk            clock.Clock
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	salarySvc salaryService.SalaryService,
	adjustmentSvc adjustmentService.AdjustmentService,
	calendarSvc calendarService.CalendarService,
	clk clock.Clock,
) PayrollService {
	return &payrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		salarySvc:      salarySvc,
		adjustmentSvc:  adjustmentSvc,
		calendarSvc:    calendarSvc,
		clk:            clk,
	}
}

func claimsFromContext(ctx context.Context) (companyID, userID, userName string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)
	userName, _ = claims["name"].(string)

	return companyID, userID, userName, nil
}

// computeCompanyMonth runs the full engine for one company and month:
// calendar -> per-employee (salary history, attendance aggregate,
// adjustments) -> statement. Employees are computed concurrently; each
// result lands in its own slot so no accumulator is shared.
func (s *payrollServiceImpl) computeCompanyMonth(ctx context.Context, companyID string, month string, now time.Time) ([]payroll.StatementResult, error) {
	monthStart, err := time.ParseInLocation("2006-01", month, now.Location())
	if err != nil {
		return nil, payroll.ErrInvalidMonth
	}

	settings := s.calendarSvc.ResolveSettings(ctx, companyID)
	breakdown, err := calendarService.WorkingDays(
		monthStart.Year(), int(monthStart.Month()),
		settings.Holidays, settings.SaturdayEnabled, settings.SaturdayType,
	)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	workingHours := settings.WorkingHoursPerDay()
	officeStart, ok := validator.ParseClock(settings.StartTime)
	if !ok {
		officeStart, _ = validator.ParseClock("09:00")
	}
	isCurrentMonth := month == clock.MonthKey(now)

	results := make([]payroll.StatementResult, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(computeConcurrency)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			st, err := s.computeEmployee(gctx, emp, month, breakdown.WorkingDays, workingHours, officeStart, isCurrentMonth, now)
			results[i] = payroll.StatementResult{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName,
				Statement:    st,
				Err:          err,
			}
			// Individual failures stay in their slot; the group never
			// cancels siblings.
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *payrollServiceImpl) computeEmployee(
	ctx context.Context,
	emp employee.Employee,
	month string,
	workingDays float64,
	workingHours float64,
	officeStart int,
	isCurrentMonth bool,
	now time.Time,
) (payroll.Statement, error) {
	basicSalary, err := s.salarySvc.EffectiveSalary(ctx, emp.ID, emp.CompanyID, month)
	if err != nil {
		return payroll.Statement{}, fmt.Errorf("failed to resolve effective salary: %w", err)
	}

	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, emp.ID, emp.CompanyID, month)
	if err != nil {
		return payroll.Statement{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	shiftStart := officeStart
	if emp.StartTime != nil {
		if m, ok := validator.ParseClock(*emp.StartTime); ok {
			shiftStart = m
		}
	}
	summary := attendanceService.Aggregate(records, attendanceService.Shift{
		StartMinutes:  shiftStart,
		MinutesPerDay: int(workingHours * 60),
	}, now, month, emp.FixedSalary)

	adjustments, err := s.adjustmentSvc.Collect(ctx, emp.ID, emp.CompanyID, month)
	if err != nil {
		return payroll.Statement{}, err
	}

	return Compute(ComputeInput{
		Employee:           emp,
		Month:              month,
		BasicSalary:        basicSalary,
		WorkingDays:        workingDays,
		WorkingHoursPerDay: workingHours,
		Attendance:         summary,
		Adjustments:        adjustments,
		IsCurrentMonth:     isCurrentMonth,
		Now:                now,
	}), nil
}

func (s *payrollServiceImpl) GenerateMonthly(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResponse{}, err
	}

	companyID, _, userName, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.GenerateResponse{}, err
	}

	now := s.clk.Now()
	results, err := s.computeCompanyMonth(ctx, companyID, req.Month, now)
	if err != nil {
		return payroll.GenerateResponse{}, err
	}

	resp := payroll.GenerateResponse{Month: req.Month}
	for _, res := range results {
		if res.Err != nil {
			slog.Error("Payroll generation failed for employee",
				"employee_id", res.EmployeeID,
				"month", req.Month,
				"error", res.Err,
			)
			resp.FailedCount++
			resp.Statements = append(resp.Statements, payroll.StatementResponse{
				EmployeeID:   res.EmployeeID,
				EmployeeName: res.EmployeeName,
				Error:        res.Err.Error(),
			})
			continue
		}

		st := res.Statement
		st.GeneratedBy = userName
		st.GeneratedAt = now

		if _, err := s.payrollRepo.UpsertStatement(ctx, st); err != nil {
			slog.Error("Failed to persist payroll statement",
				"employee_id", res.EmployeeID,
				"month", req.Month,
				"error", err,
			)
			resp.FailedCount++
			resp.Statements = append(resp.Statements, payroll.StatementResponse{
				EmployeeID:   res.EmployeeID,
				EmployeeName: res.EmployeeName,
				Error:        err.Error(),
			})
			continue
		}

		resp.EmployeeCount++
		resp.Statements = append(resp.Statements, mapToStatementResponse(st))
	}

	return resp, nil
}

func (s *payrollServiceImpl) ListStatements(ctx context.Context, month string, employeeID string) ([]payroll.StatementResponse, error) {
	companyID, _, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if month != "" && !validator.IsValidMonth(month) {
		return nil, payroll.ErrInvalidMonth
	}

	statements, err := s.payrollRepo.ListStatements(ctx, companyID, month, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.StatementResponse, 0, len(statements))
	for _, st := range statements {
		result = append(result, mapToStatementResponse(st))
	}
	return result, nil
}

func (s *payrollServiceImpl) DetailedReport(ctx context.Context, month string) (payroll.DetailedReport, error) {
	companyID, _, _, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.DetailedReport{}, err
	}

	if !validator.IsValidMonth(month) {
		return payroll.DetailedReport{}, payroll.ErrInvalidMonth
	}

	return s.buildReport(ctx, companyID, month, s.clk.Now())
}

func (s *payrollServiceImpl) LiveReport(ctx context.Context) (payroll.LiveReport, error) {
	companyID, _, _, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.LiveReport{}, err
	}

	now := s.clk.Now()
	report, err := s.buildReport(ctx, companyID, clock.MonthKey(now), now)
	if err != nil {
		return payroll.LiveReport{}, err
	}

	todayTotal := decimal.Zero
	for _, emp := range report.Employees {
		todayTotal = todayTotal.Add(emp.TodayEarnings)
	}

	return payroll.LiveReport{
		DetailedReport:     report,
		TodayTotalEarnings: todayTotal.Round(2),
	}, nil
}

func (s *payrollServiceImpl) buildReport(ctx context.Context, companyID string, month string, now time.Time) (payroll.DetailedReport, error) {
	results, err := s.computeCompanyMonth(ctx, companyID, month, now)
	if err != nil {
		return payroll.DetailedReport{}, err
	}

	report := payroll.DetailedReport{
		Month:           month,
		Timestamp:       now.Format(time.RFC3339),
		Employees:       make([]payroll.StatementResponse, 0, len(results)),
		TotalGross:      decimal.Zero,
		TotalNet:        decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalAllowances: decimal.Zero,
	}

	for _, res := range results {
		if res.Err != nil {
			slog.Warn("Payroll computation failed for employee",
				"employee_id", res.EmployeeID,
				"month", month,
				"error", res.Err,
			)
			report.Employees = append(report.Employees, payroll.StatementResponse{
				EmployeeID:   res.EmployeeID,
				EmployeeName: res.EmployeeName,
				Error:        res.Err.Error(),
			})
			continue
		}

		st := res.Statement
		report.Employees = append(report.Employees, mapToStatementResponse(st))
		report.TotalGross = report.TotalGross.Add(st.GrossSalary)
		report.TotalNet = report.TotalNet.Add(st.NetSalary)
		report.TotalDeductions = report.TotalDeductions.Add(st.TotalDeductions)
		report.TotalAllowances = report.TotalAllowances.Add(st.Allowances)
	}

	return report, nil
}

func (s *payrollServiceImpl) Months(ctx context.Context) ([]payroll.MonthSummary, error) {
	companyID, _, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	months, err := s.attendanceRepo.DistinctMonths(ctx, companyID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	currentMonth := clock.MonthKey(now)
	seen := make(map[string]bool, len(months)+1)
	for _, m := range months {
		seen[m] = true
	}
	if !seen[currentMonth] {
		months = append(months, currentMonth)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.MonthSummary, 0, len(months))
	for _, month := range months {
		report, err := s.buildReport(ctx, companyID, month, now)
		if err != nil {
			return nil, err
		}
		result = append(result, payroll.MonthSummary{
			Month:         month,
			TotalSalary:   report.TotalNet.Round(2),
			EmployeeCount: len(employees),
		})
	}

	return result, nil
}

func mapToStatementResponse(st payroll.Statement) payroll.StatementResponse {
	return payroll.StatementResponse{
		EmployeeID:      st.EmployeeID,
		EmployeeName:    st.EmployeeName,
		Position:        st.Position,
		BasicSalary:     st.BasicSalary,
		Allowances:      st.Allowances,
		Earnings:        st.Earnings,
		WorkingDays:     st.WorkingDays,
		PresentDays:     st.PresentDays,
		LeaveDays:       st.LeaveDays,
		HalfDays:        st.HalfDays,
		AllowedLeaves:   st.AllowedLeaves,
		AllowedHalfDays: st.AllowedHalfDays,
		TotalMinutes:    st.TotalMinutes,
		TodayMinutes:    st.TodayMinutes,
		LateMinutes:     st.LateMinutes,
		LateDeduction:   st.LateDeduction,
		Advances:        st.Advances,
		OtherDeductions: st.OtherDeductions,
		LoanDeduction:   st.LoanDeduction,
		ExtraPayment:    st.ExtraPayment,
		GrossSalary:     st.GrossSalary,
		TotalDeductions: st.TotalDeductions,
		NetSalary:       st.NetSalary,
		FixedSalary:     st.FixedSalary,
		SalaryPerMinute: st.SalaryPerMinute,
		TodayEarnings:   st.TodayEarnings,
	}
}
