package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/employee"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/payroll"
	attendanceService "github.com/zentra-hr/payroll-backend-go/internal/service/attendance"
)

// ComputeInput carries everything one employee-month statement needs. The
// calculator itself is pure: no repository access, no clock reads beyond Now.
type ComputeInput struct {
	Employee employee.Employee
	// Month is the statement period, "YYYY-MM".
	Month string
	// BasicSalary is the effective salary for Month, resolved from the
	// increment ledger, not the employee's live field.
	BasicSalary decimal.Decimal
	WorkingDays float64
	// WorkingHoursPerDay is the expected shift length from calendar settings.
	WorkingHoursPerDay float64
	Attendance         attendanceService.Summary
	Adjustments        adjustment.Adjustments
	IsCurrentMonth     bool
	// Now is the evaluation instant; only used when IsCurrentMonth.
	Now time.Time
}

// Compute produces a payroll statement for one employee and one month.
//
// Fixed-salary employees earn their full basic salary for completed months
// and a wall-clock pro-ration of it for the in-progress month; attendance
// never changes the amount. Non-fixed employees earn strictly by worked
// minutes at basic/workingDays/officeMinutes, with late arrival deducted at
// the same rate. Allowances never enter gross; they are added at the net
// stage (pro-rated for fixed employees in the current month, full otherwise).
func Compute(in ComputeInput) payroll.Statement {
	officeMinutesPerDay := in.WorkingHoursPerDay * 60

	// Zero working days or a zero-length shift would divide by zero; the
	// engine degrades to a zero rate instead of failing the statement.
	salaryPerMinute := decimal.Zero
	if in.WorkingDays > 0 && officeMinutesPerDay > 0 {
		salaryPerMinute = in.BasicSalary.
			Div(decimal.NewFromFloat(in.WorkingDays)).
			Div(decimal.NewFromFloat(officeMinutesPerDay))
	}

	allowances := in.Employee.Allowances
	var earnings, allowancesToAdd, lateDeduction, todayEarnings decimal.Decimal

	if in.Employee.FixedSalary {
		lateDeduction = decimal.Zero
		todayEarnings = decimal.Zero
		if in.IsCurrentMonth {
			ratio := elapsedMonthRatio(in.Now)
			earnings = in.BasicSalary.Mul(ratio)
			allowancesToAdd = allowances.Mul(ratio)
		} else {
			earnings = in.BasicSalary
			allowancesToAdd = allowances
		}
	} else {
		earnings = decimal.NewFromInt(int64(in.Attendance.TotalMinutes)).Mul(salaryPerMinute)
		allowancesToAdd = allowances
		lateDeduction = decimal.NewFromInt(int64(in.Attendance.LateMinutes)).Mul(salaryPerMinute)
		todayEarnings = decimal.NewFromInt(int64(in.Attendance.TodayMinutes)).Mul(salaryPerMinute)
	}

	// Allowances are excluded from gross and only added at the net stage.
	grossSalary := earnings.Add(in.Adjustments.ExtraPaymentsTotal)
	totalDeductions := lateDeduction.
		Add(in.Adjustments.AdvancesTotal).
		Add(in.Employee.Deductions).
		Add(in.Adjustments.LoanDeduction)
	netSalary := grossSalary.Add(allowancesToAdd).Sub(totalDeductions)

	return payroll.Statement{
		CompanyID:       in.Employee.CompanyID,
		EmployeeID:      in.Employee.ID,
		EmployeeName:    in.Employee.FullName,
		Position:        in.Employee.Position,
		Month:           in.Month,
		BasicSalary:     in.BasicSalary.Round(2),
		Allowances:      allowancesToAdd.Round(2),
		Earnings:        earnings.Round(2),
		WorkingDays:     in.WorkingDays,
		PresentDays:     in.Attendance.PresentDays,
		LeaveDays:       in.Attendance.LeaveDays,
		HalfDays:        in.Attendance.HalfDays,
		AllowedLeaves:   in.Attendance.AllowedLeaves,
		AllowedHalfDays: in.Attendance.AllowedHalfDays,
		TotalMinutes:    in.Attendance.TotalMinutes,
		TodayMinutes:    in.Attendance.TodayMinutes,
		LateMinutes:     in.Attendance.LateMinutes,
		LateDeduction:   lateDeduction.Round(2),
		Advances:        in.Adjustments.AdvancesTotal.Round(2),
		OtherDeductions: in.Employee.Deductions.Round(2),
		LoanDeduction:   in.Adjustments.LoanDeduction.Round(2),
		ExtraPayment:    in.Adjustments.ExtraPaymentsTotal.Round(2),
		GrossSalary:     grossSalary.Round(2),
		TotalDeductions: totalDeductions.Round(2),
		NetSalary:       netSalary.Round(2),
		FixedSalary:     in.Employee.FixedSalary,
		SalaryPerMinute: salaryPerMinute.Round(4),
		TodayEarnings:   todayEarnings.Round(2),
	}
}

// elapsedMonthRatio is the fraction of the month's wall-clock time that has
// passed at t: ((day-1)*24 + hours-of-today) / (daysInMonth*24).
func elapsedMonthRatio(t time.Time) decimal.Decimal {
	daysInMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).
		AddDate(0, 1, -1).Day()

	hoursPassed := float64((t.Day()-1)*24) +
		float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600
	hoursInMonth := float64(daysInMonth * 24)

	return decimal.NewFromFloat(hoursPassed).Div(decimal.NewFromFloat(hoursInMonth))
}
