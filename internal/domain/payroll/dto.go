package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/validator"
)

type GenerateRequest struct {
	Month string `json:"month"`
}

func (r *GenerateRequest) Validate() error {
	if !validator.IsValidMonth(r.Month) {
		return validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}
	return nil
}

type StatementResponse struct {
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	Position        string          `json:"position"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	Allowances      decimal.Decimal `json:"allowances"`
	Earnings        decimal.Decimal `json:"earnings"`
	WorkingDays     float64         `json:"working_days"`
	PresentDays     int             `json:"present_days"`
	LeaveDays       int             `json:"leave_days"`
	HalfDays        int             `json:"half_days"`
	AllowedLeaves   int             `json:"allowed_leaves"`
	AllowedHalfDays int             `json:"allowed_half_days"`
	TotalMinutes    int             `json:"total_attendance_minutes"`
	TodayMinutes    int             `json:"today_minutes,omitempty"`
	LateMinutes     int             `json:"late_minutes"`
	LateDeduction   decimal.Decimal `json:"late_deduction"`
	Advances        decimal.Decimal `json:"advances"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	LoanDeduction   decimal.Decimal `json:"loan_deduction"`
	ExtraPayment    decimal.Decimal `json:"extra_payment"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	FixedSalary     bool            `json:"fixed_salary"`
	SalaryPerMinute decimal.Decimal `json:"salary_per_minute"`
	TodayEarnings   decimal.Decimal `json:"today_earnings"`
	Error           string          `json:"error,omitempty"`
}

// DetailedReport is the non-persisted rich breakdown for one month.
type DetailedReport struct {
	Month           string              `json:"month"`
	Timestamp       string              `json:"timestamp"`
	Employees       []StatementResponse `json:"employees"`
	TotalGross      decimal.Decimal     `json:"total_gross"`
	TotalNet        decimal.Decimal     `json:"total_net"`
	TotalDeductions decimal.Decimal     `json:"total_deductions"`
	TotalAllowances decimal.Decimal     `json:"total_allowances"`
}

// LiveReport extends the detailed shape with today's earned wages, computed
// with "now" as the evaluation cursor.
type LiveReport struct {
	DetailedReport
	TodayTotalEarnings decimal.Decimal `json:"today_total_earnings"`
}

type GenerateResponse struct {
	Month         string              `json:"month"`
	EmployeeCount int                 `json:"employee_count"`
	FailedCount   int                 `json:"failed_count"`
	Statements    []StatementResponse `json:"statements"`
}

// MonthSummary is one row of the payroll months listing.
type MonthSummary struct {
	Month         string          `json:"month"`
	TotalSalary   decimal.Decimal `json:"total_salary"`
	EmployeeCount int             `json:"employee_count"`
}
