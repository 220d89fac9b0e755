package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is the per-employee, per-month computation result. Generated
// batches are persisted; detailed and live reports are computed on demand and
// never stored.
type Statement struct {
	ID           string
	CompanyID    string
	EmployeeID   string
	EmployeeName string
	Position     string
	// Month is the statement period, "YYYY-MM".
	Month string

	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Earnings    decimal.Decimal

	WorkingDays     float64
	PresentDays     int
	LeaveDays       int
	HalfDays        int
	AllowedLeaves   int
	AllowedHalfDays int
	TotalMinutes    int
	TodayMinutes    int
	LateMinutes     int

	LateDeduction   decimal.Decimal
	Advances        decimal.Decimal
	OtherDeductions decimal.Decimal
	LoanDeduction   decimal.Decimal
	ExtraPayment    decimal.Decimal

	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	FixedSalary     bool
	SalaryPerMinute decimal.Decimal
	TodayEarnings   decimal.Decimal

	GeneratedBy string
	GeneratedAt time.Time
}

// StatementResult wraps one employee's outcome inside a batch; a failed
// employee carries Err and a zero Statement without aborting the batch.
type StatementResult struct {
	EmployeeID   string
	EmployeeName string
	Statement    Statement
	Err          error
}
