package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdvanceStatus enum
type AdvanceStatus string

const (
	AdvanceStatusPending  AdvanceStatus = "pending"
	AdvanceStatusApproved AdvanceStatus = "approved"
	AdvanceStatusRejected AdvanceStatus = "rejected"
)

// Advance is a salary advance deducted from the month its request date falls
// in. Only approved advances count.
type Advance struct {
	ID           string
	CompanyID    string
	EmployeeID   string
	EmployeeName string
	Amount       decimal.Decimal
	// RequestDate scopes the advance to a month, "YYYY-MM-DD".
	RequestDate string
	Reason      string
	Status      AdvanceStatus
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LoanStatus enum
type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "active"
	LoanStatusClosed    LoanStatus = "closed"
	LoanStatusCancelled LoanStatus = "cancelled"
)

// Loan deducts MonthlyDeduction every month from StartMonth onward until it
// is manually closed or cancelled. There is deliberately no remaining-balance
// exhaustion check; closing a loan is an explicit HR action.
type Loan struct {
	ID               string
	CompanyID        string
	EmployeeID       string
	EmployeeName     string
	TotalAmount      decimal.Decimal
	MonthlyDeduction decimal.Decimal
	// StartMonth is the first month the deduction applies, "YYYY-MM".
	StartMonth string
	Reason     string
	Status     LoanStatus
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ExtraPayment is an ad-hoc addition tagged to exactly one month.
type ExtraPayment struct {
	ID           string
	CompanyID    string
	EmployeeID   string
	EmployeeName string
	Amount       decimal.Decimal
	// Month the payment belongs to, "YYYY-MM".
	Month       string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Adjustments is the collected per-employee, per-month result consumed by the
// payroll calculator.
type Adjustments struct {
	AdvancesTotal      decimal.Decimal
	ExtraPaymentsTotal decimal.Decimal
	LoanDeduction      decimal.Decimal
}
