package increment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
)

// Increment is an immutable salary history record. Payroll for past months is
// resolved through this ledger, never through the employee's mutable
// basic_salary field.
type Increment struct {
	ID              string
	CompanyID       string
	EmployeeID      string
	EmployeeName    string
	OldSalary       decimal.Decimal
	NewSalary       decimal.Decimal
	IncrementAmount decimal.Decimal
	// EffectiveFrom is the first month the new salary applies, "YYYY-MM".
	EffectiveFrom string
	Reason        string
	Status        Status
	CreatedBy     string
	CreatedByName string
	CreatedAt     time.Time
}
