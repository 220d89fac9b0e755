package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	CompanyID   string
	FullName    string
	Position    string
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	FixedSalary bool
	// StartTime overrides the company office start time for this employee,
	// "HH:MM" wall clock.
	StartTime  *string
	AvatarURL  *string
	JoinedDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
