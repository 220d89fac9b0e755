package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeRepository is the read surface the payroll engine consumes.
// All methods are scoped by companyID to prevent cross-company data access.
// UpdateBasicSalary is the single write path and belongs to the increment
// activation sweep only.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	UpdateBasicSalary(ctx context.Context, id string, companyID string, newSalary decimal.Decimal) error
}
