package increment

import (
	"github.com/shopspring/decimal"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/validator"
)

type AddIncrementRequest struct {
	EmployeeID    string          `json:"-"`
	NewSalary     decimal.Decimal `json:"new_salary"`
	EffectiveFrom string          `json:"effective_from"`
	Reason        string          `json:"reason,omitempty"`
}

func (r *AddIncrementRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.NewSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "new_salary", Message: "must be positive"})
	}
	if !validator.IsValidMonth(r.EffectiveFrom) {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IncrementResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	OldSalary       decimal.Decimal `json:"old_salary"`
	NewSalary       decimal.Decimal `json:"new_salary"`
	IncrementAmount decimal.Decimal `json:"increment_amount"`
	EffectiveFrom   string          `json:"effective_from"`
	Reason          string          `json:"reason,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"created_at"`
}

type ActivationResult struct {
	ActivatedCount int `json:"activated_count"`
}
