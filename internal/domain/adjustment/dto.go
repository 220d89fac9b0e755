package adjustment

import (
	"github.com/shopspring/decimal"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	RequestDate string          `json:"request_date"`
	Reason      string          `json:"reason,omitempty"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.RequestDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "request_date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLoanRequest struct {
	EmployeeID       string          `json:"employee_id"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	MonthlyDeduction decimal.Decimal `json:"monthly_deduction"`
	StartMonth       string          `json:"start_month"`
	Reason           string          `json:"reason,omitempty"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.TotalAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must be positive"})
	}
	if !r.MonthlyDeduction.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_deduction", Message: "must be positive"})
	}
	if !validator.IsValidMonth(r.StartMonth) {
		errs = append(errs, validator.ValidationError{Field: "start_month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLoanStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateLoanStatusRequest) Validate() error {
	switch LoanStatus(r.Status) {
	case LoanStatusActive, LoanStatusClosed, LoanStatusCancelled:
		return nil
	}
	return validator.ValidationErrors{{Field: "status", Message: "must be 'active', 'closed' or 'cancelled'"}}
}

type CreateExtraPaymentRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	Month       string          `json:"month"`
	Description string          `json:"description,omitempty"`
}

func (r *CreateExtraPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
