package adjustment

import "context"

type AdvanceRepository interface {
	Create(ctx context.Context, adv Advance) (Advance, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Advance, error)

	// ListApprovedByEmployeeMonth returns approved advances whose request
	// date falls within the given "YYYY-MM" month.
	ListApprovedByEmployeeMonth(ctx context.Context, employeeID string, companyID string, month string) ([]Advance, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan Loan) (Loan, error)
	GetByID(ctx context.Context, id string, companyID string) (Loan, error)
	ListByCompanyID(ctx context.Context, companyID string, employeeID string) ([]Loan, error)
	ListActiveByEmployee(ctx context.Context, employeeID string, companyID string) ([]Loan, error)
	UpdateStatus(ctx context.Context, id string, companyID string, status LoanStatus) error
}

type ExtraPaymentRepository interface {
	Create(ctx context.Context, ep ExtraPayment) (ExtraPayment, error)
	ListByCompanyID(ctx context.Context, companyID string, employeeID string, month string) ([]ExtraPayment, error)
	ListByEmployeeMonth(ctx context.Context, employeeID string, companyID string, month string) ([]ExtraPayment, error)
}
