package adjustment

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/employee"
)

// AdjustmentService gathers per-month monetary adjustments for payroll and
// manages the records that feed them.
type AdjustmentService interface {
	// Collect sums the adjustments applicable to one employee for one
	// "YYYY-MM" month: approved advances requested in that month, extra
	// payments tagged with it, and every active loan already running by it.
	Collect(ctx context.Context, employeeID string, companyID string, month string) (adjustment.Adjustments, error)

	CreateAdvance(ctx context.Context, req adjustment.CreateAdvanceRequest) (adjustment.Advance, error)
	ListAdvances(ctx context.Context) ([]adjustment.Advance, error)

	CreateLoan(ctx context.Context, req adjustment.CreateLoanRequest) (adjustment.Loan, error)
	ListLoans(ctx context.Context, employeeID string) ([]adjustment.Loan, error)
	UpdateLoanStatus(ctx context.Context, req adjustment.UpdateLoanStatusRequest) (adjustment.Loan, error)

	CreateExtraPayment(ctx context.Context, req adjustment.CreateExtraPaymentRequest) (adjustment.ExtraPayment, error)
	ListExtraPayments(ctx context.Context, employeeID string, month string) ([]adjustment.ExtraPayment, error)
}

type adjustmentServiceImpl struct {
	advanceRepo      adjustment.AdvanceRepository
	loanRepo         adjustment.LoanRepository
	extraPaymentRepo adjustment.ExtraPaymentRepository
	employeeRepo     employee.EmployeeRepository
}

func NewAdjustmentService(
	advanceRepo adjustment.AdvanceRepository,
	loanRepo adjustment.LoanRepository,
	extraPaymentRepo adjustment.ExtraPaymentRepository,
	employeeRepo employee.EmployeeRepository,
) AdjustmentService {
	return &adjustmentServiceImpl{
		advanceRepo:      advanceRepo,
		loanRepo:         loanRepo,
		extraPaymentRepo: extraPaymentRepo,
		employeeRepo:     employeeRepo,
	}
}

func claimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

func (s *adjustmentServiceImpl) Collect(ctx context.Context, employeeID string, companyID string, month string) (adjustment.Adjustments, error) {
	result := adjustment.Adjustments{
		AdvancesTotal:      decimal.Zero,
		ExtraPaymentsTotal: decimal.Zero,
		LoanDeduction:      decimal.Zero,
	}

	advances, err := s.advanceRepo.ListApprovedByEmployeeMonth(ctx, employeeID, companyID, month)
	if err != nil {
		return adjustment.Adjustments{}, fmt.Errorf("failed to collect advances: %w", err)
	}
	for _, adv := range advances {
		result.AdvancesTotal = result.AdvancesTotal.Add(adv.Amount)
	}

	extras, err := s.extraPaymentRepo.ListByEmployeeMonth(ctx, employeeID, companyID, month)
	if err != nil {
		return adjustment.Adjustments{}, fmt.Errorf("failed to collect extra payments: %w", err)
	}
	for _, ep := range extras {
		result.ExtraPaymentsTotal = result.ExtraPaymentsTotal.Add(ep.Amount)
	}

	// An active loan deducts every month from its start month until someone
	// closes it; string comparison works because months are "YYYY-MM".
	loans, err := s.loanRepo.ListActiveByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return adjustment.Adjustments{}, fmt.Errorf("failed to collect loans: %w", err)
	}
	for _, loan := range loans {
		if strings.Compare(loan.StartMonth, month) <= 0 {
			result.LoanDeduction = result.LoanDeduction.Add(loan.MonthlyDeduction)
		}
	}

	return result, nil
}

func (s *adjustmentServiceImpl) CreateAdvance(ctx context.Context, req adjustment.CreateAdvanceRequest) (adjustment.Advance, error) {
	if err := req.Validate(); err != nil {
		return adjustment.Advance{}, err
	}

	companyID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return adjustment.Advance{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return adjustment.Advance{}, err
	}

	return s.advanceRepo.Create(ctx, adjustment.Advance{
		CompanyID:    companyID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: emp.FullName,
		Amount:       req.Amount,
		RequestDate:  req.RequestDate,
		Reason:       req.Reason,
		Status:       adjustment.AdvanceStatusApproved,
		CreatedBy:    userID,
	})
}

func (s *adjustmentServiceImpl) ListAdvances(ctx context.Context) ([]adjustment.Advance, error) {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.advanceRepo.ListByCompanyID(ctx, companyID)
}

func (s *adjustmentServiceImpl) CreateLoan(ctx context.Context, req adjustment.CreateLoanRequest) (adjustment.Loan, error) {
	if err := req.Validate(); err != nil {
		return adjustment.Loan{}, err
	}

	companyID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return adjustment.Loan{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return adjustment.Loan{}, err
	}

	return s.loanRepo.Create(ctx, adjustment.Loan{
		CompanyID:        companyID,
		EmployeeID:       req.EmployeeID,
		EmployeeName:     emp.FullName,
		TotalAmount:      req.TotalAmount,
		MonthlyDeduction: req.MonthlyDeduction,
		StartMonth:       req.StartMonth,
		Reason:           req.Reason,
		Status:           adjustment.LoanStatusActive,
		CreatedBy:        userID,
	})
}

func (s *adjustmentServiceImpl) ListLoans(ctx context.Context, employeeID string) ([]adjustment.Loan, error) {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.loanRepo.ListByCompanyID(ctx, companyID, employeeID)
}

func (s *adjustmentServiceImpl) UpdateLoanStatus(ctx context.Context, req adjustment.UpdateLoanStatusRequest) (adjustment.Loan, error) {
	if err := req.Validate(); err != nil {
		return adjustment.Loan{}, err
	}

	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return adjustment.Loan{}, err
	}

	if err := s.loanRepo.UpdateStatus(ctx, req.ID, companyID, adjustment.LoanStatus(req.Status)); err != nil {
		return adjustment.Loan{}, err
	}

	return s.loanRepo.GetByID(ctx, req.ID, companyID)
}

func (s *adjustmentServiceImpl) CreateExtraPayment(ctx context.Context, req adjustment.CreateExtraPaymentRequest) (adjustment.ExtraPayment, error) {
	if err := req.Validate(); err != nil {
		return adjustment.ExtraPayment{}, err
	}

	companyID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return adjustment.ExtraPayment{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return adjustment.ExtraPayment{}, err
	}

	return s.extraPaymentRepo.Create(ctx, adjustment.ExtraPayment{
		CompanyID:    companyID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: emp.FullName,
		Amount:       req.Amount,
		Month:        req.Month,
		Description:  req.Description,
		CreatedBy:    userID,
	})
}

func (s *adjustmentServiceImpl) ListExtraPayments(ctx context.Context, employeeID string, month string) ([]adjustment.ExtraPayment, error) {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.extraPaymentRepo.ListByCompanyID(ctx, companyID, employeeID, month)
}
