package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/employee"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/increment"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/clock"
)

// SalaryService resolves effective salaries from the increment ledger and
// owns the increment lifecycle, including the pending->active sweep that is
// the only writer of employee basic_salary.
type SalaryService interface {
	// EffectiveSalary returns the salary that applied during month
	// ("YYYY-MM"), reconstructed from increment history. Past months stay
	// stable no matter what later increments did to the live record.
	EffectiveSalary(ctx context.Context, employeeID string, companyID string, month string) (decimal.Decimal, error)

	AddIncrement(ctx context.Context, req increment.AddIncrementRequest) (increment.IncrementResponse, error)
	ListEmployeeIncrements(ctx context.Context, employeeID string) ([]increment.IncrementResponse, error)
	PendingIncrement(ctx context.Context, employeeID string) (*increment.IncrementResponse, error)
	ListIncrements(ctx context.Context, pendingOnly bool) ([]increment.IncrementResponse, error)

	// ActivatePending sweeps the calling company's due increments.
	ActivatePending(ctx context.Context) (increment.ActivationResult, error)

	// ActivateDue sweeps all companies; used by the cron scheduler.
	ActivateDue(ctx context.Context) (int, error)
}

type salaryServiceImpl struct {
	incrementRepo increment.IncrementRepository
	employeeRepo  employee.EmployeeRepository
	clk           clock.Clock
}

func NewSalaryService(
	incrementRepo increment.IncrementRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) SalaryService {
	return &salaryServiceImpl{
		incrementRepo: incrementRepo,
		employeeRepo:  employeeRepo,
		clk:           clk,
	}
}

func claimsFromContext(ctx context.Context) (companyID, userID, userName string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)
	userName, _ = claims["name"].(string)

	return companyID, userID, userName, nil
}

func (s *salaryServiceImpl) EffectiveSalary(ctx context.Context, employeeID string, companyID string, month string) (decimal.Decimal, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return decimal.Zero, err
	}

	inc, err := s.incrementRepo.LatestEffective(ctx, employeeID, companyID, month)
	if err != nil {
		if errors.Is(err, increment.ErrIncrementNotFound) {
			return emp.BasicSalary, nil
		}
		return decimal.Zero, err
	}

	return inc.NewSalary, nil
}

func (s *salaryServiceImpl) AddIncrement(ctx context.Context, req increment.AddIncrementRequest) (increment.IncrementResponse, error) {
	if err := req.Validate(); err != nil {
		return increment.IncrementResponse{}, err
	}

	companyID, userID, userName, err := claimsFromContext(ctx)
	if err != nil {
		return increment.IncrementResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return increment.IncrementResponse{}, err
	}

	// One pending increment per employee at a time.
	if _, err := s.incrementRepo.GetPendingByEmployeeID(ctx, req.EmployeeID, companyID); err == nil {
		return increment.IncrementResponse{}, increment.ErrPendingIncrementExists
	} else if !errors.Is(err, increment.ErrNoPendingIncrement) {
		return increment.IncrementResponse{}, err
	}

	currentMonth := clock.MonthKey(s.clk.Now())
	status := increment.StatusPending
	applyNow := req.EffectiveFrom <= currentMonth
	if applyNow {
		status = increment.StatusActive
	}

	inc := increment.Increment{
		CompanyID:       companyID,
		EmployeeID:      req.EmployeeID,
		EmployeeName:    emp.FullName,
		OldSalary:       emp.BasicSalary,
		NewSalary:       req.NewSalary,
		IncrementAmount: req.NewSalary.Sub(emp.BasicSalary),
		EffectiveFrom:   req.EffectiveFrom,
		Reason:          req.Reason,
		Status:          status,
		CreatedBy:       userID,
		CreatedByName:   userName,
	}

	created, err := s.incrementRepo.Create(ctx, inc)
	if err != nil {
		return increment.IncrementResponse{}, err
	}

	if applyNow {
		if err := s.employeeRepo.UpdateBasicSalary(ctx, req.EmployeeID, companyID, req.NewSalary); err != nil {
			return increment.IncrementResponse{}, fmt.Errorf("failed to apply increment to employee: %w", err)
		}
		slog.Info("Salary increment applied immediately",
			"employee_id", req.EmployeeID,
			"effective_from", req.EffectiveFrom,
		)
	}

	return mapToIncrementResponse(created), nil
}

func (s *salaryServiceImpl) ListEmployeeIncrements(ctx context.Context, employeeID string) ([]increment.IncrementResponse, error) {
	companyID, _, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	incs, err := s.incrementRepo.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return nil, err
	}

	return mapToIncrementResponses(incs), nil
}

func (s *salaryServiceImpl) PendingIncrement(ctx context.Context, employeeID string) (*increment.IncrementResponse, error) {
	companyID, _, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	inc, err := s.incrementRepo.GetPendingByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, increment.ErrNoPendingIncrement) {
			return nil, nil
		}
		return nil, err
	}

	resp := mapToIncrementResponse(inc)
	return &resp, nil
}

func (s *salaryServiceImpl) ListIncrements(ctx context.Context, pendingOnly bool) ([]increment.IncrementResponse, error) {
	companyID, _, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var incs []increment.Increment
	if pendingOnly {
		incs, err = s.incrementRepo.ListPending(ctx, companyID)
	} else {
		incs, err = s.incrementRepo.ListByCompanyID(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	return mapToIncrementResponses(incs), nil
}

func (s *salaryServiceImpl) ActivatePending(ctx context.Context) (increment.ActivationResult, error) {
	companyID, _, _, err := claimsFromContext(ctx)
	if err != nil {
		return increment.ActivationResult{}, err
	}

	count, err := s.activate(ctx, companyID)
	if err != nil {
		return increment.ActivationResult{}, err
	}

	return increment.ActivationResult{ActivatedCount: count}, nil
}

func (s *salaryServiceImpl) ActivateDue(ctx context.Context) (int, error) {
	return s.activate(ctx, "")
}

// activate promotes due pending increments. The repository's conditional
// Activate guarantees each increment flips pending->active exactly once even
// when sweeps race; basic_salary is only written by the sweep that won.
func (s *salaryServiceImpl) activate(ctx context.Context, companyID string) (int, error) {
	currentMonth := clock.MonthKey(s.clk.Now())

	due, err := s.incrementRepo.ListActivatable(ctx, companyID, currentMonth)
	if err != nil {
		return 0, err
	}

	activated := 0
	for _, inc := range due {
		won, err := s.incrementRepo.Activate(ctx, inc.ID, inc.CompanyID)
		if err != nil {
			slog.Error("Failed to activate increment", "increment_id", inc.ID, "error", err)
			continue
		}
		if !won {
			continue
		}

		if err := s.employeeRepo.UpdateBasicSalary(ctx, inc.EmployeeID, inc.CompanyID, inc.NewSalary); err != nil {
			slog.Error("Failed to apply activated increment", "increment_id", inc.ID, "employee_id", inc.EmployeeID, "error", err)
			continue
		}

		slog.Info("Activated salary increment",
			"employee_id", inc.EmployeeID,
			"effective_from", inc.EffectiveFrom,
		)
		activated++
	}

	return activated, nil
}

func mapToIncrementResponse(inc increment.Increment) increment.IncrementResponse {
	return increment.IncrementResponse{
		ID:              inc.ID,
		EmployeeID:      inc.EmployeeID,
		EmployeeName:    inc.EmployeeName,
		OldSalary:       inc.OldSalary,
		NewSalary:       inc.NewSalary,
		IncrementAmount: inc.IncrementAmount,
		EffectiveFrom:   inc.EffectiveFrom,
		Reason:          inc.Reason,
		Status:          string(inc.Status),
		CreatedAt:       inc.CreatedAt.Format(time.RFC3339),
	}
}

func mapToIncrementResponses(incs []increment.Increment) []increment.IncrementResponse {
	result := make([]increment.IncrementResponse, 0, len(incs))
	for _, inc := range incs {
		result = append(result, mapToIncrementResponse(inc))
	}
	return result
}
