package adjustment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/adjustment"
)

type fakeAdvanceRepo struct {
	advances []adjustment.Advance
}

func (r *fakeAdvanceRepo) Create(_ context.Context, adv adjustment.Advance) (adjustment.Advance, error) {
	r.advances = append(r.advances, adv)
	return adv, nil
}

func (r *fakeAdvanceRepo) ListByCompanyID(_ context.Context, companyID string) ([]adjustment.Advance, error) {
	return r.advances, nil
}

func (r *fakeAdvanceRepo) ListApprovedByEmployeeMonth(_ context.Context, employeeID string, companyID string, month string) ([]adjustment.Advance, error) {
	var out []adjustment.Advance
	for _, adv := range r.advances {
		if adv.EmployeeID == employeeID && adv.CompanyID == companyID &&
			adv.Status == adjustment.AdvanceStatusApproved && len(adv.RequestDate) >= 7 && adv.RequestDate[:7] == month {
			out = append(out, adv)
		}
	}
	return out, nil
}

type fakeLoanRepo struct {
	loans []adjustment.Loan
}

func (r *fakeLoanRepo) Create(_ context.Context, loan adjustment.Loan) (adjustment.Loan, error) {
	r.loans = append(r.loans, loan)
	return loan, nil
}

func (r *fakeLoanRepo) GetByID(_ context.Context, id string, companyID string) (adjustment.Loan, error) {
	for _, loan := range r.loans {
		if loan.ID == id {
			return loan, nil
		}
	}
	return adjustment.Loan{}, adjustment.ErrLoanNotFound
}

func (r *fakeLoanRepo) ListByCompanyID(_ context.Context, companyID string, employeeID string) ([]adjustment.Loan, error) {
	return r.loans, nil
}

func (r *fakeLoanRepo) ListActiveByEmployee(_ context.Context, employeeID string, companyID string) ([]adjustment.Loan, error) {
	var out []adjustment.Loan
	for _, loan := range r.loans {
		if loan.EmployeeID == employeeID && loan.CompanyID == companyID && loan.Status == adjustment.LoanStatusActive {
			out = append(out, loan)
		}
	}
	return out, nil
}

func (r *fakeLoanRepo) UpdateStatus(_ context.Context, id string, companyID string, status adjustment.LoanStatus) error {
	for i := range r.loans {
		if r.loans[i].ID == id {
			r.loans[i].Status = status
			return nil
		}
	}
	return adjustment.ErrLoanNotFound
}

type fakeExtraPaymentRepo struct {
	payments []adjustment.ExtraPayment
}

func (r *fakeExtraPaymentRepo) Create(_ context.Context, ep adjustment.ExtraPayment) (adjustment.ExtraPayment, error) {
	r.payments = append(r.payments, ep)
	return ep, nil
}

func (r *fakeExtraPaymentRepo) ListByCompanyID(_ context.Context, companyID string, employeeID string, month string) ([]adjustment.ExtraPayment, error) {
	return r.payments, nil
}

func (r *fakeExtraPaymentRepo) ListByEmployeeMonth(_ context.Context, employeeID string, companyID string, month string) ([]adjustment.ExtraPayment, error) {
	var out []adjustment.ExtraPayment
	for _, ep := range r.payments {
		if ep.EmployeeID == employeeID && ep.CompanyID == companyID && ep.Month == month {
			out = append(out, ep)
		}
	}
	return out, nil
}

func newCollectService(advances []adjustment.Advance, loans []adjustment.Loan, payments []adjustment.ExtraPayment) AdjustmentService {
	return NewAdjustmentService(
		&fakeAdvanceRepo{advances: advances},
		&fakeLoanRepo{loans: loans},
		&fakeExtraPaymentRepo{payments: payments},
		nil,
	)
}

func TestCollectEmpty(t *testing.T) {
	t.Parallel()

	svc := newCollectService(nil, nil, nil)

	got, err := svc.Collect(context.Background(), "emp-1", "co-1", "2024-04")
	require.NoError(t, err)

	assert.True(t, got.AdvancesTotal.IsZero())
	assert.True(t, got.ExtraPaymentsTotal.IsZero())
	assert.True(t, got.LoanDeduction.IsZero())
}

func TestCollectAdvancesOnlyApprovedInMonth(t *testing.T) {
	t.Parallel()

	svc := newCollectService([]adjustment.Advance{
		{
			EmployeeID: "emp-1", CompanyID: "co-1",
			Amount: decimal.NewFromInt(500), RequestDate: "2024-04-10",
			Status: adjustment.AdvanceStatusApproved,
		},
		{
			EmployeeID: "emp-1", CompanyID: "co-1",
			Amount: decimal.NewFromInt(300), RequestDate: "2024-04-20",
			Status: adjustment.AdvanceStatusApproved,
		},
		{
			// Pending advances never deduct.
			EmployeeID: "emp-1", CompanyID: "co-1",
			Amount: decimal.NewFromInt(900), RequestDate: "2024-04-25",
			Status: adjustment.AdvanceStatusPending,
		},
		{
			// A different month.
			EmployeeID: "emp-1", CompanyID: "co-1",
			Amount: decimal.NewFromInt(700), RequestDate: "2024-03-10",
			Status: adjustment.AdvanceStatusApproved,
		},
	}, nil, nil)

	got, err := svc.Collect(context.Background(), "emp-1", "co-1", "2024-04")
	require.NoError(t, err)
	assert.True(t, got.AdvancesTotal.Equal(decimal.NewFromInt(800)))
}

func TestCollectLoansFromStartMonth(t *testing.T) {
	t.Parallel()

	loans := []adjustment.Loan{
		{
			EmployeeID: "emp-1", CompanyID: "co-1",
			MonthlyDeduction: decimal.NewFromInt(1000), StartMonth: "2024-02",
			Status: adjustment.LoanStatusActive,
		},
		{
			// Starts after the target month.
			EmployeeID: "emp-1", CompanyID: "co-1",
			MonthlyDeduction: decimal.NewFromInt(2000), StartMonth: "2024-06",
			Status: adjustment.LoanStatusActive,
		},
		{
			// Closed loans stop deducting.
			EmployeeID: "emp-1", CompanyID: "co-1",
			MonthlyDeduction: decimal.NewFromInt(500), StartMonth: "2024-01",
			Status: adjustment.LoanStatusClosed,
		},
	}
	svc := newCollectService(nil, loans, nil)

	got, err := svc.Collect(context.Background(), "emp-1", "co-1", "2024-04")
	require.NoError(t, err)
	assert.True(t, got.LoanDeduction.Equal(decimal.NewFromInt(1000)))

	// The same active loan deducts again in a later month.
	later, err := svc.Collect(context.Background(), "emp-1", "co-1", "2024-07")
	require.NoError(t, err)
	assert.True(t, later.LoanDeduction.Equal(decimal.NewFromInt(3000)))
}

func TestCollectExtraPaymentsByMonthTag(t *testing.T) {
	t.Parallel()

	svc := newCollectService(nil, nil, []adjustment.ExtraPayment{
		{EmployeeID: "emp-1", CompanyID: "co-1", Amount: decimal.NewFromInt(250), Month: "2024-04"},
		{EmployeeID: "emp-1", CompanyID: "co-1", Amount: decimal.NewFromInt(150), Month: "2024-04"},
		{EmployeeID: "emp-1", CompanyID: "co-1", Amount: decimal.NewFromInt(999), Month: "2024-05"},
	})

	got, err := svc.Collect(context.Background(), "emp-1", "co-1", "2024-04")
	require.NoError(t, err)
	assert.True(t, got.ExtraPaymentsTotal.Equal(decimal.NewFromInt(400)))
}
