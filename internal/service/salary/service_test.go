package salary

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/employee"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/increment"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/clock"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	updates   map[string]decimal.Decimal
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{
		employees: make(map[string]employee.Employee),
		updates:   make(map[string]decimal.Decimal),
	}
	for _, e := range emps {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok || e.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetActiveByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) UpdateBasicSalary(_ context.Context, id string, companyID string, newSalary decimal.Decimal) error {
	e, ok := r.employees[id]
	if !ok || e.CompanyID != companyID {
		return employee.ErrEmployeeNotFound
	}
	e.BasicSalary = newSalary
	r.employees[id] = e
	r.updates[id] = newSalary
	return nil
}

type fakeIncrementRepo struct {
	increments []increment.Increment
}

func (r *fakeIncrementRepo) Create(_ context.Context, inc increment.Increment) (increment.Increment, error) {
	inc.ID = "inc-" + inc.EffectiveFrom
	inc.CreatedAt = time.Now()
	r.increments = append(r.increments, inc)
	return inc, nil
}

func (r *fakeIncrementRepo) GetByID(_ context.Context, id string, companyID string) (increment.Increment, error) {
	for _, inc := range r.increments {
		if inc.ID == id && inc.CompanyID == companyID {
			return inc, nil
		}
	}
	return increment.Increment{}, increment.ErrIncrementNotFound
}

func (r *fakeIncrementRepo) GetByEmployeeID(_ context.Context, employeeID string, companyID string) ([]increment.Increment, error) {
	var out []increment.Increment
	for _, inc := range r.increments {
		if inc.EmployeeID == employeeID && inc.CompanyID == companyID {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (r *fakeIncrementRepo) GetPendingByEmployeeID(_ context.Context, employeeID string, companyID string) (increment.Increment, error) {
	for _, inc := range r.increments {
		if inc.EmployeeID == employeeID && inc.CompanyID == companyID && inc.Status == increment.StatusPending {
			return inc, nil
		}
	}
	return increment.Increment{}, increment.ErrNoPendingIncrement
}

func (r *fakeIncrementRepo) ListByCompanyID(_ context.Context, companyID string) ([]increment.Increment, error) {
	var out []increment.Increment
	for _, inc := range r.increments {
		if inc.CompanyID == companyID {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (r *fakeIncrementRepo) ListPending(_ context.Context, companyID string) ([]increment.Increment, error) {
	var out []increment.Increment
	for _, inc := range r.increments {
		if inc.CompanyID == companyID && inc.Status == increment.StatusPending {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (r *fakeIncrementRepo) LatestEffective(_ context.Context, employeeID string, companyID string, month string) (increment.Increment, error) {
	var best *increment.Increment
	for i := range r.increments {
		inc := &r.increments[i]
		if inc.EmployeeID != employeeID || inc.CompanyID != companyID || inc.EffectiveFrom > month {
			continue
		}
		if best == nil || inc.EffectiveFrom > best.EffectiveFrom ||
			(inc.EffectiveFrom == best.EffectiveFrom && inc.CreatedAt.After(best.CreatedAt)) {
			best = inc
		}
	}
	if best == nil {
		return increment.Increment{}, increment.ErrIncrementNotFound
	}
	return *best, nil
}

func (r *fakeIncrementRepo) ListActivatable(_ context.Context, companyID string, month string) ([]increment.Increment, error) {
	var out []increment.Increment
	for _, inc := range r.increments {
		if companyID != "" && inc.CompanyID != companyID {
			continue
		}
		if inc.Status == increment.StatusPending && inc.EffectiveFrom <= month {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (r *fakeIncrementRepo) Activate(_ context.Context, id string, companyID string) (bool, error) {
	for i := range r.increments {
		if r.increments[i].ID == id && r.increments[i].CompanyID == companyID {
			if r.increments[i].Status != increment.StatusPending {
				return false, nil
			}
			r.increments[i].Status = increment.StatusActive
			return true, nil
		}
	}
	return false, nil
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:          "emp-1",
		CompanyID:   "co-1",
		FullName:    "Asha Verma",
		BasicSalary: decimal.NewFromInt(26000),
	}
}

func TestEffectiveSalaryNoHistory(t *testing.T) {
	t.Parallel()

	svc := NewSalaryService(&fakeIncrementRepo{}, newFakeEmployeeRepo(testEmployee()),
		clock.Fixed{At: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)})

	got, err := svc.EffectiveSalary(context.Background(), "emp-1", "co-1", "2024-04")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(26000)))
}

func TestEffectiveSalaryUsesLatestApplicableIncrement(t *testing.T) {
	t.Parallel()

	incRepo := &fakeIncrementRepo{increments: []increment.Increment{
		{
			ID: "a", CompanyID: "co-1", EmployeeID: "emp-1",
			NewSalary: decimal.NewFromInt(28000), EffectiveFrom: "2024-02",
			Status: increment.StatusActive, CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "b", CompanyID: "co-1", EmployeeID: "emp-1",
			NewSalary: decimal.NewFromInt(31000), EffectiveFrom: "2024-05",
			Status: increment.StatusActive, CreatedAt: time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewSalaryService(incRepo, newFakeEmployeeRepo(testEmployee()),
		clock.Fixed{At: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)})

	// History stability: April still pays the February increment even though a
	// later increment exists.
	april, err := svc.EffectiveSalary(context.Background(), "emp-1", "co-1", "2024-04")
	require.NoError(t, err)
	assert.True(t, april.Equal(decimal.NewFromInt(28000)))

	may, err := svc.EffectiveSalary(context.Background(), "emp-1", "co-1", "2024-05")
	require.NoError(t, err)
	assert.True(t, may.Equal(decimal.NewFromInt(31000)))

	// Before any increment applied, the live basic salary is the answer.
	january, err := svc.EffectiveSalary(context.Background(), "emp-1", "co-1", "2024-01")
	require.NoError(t, err)
	assert.True(t, january.Equal(decimal.NewFromInt(26000)))
}

func TestActivateDuePromotesAndWritesSalary(t *testing.T) {
	t.Parallel()

	empRepo := newFakeEmployeeRepo(testEmployee())
	incRepo := &fakeIncrementRepo{increments: []increment.Increment{
		{
			ID: "due", CompanyID: "co-1", EmployeeID: "emp-1",
			NewSalary: decimal.NewFromInt(30000), EffectiveFrom: "2024-06",
			Status: increment.StatusPending,
		},
		{
			ID: "future", CompanyID: "co-1", EmployeeID: "emp-1",
			NewSalary: decimal.NewFromInt(35000), EffectiveFrom: "2024-09",
			Status: increment.StatusPending,
		},
	}}
	svc := NewSalaryService(incRepo, empRepo,
		clock.Fixed{At: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)})

	count, err := svc.ActivateDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, increment.StatusActive, incRepo.increments[0].Status)
	assert.Equal(t, increment.StatusPending, incRepo.increments[1].Status)
	assert.True(t, empRepo.updates["emp-1"].Equal(decimal.NewFromInt(30000)))
}

func TestActivateDueIsIdempotent(t *testing.T) {
	t.Parallel()

	empRepo := newFakeEmployeeRepo(testEmployee())
	incRepo := &fakeIncrementRepo{increments: []increment.Increment{
		{
			ID: "due", CompanyID: "co-1", EmployeeID: "emp-1",
			NewSalary: decimal.NewFromInt(30000), EffectiveFrom: "2024-06",
			Status: increment.StatusPending,
		},
	}}
	svc := NewSalaryService(incRepo, empRepo,
		clock.Fixed{At: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)})

	first, err := svc.ActivateDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	// A second sweep finds nothing pending and activates nothing.
	second, err := svc.ActivateDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second)
}
