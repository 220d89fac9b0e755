package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/increment"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/database"
)

type incrementRepositoryImpl struct {
	db *database.DB
}

func NewIncrementRepository(db *database.DB) increment.IncrementRepository {
	return &incrementRepositoryImpl{db: db}
}

const incrementColumns = `
	id, company_id, employee_id, employee_name, old_salary, new_salary,
	increment_amount, effective_from, reason, status, created_by, created_by_name, created_at
`

func scanIncrement(row pgx.Row) (increment.Increment, error) {
	var inc increment.Increment
	err := row.Scan(
		&inc.ID, &inc.CompanyID, &inc.EmployeeID, &inc.EmployeeName,
		&inc.OldSalary, &inc.NewSalary, &inc.IncrementAmount,
		&inc.EffectiveFrom, &inc.Reason, &inc.Status,
		&inc.CreatedBy, &inc.CreatedByName, &inc.CreatedAt,
	)
	return inc, err
}

func (r *incrementRepositoryImpl) queryIncrements(ctx context.Context, query string, args ...any) ([]increment.Increment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var increments []increment.Increment
	for rows.Next() {
		inc, err := scanIncrement(rows)
		if err != nil {
			return nil, err
		}
		increments = append(increments, inc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return increments, nil
}

// Create implements increment.IncrementRepository.
func (r *incrementRepositoryImpl) Create(ctx context.Context, inc increment.Increment) (increment.Increment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_increments (
			company_id, employee_id, employee_name, old_salary, new_salary,
			increment_amount, effective_from, reason, status, created_by, created_by_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + incrementColumns + `
	`

	created, err := scanIncrement(q.QueryRow(ctx, query,
		inc.CompanyID, inc.EmployeeID, inc.EmployeeName, inc.OldSalary, inc.NewSalary,
		inc.IncrementAmount, inc.EffectiveFrom, inc.Reason, inc.Status,
		inc.CreatedBy, inc.CreatedByName,
	))
	if err != nil {
		return increment.Increment{}, fmt.Errorf("failed to create increment: %w", err)
	}

	return created, nil
}

// GetByID implements increment.IncrementRepository.
func (r *incrementRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (increment.Increment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + incrementColumns + `
		FROM salary_increments
		WHERE id = $1 AND company_id = $2
	`

	inc, err := scanIncrement(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return increment.Increment{}, increment.ErrIncrementNotFound
		}
		return increment.Increment{}, fmt.Errorf("failed to get increment by id: %w", err)
	}

	return inc, nil
}

// GetByEmployeeID implements increment.IncrementRepository.
func (r *incrementRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, companyID string) ([]increment.Increment, error) {
	query := `
		SELECT ` + incrementColumns + `
		FROM salary_increments
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY effective_from DESC, created_at DESC
	`
	return r.queryIncrements(ctx, query, employeeID, companyID)
}

// GetPendingByEmployeeID implements increment.IncrementRepository.
func (r *incrementRepositoryImpl) GetPendingByEmployeeID(ctx context.Context, employeeID string, companyID string) (increment.Increment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + incrementColumns + `
		FROM salary_increments
		WHERE employee_id = $1 AND company_id = $2 AND status = $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	inc, err := scanIncrement(q.QueryRow(ctx, query, employeeID, companyID, increment.StatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return increment.Increment{}, increment.ErrNoPendingIncrement
		}
		return increment.Increment{}, fmt.Errorf("failed to get pending increment: %w", err)
	}

	return inc, nil
}

// ListByCompanyID implements increment.IncrementRepository.
func (r *incrementRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]increment.Increment, error) {
	query := `
		SELECT ` + incrementColumns + `
		FROM salary_increments
		WHERE company_id = $1
		ORDER BY created_at DESC
	`
	return r.queryIncrements(ctx, query, companyID)
}

// ListPending implements increment.IncrementRepository.
func (r *incrementRepositoryImpl) ListPending(ctx context.Context, companyID string) ([]increment.Increment, error) {
	query := `
		SELECT ` + incrementColumns + `
		FROM salary_increments
		WHERE company_id = $1 AND status = $2
		ORDER BY effective_from ASC
	`
	return r.queryIncrements(ctx, query, companyID, increment.StatusPending)
}

// LatestEffective implements increment.IncrementRepository.
func (r *incrementRepositoryImpl) LatestEffective(ctx context.Context, employeeID string, companyID string, month string) (increment.Increment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + incrementColumns + `
		FROM salary_increments
		WHERE employee_id = $1 AND company_id = $2 AND effective_from <= $3
		ORDER BY effective_from DESC, created_at DESC
		LIMIT 1
	`

	inc, err := scanIncrement(q.QueryRow(ctx, query, employeeID, companyID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return increment.Increment{}, increment.ErrIncrementNotFound
		}
		return increment.Increment{}, fmt.Errorf("failed to resolve effective increment: %w", err)
	}

	return inc, nil
}

// ListActivatable implements increment.IncrementRepository.
func (r *incrementRepositoryImpl) ListActivatable(ctx context.Context, companyID string, month string) ([]increment.Increment, error) {
	// Empty companyID means the sweep runs across all companies (cron path).
	if companyID == "" {
		query := `
			SELECT ` + incrementColumns + `
			FROM salary_increments
			WHERE status = $1 AND effective_from <= $2
			ORDER BY effective_from ASC
		`
		return r.queryIncrements(ctx, query, increment.StatusPending, month)
	}

	query := `
		SELECT ` + incrementColumns + `
		FROM salary_increments
		WHERE company_id = $1 AND status = $2 AND effective_from <= $3
		ORDER BY effective_from ASC
	`
	return r.queryIncrements(ctx, query, companyID, increment.StatusPending, month)
}

// Activate implements increment.IncrementRepository. The status guard in the
// WHERE clause makes the pending->active transition a compare-and-swap, so
// concurrent sweeps activate each increment at most once.
func (r *incrementRepositoryImpl) Activate(ctx context.Context, id string, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_increments
		SET status = $1
		WHERE id = $2 AND company_id = $3 AND status = $4
	`

	tag, err := q.Exec(ctx, query, increment.StatusActive, id, companyID, increment.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to activate increment %s: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}
