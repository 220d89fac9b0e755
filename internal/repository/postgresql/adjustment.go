package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/database"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) adjustment.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

const advanceColumns = `
	id, company_id, employee_id, employee_name, amount, request_date,
	reason, status, created_by, created_at, updated_at
`

func scanAdvance(row pgx.Row) (adjustment.Advance, error) {
	var adv adjustment.Advance
	err := row.Scan(
		&adv.ID, &adv.CompanyID, &adv.EmployeeID, &adv.EmployeeName,
		&adv.Amount, &adv.RequestDate, &adv.Reason, &adv.Status,
		&adv.CreatedBy, &adv.CreatedAt, &adv.UpdatedAt,
	)
	return adv, err
}

// Create implements adjustment.AdvanceRepository.
func (r *advanceRepositoryImpl) Create(ctx context.Context, adv adjustment.Advance) (adjustment.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_advances (
			company_id, employee_id, employee_name, amount, request_date, reason, status, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + advanceColumns + `
	`

	created, err := scanAdvance(q.QueryRow(ctx, query,
		adv.CompanyID, adv.EmployeeID, adv.EmployeeName, adv.Amount,
		adv.RequestDate, adv.Reason, adv.Status, adv.CreatedBy,
	))
	if err != nil {
		return adjustment.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return created, nil
}

// ListByCompanyID implements adjustment.AdvanceRepository.
func (r *advanceRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]adjustment.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM salary_advances
		WHERE company_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var advances []adjustment.Advance
	for rows.Next() {
		adv, err := scanAdvance(rows)
		if err != nil {
			return nil, err
		}
		advances = append(advances, adv)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return advances, nil
}

// ListApprovedByEmployeeMonth implements adjustment.AdvanceRepository. The
// request_date column is "YYYY-MM-DD" text, so a prefix match scopes it to the
// month the advance deducts from.
func (r *advanceRepositoryImpl) ListApprovedByEmployeeMonth(ctx context.Context, employeeID string, companyID string, month string) ([]adjustment.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM salary_advances
		WHERE employee_id = $1 AND company_id = $2 AND status = $3 AND request_date LIKE $4 || '-%'
		ORDER BY request_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, adjustment.AdvanceStatusApproved, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var advances []adjustment.Advance
	for rows.Next() {
		adv, err := scanAdvance(rows)
		if err != nil {
			return nil, err
		}
		advances = append(advances, adv)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return advances, nil
}

type loanRepositoryImpl struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) adjustment.LoanRepository {
	return &loanRepositoryImpl{db: db}
}

const loanColumns = `
	id, company_id, employee_id, employee_name, total_amount, monthly_deduction,
	start_month, reason, status, created_by, created_at, updated_at
`

func scanLoan(row pgx.Row) (adjustment.Loan, error) {
	var loan adjustment.Loan
	err := row.Scan(
		&loan.ID, &loan.CompanyID, &loan.EmployeeID, &loan.EmployeeName,
		&loan.TotalAmount, &loan.MonthlyDeduction, &loan.StartMonth,
		&loan.Reason, &loan.Status, &loan.CreatedBy, &loan.CreatedAt, &loan.UpdatedAt,
	)
	return loan, err
}

func (r *loanRepositoryImpl) queryLoans(ctx context.Context, query string, args ...any) ([]adjustment.Loan, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []adjustment.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loans, nil
}

// Create implements adjustment.LoanRepository.
func (r *loanRepositoryImpl) Create(ctx context.Context, loan adjustment.Loan) (adjustment.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_loans (
			company_id, employee_id, employee_name, total_amount, monthly_deduction,
			start_month, reason, status, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + loanColumns + `
	`

	created, err := scanLoan(q.QueryRow(ctx, query,
		loan.CompanyID, loan.EmployeeID, loan.EmployeeName, loan.TotalAmount,
		loan.MonthlyDeduction, loan.StartMonth, loan.Reason, loan.Status, loan.CreatedBy,
	))
	if err != nil {
		return adjustment.Loan{}, fmt.Errorf("failed to create loan: %w", err)
	}

	return created, nil
}

// GetByID implements adjustment.LoanRepository.
func (r *loanRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (adjustment.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanColumns + `
		FROM salary_loans
		WHERE id = $1 AND company_id = $2
	`

	loan, err := scanLoan(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.Loan{}, adjustment.ErrLoanNotFound
		}
		return adjustment.Loan{}, fmt.Errorf("failed to get loan by id: %w", err)
	}

	return loan, nil
}

// ListByCompanyID implements adjustment.LoanRepository.
func (r *loanRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string, employeeID string) ([]adjustment.Loan, error) {
	if employeeID != "" {
		query := `
			SELECT ` + loanColumns + `
			FROM salary_loans
			WHERE company_id = $1 AND employee_id = $2
			ORDER BY created_at DESC
		`
		return r.queryLoans(ctx, query, companyID, employeeID)
	}

	query := `
		SELECT ` + loanColumns + `
		FROM salary_loans
		WHERE company_id = $1
		ORDER BY created_at DESC
	`
	return r.queryLoans(ctx, query, companyID)
}

// ListActiveByEmployee implements adjustment.LoanRepository.
func (r *loanRepositoryImpl) ListActiveByEmployee(ctx context.Context, employeeID string, companyID string) ([]adjustment.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM salary_loans
		WHERE employee_id = $1 AND company_id = $2 AND status = $3
		ORDER BY start_month ASC
	`
	return r.queryLoans(ctx, query, employeeID, companyID, adjustment.LoanStatusActive)
}

// UpdateStatus implements adjustment.LoanRepository.
func (r *loanRepositoryImpl) UpdateStatus(ctx context.Context, id string, companyID string, status adjustment.LoanStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_loans
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, id, companyID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.ErrLoanNotFound
		}
		return fmt.Errorf("failed to update loan status for %s: %w", id, err)
	}

	return nil
}

type extraPaymentRepositoryImpl struct {
	db *database.DB
}

func NewExtraPaymentRepository(db *database.DB) adjustment.ExtraPaymentRepository {
	return &extraPaymentRepositoryImpl{db: db}
}

const extraPaymentColumns = `
	id, company_id, employee_id, employee_name, amount, month, description,
	created_by, created_at, updated_at
`

func scanExtraPayment(row pgx.Row) (adjustment.ExtraPayment, error) {
	var ep adjustment.ExtraPayment
	err := row.Scan(
		&ep.ID, &ep.CompanyID, &ep.EmployeeID, &ep.EmployeeName,
		&ep.Amount, &ep.Month, &ep.Description,
		&ep.CreatedBy, &ep.CreatedAt, &ep.UpdatedAt,
	)
	return ep, err
}

func (r *extraPaymentRepositoryImpl) queryExtraPayments(ctx context.Context, query string, args ...any) ([]adjustment.ExtraPayment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []adjustment.ExtraPayment
	for rows.Next() {
		ep, err := scanExtraPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, ep)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// Create implements adjustment.ExtraPaymentRepository.
func (r *extraPaymentRepositoryImpl) Create(ctx context.Context, ep adjustment.ExtraPayment) (adjustment.ExtraPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO extra_payments (
			company_id, employee_id, employee_name, amount, month, description, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + extraPaymentColumns + `
	`

	created, err := scanExtraPayment(q.QueryRow(ctx, query,
		ep.CompanyID, ep.EmployeeID, ep.EmployeeName, ep.Amount,
		ep.Month, ep.Description, ep.CreatedBy,
	))
	if err != nil {
		return adjustment.ExtraPayment{}, fmt.Errorf("failed to create extra payment: %w", err)
	}

	return created, nil
}

// ListByCompanyID implements adjustment.ExtraPaymentRepository. Both filters
// are optional.
func (r *extraPaymentRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string, employeeID string, month string) ([]adjustment.ExtraPayment, error) {
	query := `
		SELECT ` + extraPaymentColumns + `
		FROM extra_payments
		WHERE company_id = $1
			AND ($2 = '' OR employee_id = $2)
			AND ($3 = '' OR month = $3)
		ORDER BY created_at DESC
	`
	return r.queryExtraPayments(ctx, query, companyID, employeeID, month)
}

// ListByEmployeeMonth implements adjustment.ExtraPaymentRepository.
func (r *extraPaymentRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, companyID string, month string) ([]adjustment.ExtraPayment, error) {
	query := `
		SELECT ` + extraPaymentColumns + `
		FROM extra_payments
		WHERE employee_id = $1 AND company_id = $2 AND month = $3
		ORDER BY created_at ASC
	`
	return r.queryExtraPayments(ctx, query, employeeID, companyID, month)
}
