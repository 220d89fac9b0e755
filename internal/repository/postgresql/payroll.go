package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const statementColumns = `
	id, company_id, employee_id, employee_name, position, month,
	basic_salary, allowances, earnings,
	working_days, present_days, leave_days, half_days, allowed_leaves, allowed_half_days,
	total_minutes, today_minutes, late_minutes,
	late_deduction, advances, other_deductions, loan_deduction, extra_payment,
	gross_salary, total_deductions, net_salary,
	fixed_salary, salary_per_minute, today_earnings,
	generated_by, generated_at
`

func scanStatement(row pgx.Row) (payroll.Statement, error) {
	var st payroll.Statement
	err := row.Scan(
		&st.ID, &st.CompanyID, &st.EmployeeID, &st.EmployeeName, &st.Position, &st.Month,
		&st.BasicSalary, &st.Allowances, &st.Earnings,
		&st.WorkingDays, &st.PresentDays, &st.LeaveDays, &st.HalfDays,
		&st.AllowedLeaves, &st.AllowedHalfDays,
		&st.TotalMinutes, &st.TodayMinutes, &st.LateMinutes,
		&st.LateDeduction, &st.Advances, &st.OtherDeductions, &st.LoanDeduction, &st.ExtraPayment,
		&st.GrossSalary, &st.TotalDeductions, &st.NetSalary,
		&st.FixedSalary, &st.SalaryPerMinute, &st.TodayEarnings,
		&st.GeneratedBy, &st.GeneratedAt,
	)
	return st, err
}

// UpsertStatement implements payroll.PayrollRepository. The unique key on
// (company_id, employee_id, month) makes regeneration replace the earlier run.
func (r *payrollRepositoryImpl) UpsertStatement(ctx context.Context, st payroll.Statement) (payroll.Statement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_statements (
			company_id, employee_id, employee_name, position, month,
			basic_salary, allowances, earnings,
			working_days, present_days, leave_days, half_days, allowed_leaves, allowed_half_days,
			total_minutes, today_minutes, late_minutes,
			late_deduction, advances, other_deductions, loan_deduction, extra_payment,
			gross_salary, total_deductions, net_salary,
			fixed_salary, salary_per_minute, today_earnings,
			generated_by, generated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10, $11, $12, $13, $14,
			$15, $16, $17,
			$18, $19, $20, $21, $22,
			$23, $24, $25,
			$26, $27, $28,
			$29, $30
		)
		ON CONFLICT (company_id, employee_id, month) DO UPDATE SET
			employee_name = EXCLUDED.employee_name,
			position = EXCLUDED.position,
			basic_salary = EXCLUDED.basic_salary,
			allowances = EXCLUDED.allowances,
			earnings = EXCLUDED.earnings,
			working_days = EXCLUDED.working_days,
			present_days = EXCLUDED.present_days,
			leave_days = EXCLUDED.leave_days,
			half_days = EXCLUDED.half_days,
			allowed_leaves = EXCLUDED.allowed_leaves,
			allowed_half_days = EXCLUDED.allowed_half_days,
			total_minutes = EXCLUDED.total_minutes,
			today_minutes = EXCLUDED.today_minutes,
			late_minutes = EXCLUDED.late_minutes,
			late_deduction = EXCLUDED.late_deduction,
			advances = EXCLUDED.advances,
			other_deductions = EXCLUDED.other_deductions,
			loan_deduction = EXCLUDED.loan_deduction,
			extra_payment = EXCLUDED.extra_payment,
			gross_salary = EXCLUDED.gross_salary,
			total_deductions = EXCLUDED.total_deductions,
			net_salary = EXCLUDED.net_salary,
			fixed_salary = EXCLUDED.fixed_salary,
			salary_per_minute = EXCLUDED.salary_per_minute,
			today_earnings = EXCLUDED.today_earnings,
			generated_by = EXCLUDED.generated_by,
			generated_at = EXCLUDED.generated_at
		RETURNING ` + statementColumns + `
	`

	saved, err := scanStatement(q.QueryRow(ctx, query,
		st.CompanyID, st.EmployeeID, st.EmployeeName, st.Position, st.Month,
		st.BasicSalary, st.Allowances, st.Earnings,
		st.WorkingDays, st.PresentDays, st.LeaveDays, st.HalfDays,
		st.AllowedLeaves, st.AllowedHalfDays,
		st.TotalMinutes, st.TodayMinutes, st.LateMinutes,
		st.LateDeduction, st.Advances, st.OtherDeductions, st.LoanDeduction, st.ExtraPayment,
		st.GrossSalary, st.TotalDeductions, st.NetSalary,
		st.FixedSalary, st.SalaryPerMinute, st.TodayEarnings,
		st.GeneratedBy, st.GeneratedAt,
	))
	if err != nil {
		return payroll.Statement{}, fmt.Errorf("failed to upsert payroll statement: %w", err)
	}

	return saved, nil
}

// ListStatements implements payroll.PayrollRepository. Month and employee
// filters are optional.
func (r *payrollRepositoryImpl) ListStatements(ctx context.Context, companyID string, month string, employeeID string) ([]payroll.Statement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + statementColumns + `
		FROM payroll_statements
		WHERE company_id = $1
			AND ($2 = '' OR month = $2)
			AND ($3 = '' OR employee_id = $3)
		ORDER BY month DESC, employee_name ASC
	`

	rows, err := q.Query(ctx, query, companyID, month, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statements []payroll.Statement
	for rows.Next() {
		st, err := scanStatement(rows)
		if err != nil {
			return nil, err
		}
		statements = append(statements, st)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statements, nil
}
