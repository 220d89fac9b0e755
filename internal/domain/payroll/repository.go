package payroll

import "context"

// PayrollRepository persists generated payroll statements.
type PayrollRepository interface {
	// UpsertStatement replaces any earlier statement for the same
	// employee/month so regeneration is idempotent.
	UpsertStatement(ctx context.Context, st Statement) (Statement, error)
	ListStatements(ctx context.Context, companyID string, month string, employeeID string) ([]Statement, error)
}
