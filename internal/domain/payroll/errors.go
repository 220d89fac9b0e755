package payroll

import "errors"

var (
	ErrStatementNotFound = errors.New("payroll statement not found")
	ErrInvalidMonth      = errors.New("month must be in YYYY-MM format")
)
