package increment

import "errors"

var (
	ErrIncrementNotFound       = errors.New("increment not found")
	ErrPendingIncrementExists  = errors.New("employee already has a pending increment")
	ErrNoPendingIncrement      = errors.New("employee has no pending increment")
	ErrIncrementAlreadyActive  = errors.New("increment is already active")
	ErrInvalidEffectiveMonth   = errors.New("invalid effective month")
	ErrNonPositiveSalaryAmount = errors.New("new salary must be positive")
)
