package adjustment

import "errors"

var (
	ErrAdvanceNotFound      = errors.New("advance not found")
	ErrLoanNotFound         = errors.New("loan not found")
	ErrExtraPaymentNotFound = errors.New("extra payment not found")
	ErrInvalidLoanStatus    = errors.New("invalid loan status")
)
