package increment

import "context"

// IncrementRepository persists the append-only salary increment ledger.
type IncrementRepository interface {
	Create(ctx context.Context, inc Increment) (Increment, error)
	GetByID(ctx context.Context, id string, companyID string) (Increment, error)
	GetByEmployeeID(ctx context.Context, employeeID string, companyID string) ([]Increment, error)
	GetPendingByEmployeeID(ctx context.Context, employeeID string, companyID string) (Increment, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Increment, error)
	ListPending(ctx context.Context, companyID string) ([]Increment, error)

	// LatestEffective returns the increment with the greatest effective_from
	// that is <= month, ties broken by most recent created_at. Returns
	// ErrIncrementNotFound when no increment applies.
	LatestEffective(ctx context.Context, employeeID string, companyID string, month string) (Increment, error)

	// ListActivatable returns pending increments whose effective_from <= month.
	ListActivatable(ctx context.Context, companyID string, month string) ([]Increment, error)

	// Activate flips a pending increment to active. The update is conditional
	// on the current status so that concurrent sweeps activate each increment
	// at most once; the boolean reports whether this call won the transition.
	Activate(ctx context.Context, id string, companyID string) (bool, error)
}
