package payroll

import (
	"context"
)

// Repository defines data access for payroll runs.
type Repository interface {
	// CreateRun persists a run and its items in one transaction.
	CreateRun(ctx context.Context, run Run) (Run, error)

	// GetRunByID retrieves a run with its items, institution-scoped.
	GetRunByID(ctx context.Context, id, institutionID string) (Run, error)

	// RunExists reports whether a run already exists for the period.
	RunExists(ctx context.Context, institutionID string, month, year int) (bool, error)
}
