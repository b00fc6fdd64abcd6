package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. All methods include
// institutionID to prevent cross-institution data access.
type Repository interface {
	// ListCompleted returns completed sessions (checked_out or auto_checkout)
	// for the officer in the inclusive date range.
	ListCompleted(ctx context.Context, officerID, institutionID string, from, to time.Time) ([]Record, error)

	// GetOpenSessions returns checked_in sessions whose check-in is older than
	// the cutoff. Used by the auto-checkout job.
	GetOpenSessions(ctx context.Context, olderThan time.Time) ([]Record, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, record Record) error
}
