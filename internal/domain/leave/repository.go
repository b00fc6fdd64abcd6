package leave

import (
	"context"
	"time"
)

// Repository defines data access for leave applications.
type Repository interface {
	// ListApprovedOverlapping returns approved applications whose
	// [StartDate, EndDate] overlaps the inclusive range.
	ListApprovedOverlapping(ctx context.Context, applicantID, institutionID string, from, to time.Time) ([]Application, error)
}
