package overtime

import (
	"context"
	"time"
)

// Repository defines data access for overtime requests.
type Repository interface {
	// ListApproved returns approved requests whose date falls in the inclusive
	// range. Pending and rejected requests are never returned.
	ListApproved(ctx context.Context, officerID, institutionID string, from, to time.Time) ([]Request, error)
}
