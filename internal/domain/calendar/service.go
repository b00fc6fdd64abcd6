package calendar

import (
	"context"
	"time"
)

// Service classifies calendar dates for an institution.
type Service interface {
	// ClassifyRange returns the weekend and holiday dates of the inclusive
	// range. Callers resolve per-date priority through Classify.
	ClassifyRange(ctx context.Context, institutionID string, from, to time.Time) (Classification, error)
}
