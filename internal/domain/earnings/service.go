package earnings

import (
	"context"
	"time"
)

// Service computes attendance summaries and earned salary. Institution scope
// is passed explicitly; handlers resolve it from JWT claims.
type Service interface {
	// Summarize aggregates attendance, overtime, leave and calendar data for
	// the inclusive period.
	Summarize(ctx context.Context, officerID, institutionID string, periodStart, periodEnd time.Time) (AttendanceSummary, error)

	// CalculateForPeriod computes earnings for the month containing reference,
	// with the evaluation window clipped at reference.
	CalculateForPeriod(ctx context.Context, officerID, institutionID string, reference time.Time) (Result, error)

	// CalculateMonthly is CalculateForPeriod with reference = now.
	CalculateMonthly(ctx context.Context, officerID, institutionID string) (Result, error)
}
