package calendar

import (
	"context"
	"time"
)

// HolidayRepository defines data access for holiday records. All methods
// include institutionID to keep tenants isolated; company-wide holidays
// (institution_id IS NULL) are always included.
type HolidayRepository interface {
	// ListDates returns holiday dates in the inclusive range, institution-scoped
	// plus company-wide ones.
	ListDates(ctx context.Context, institutionID string, from, to time.Time) ([]time.Time, error)
}

// SettingsRepository exposes the institution's calendar settings.
type SettingsRepository interface {
	// GetWeekendDays returns the institution's weekly-off weekdays. Institutions
	// without a settings row fall back to Saturday and Sunday.
	GetWeekendDays(ctx context.Context, institutionID string) ([]time.Weekday, error)
}
