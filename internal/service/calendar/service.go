package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/edupoint/ims-backend-go/internal/domain/calendar"
)

type ServiceImpl struct {
	holidayRepo  calendar.HolidayRepository
	settingsRepo calendar.SettingsRepository
}

func NewCalendarService(
	holidayRepo calendar.HolidayRepository,
	settingsRepo calendar.SettingsRepository,
) calendar.Service {
	return &ServiceImpl{
		holidayRepo:  holidayRepo,
		settingsRepo: settingsRepo,
	}
}

// ClassifyRange implements calendar.Service. Failures are surfaced as-is; no
// partial classification is ever returned.
func (s *ServiceImpl) ClassifyRange(ctx context.Context, institutionID string, from, to time.Time) (calendar.Classification, error) {
	if from.After(to) {
		return calendar.Classification{}, calendar.ErrInvalidRange
	}

	weekendDays, err := s.settingsRepo.GetWeekendDays(ctx, institutionID)
	if err != nil {
		return calendar.Classification{}, fmt.Errorf("failed to get weekend days: %w", err)
	}

	holidayDates, err := s.holidayRepo.ListDates(ctx, institutionID, from, to)
	if err != nil {
		return calendar.Classification{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	offDays := make(map[time.Weekday]struct{}, len(weekendDays))
	for _, d := range weekendDays {
		offDays[d] = struct{}{}
	}

	result := calendar.NewClassification()
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if _, ok := offDays[d.Weekday()]; ok {
			result.Weekends.Add(d)
		}
	}
	for _, h := range holidayDates {
		result.Holidays.Add(h)
	}

	return result, nil
}
