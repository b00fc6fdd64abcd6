package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edupoint/ims-backend-go/internal/domain/calendar"
	"github.com/edupoint/ims-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListDates implements calendar.HolidayRepository. Company-wide holidays
// (institution_id IS NULL) apply to every institution.
func (h *holidayRepository) ListDates(ctx context.Context, institutionID string, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT date
		FROM holidays
		WHERE (institution_id = $1 OR institution_id IS NULL)
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, institutionID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan holiday date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holiday rows: %w", err)
	}

	return dates, nil
}

type calendarSettingsRepository struct {
	db *database.DB
}

func NewCalendarSettingsRepository(db *database.DB) calendar.SettingsRepository {
	return &calendarSettingsRepository{db: db}
}

// GetWeekendDays implements calendar.SettingsRepository. Institutions without
// a settings row default to Saturday and Sunday.
func (c *calendarSettingsRepository) GetWeekendDays(ctx context.Context, institutionID string) ([]time.Weekday, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT weekend_days
		FROM institution_settings
		WHERE institution_id = $1
	`

	var days []int
	err := q.QueryRow(ctx, query, institutionID).Scan(&days)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []time.Weekday{time.Saturday, time.Sunday}, nil
		}
		return nil, fmt.Errorf("failed to get weekend days: %w", err)
	}

	weekdays := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		weekdays = append(weekdays, time.Weekday(d))
	}
	return weekdays, nil
}
