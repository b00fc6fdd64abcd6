package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/edupoint/ims-backend-go/internal/domain/attendance"
	"github.com/edupoint/ims-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// ListCompleted implements attendance.Repository.
func (a *attendanceRepository) ListCompleted(ctx context.Context, officerID, institutionID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, officer_id, institution_id, date, check_in, check_out,
			   hours_worked, status, created_at, updated_at
		FROM attendance_records
		WHERE officer_id = $1
		  AND institution_id = $2
		  AND date BETWEEN $3 AND $4
		  AND status IN ('checked_out', 'auto_checkout')
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, officerID, institutionID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var r attendance.Record
		if err := rows.Scan(
			&r.ID, &r.OfficerID, &r.InstitutionID, &r.Date, &r.CheckIn, &r.CheckOut,
			&r.HoursWorked, &r.Status, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return records, nil
}

// GetOpenSessions implements attendance.Repository.
func (a *attendanceRepository) GetOpenSessions(ctx context.Context, olderThan time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, officer_id, institution_id, date, check_in, check_out,
			   hours_worked, status, created_at, updated_at
		FROM attendance_records
		WHERE status = 'checked_in'
		  AND check_in < $1
		ORDER BY check_in
	`

	rows, err := q.Query(ctx, query, olderThan)
	if err != nil {
		return nil, fmt.Errorf("failed to get open sessions: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var r attendance.Record
		if err := rows.Scan(
			&r.ID, &r.OfficerID, &r.InstitutionID, &r.Date, &r.CheckIn, &r.CheckOut,
			&r.HoursWorked, &r.Status, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan open session: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read open session rows: %w", err)
	}

	return records, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_in = $1, check_out = $2, hours_worked = $3, status = $4,
			updated_at = NOW()
		WHERE id = $5 AND institution_id = $6
	`

	tag, err := q.Exec(ctx, query,
		record.CheckIn, record.CheckOut, record.HoursWorked, record.Status,
		record.ID, record.InstitutionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
