package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/edupoint/ims-backend-go/internal/domain/leave"
	"github.com/edupoint/ims-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

// ListApprovedOverlapping implements leave.Repository.
func (l *leaveRepository) ListApprovedOverlapping(ctx context.Context, applicantID, institutionID string, from, to time.Time) ([]leave.Application, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, applicant_id, institution_id, start_date, end_date,
			   paid_days, is_loss_of_pay, status, reason,
			   approved_by, approved_at, created_at, updated_at
		FROM leave_applications
		WHERE applicant_id = $1
		  AND institution_id = $2
		  AND status = 'approved'
		  AND start_date <= $4
		  AND end_date >= $3
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, applicantID, institutionID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave applications: %w", err)
	}
	defer rows.Close()

	var applications []leave.Application
	for rows.Next() {
		var a leave.Application
		if err := rows.Scan(
			&a.ID, &a.ApplicantID, &a.InstitutionID, &a.StartDate, &a.EndDate,
			&a.PaidDays, &a.IsLossOfPay, &a.Status, &a.Reason,
			&a.ApprovedBy, &a.ApprovedAt, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave rows: %w", err)
	}

	return applications, nil
}
