package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/edupoint/ims-backend-go/internal/domain/overtime"
	"github.com/edupoint/ims-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.Repository {
	return &overtimeRepository{db: db}
}

// ListApproved implements overtime.Repository.
func (o *overtimeRepository) ListApproved(ctx context.Context, officerID, institutionID string, from, to time.Time) ([]overtime.Request, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, officer_id, institution_id, date, requested_hours, status,
			   reviewed_by, reviewed_at, created_at, updated_at
		FROM overtime_requests
		WHERE officer_id = $1
		  AND institution_id = $2
		  AND date BETWEEN $3 AND $4
		  AND status = 'approved'
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, officerID, institutionID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved overtime: %w", err)
	}
	defer rows.Close()

	var requests []overtime.Request
	for rows.Next() {
		var r overtime.Request
		if err := rows.Scan(
			&r.ID, &r.OfficerID, &r.InstitutionID, &r.Date, &r.RequestedHours, &r.Status,
			&r.ReviewedBy, &r.ReviewedAt, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read overtime rows: %w", err)
	}

	return requests, nil
}
