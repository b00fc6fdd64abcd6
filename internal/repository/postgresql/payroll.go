package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/edupoint/ims-backend-go/internal/domain/payroll"
	"github.com/edupoint/ims-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

// CreateRun implements payroll.Repository.
func (p *payrollRepository) CreateRun(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	err := WithTransaction(ctx, p.db, func(txCtx context.Context, tx pgx.Tx) error {
		insertRun := `
			INSERT INTO payroll_runs (id, institution_id, period_month, period_year, status, generated_by)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at
		`
		if err := tx.QueryRow(txCtx, insertRun,
			run.ID, run.InstitutionID, run.PeriodMonth, run.PeriodYear, run.Status, run.GeneratedBy,
		).Scan(&run.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert payroll run: %w", err)
		}

		insertItem := `
			INSERT INTO payroll_run_items (
				id, run_id, officer_id,
				days_present, paid_holidays, weekends, paid_leave_days, payable_days, overtime_hours,
				monthly_base, per_day_salary, earned_salary, overtime_pay, total_earnings,
				data_complete
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`
		for i := range run.Items {
			item := &run.Items[i]
			if item.ID == "" {
				item.ID = uuid.NewString()
			}
			item.RunID = run.ID
			if _, err := tx.Exec(txCtx, insertItem,
				item.ID, item.RunID, item.OfficerID,
				item.DaysPresent, item.PaidHolidays, item.Weekends, item.PaidLeaveDays,
				item.PayableDays, item.OvertimeHours,
				item.MonthlyBase, item.PerDaySalary, item.EarnedSalary, item.OvertimePay,
				item.TotalEarnings, item.DataComplete,
			); err != nil {
				return fmt.Errorf("failed to insert payroll run item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return payroll.Run{}, err
	}

	return run, nil
}

// GetRunByID implements payroll.Repository.
func (p *payrollRepository) GetRunByID(ctx context.Context, id, institutionID string) (payroll.Run, error) {
	q := GetQuerier(ctx, p.db)

	runQuery := `
		SELECT id, institution_id, period_month, period_year, status, generated_by, created_at
		FROM payroll_runs
		WHERE id = $1 AND institution_id = $2
	`

	var run payroll.Run
	err := q.QueryRow(ctx, runQuery, id, institutionID).Scan(
		&run.ID, &run.InstitutionID, &run.PeriodMonth, &run.PeriodYear,
		&run.Status, &run.GeneratedBy, &run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	itemsQuery := `
		SELECT id, run_id, officer_id,
			   days_present, paid_holidays, weekends, paid_leave_days, payable_days, overtime_hours,
			   monthly_base, per_day_salary, earned_salary, overtime_pay, total_earnings,
			   data_complete
		FROM payroll_run_items
		WHERE run_id = $1
		ORDER BY officer_id
	`

	rows, err := q.Query(ctx, itemsQuery, run.ID)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("failed to list payroll run items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item payroll.RunItem
		if err := rows.Scan(
			&item.ID, &item.RunID, &item.OfficerID,
			&item.DaysPresent, &item.PaidHolidays, &item.Weekends, &item.PaidLeaveDays,
			&item.PayableDays, &item.OvertimeHours,
			&item.MonthlyBase, &item.PerDaySalary, &item.EarnedSalary, &item.OvertimePay,
			&item.TotalEarnings, &item.DataComplete,
		); err != nil {
			return payroll.Run{}, fmt.Errorf("failed to scan payroll run item: %w", err)
		}
		run.Items = append(run.Items, item)
	}
	if err := rows.Err(); err != nil {
		return payroll.Run{}, fmt.Errorf("failed to read payroll run item rows: %w", err)
	}

	return run, nil
}

// RunExists implements payroll.Repository.
func (p *payrollRepository) RunExists(ctx context.Context, institutionID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_runs
			WHERE institution_id = $1 AND period_month = $2 AND period_year = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, institutionID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll run existence: %w", err)
	}

	return exists, nil
}
