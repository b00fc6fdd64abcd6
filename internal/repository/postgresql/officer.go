package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/edupoint/ims-backend-go/internal/domain/officer"
	"github.com/edupoint/ims-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type compensationRepository struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) officer.CompensationRepository {
	return &compensationRepository{db: db}
}

const compensationColumns = `
	id, officer_id, institution_id, designation, annual_salary,
	hourly_rate_override, overtime_multiplier,
	structure_basic_pay, structure_hra, structure_conveyance_allowance,
	structure_medical_allowance, structure_special_allowance, structure_da,
	structure_transport_allowance, structure_other_allowances,
	pf_applicable, esi_applicable, pt_applicable, pt_state,
	created_at, updated_at
`

func scanCompensation(row pgx.Row) (officer.Compensation, error) {
	var c officer.Compensation
	var structure officer.SalaryStructure
	var pfApplicable, esiApplicable, ptApplicable *bool
	var ptState *string

	err := row.Scan(
		&c.ID, &c.OfficerID, &c.InstitutionID, &c.Designation, &c.AnnualSalary,
		&c.HourlyRateOverride, &c.OvertimeMultiplier,
		&structure.BasicPay, &structure.HRA, &structure.ConveyanceAllowance,
		&structure.MedicalAllowance, &structure.SpecialAllowance, &structure.DA,
		&structure.TransportAllowance, &structure.OtherAllowances,
		&pfApplicable, &esiApplicable, &ptApplicable, &ptState,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return officer.Compensation{}, err
	}

	// A structure with all components zero is treated as "not stored".
	if !structure.Total().IsZero() {
		c.Structure = &structure
	}
	if pfApplicable != nil || esiApplicable != nil || ptApplicable != nil {
		statutory := officer.StatutoryInfo{}
		if pfApplicable != nil {
			statutory.PFApplicable = *pfApplicable
		}
		if esiApplicable != nil {
			statutory.ESIApplicable = *esiApplicable
		}
		if ptApplicable != nil {
			statutory.PTApplicable = *ptApplicable
		}
		if ptState != nil {
			statutory.PTState = *ptState
		}
		c.Statutory = &statutory
	}

	return c, nil
}

// GetByOfficerID implements officer.CompensationRepository.
func (r *compensationRepository) GetByOfficerID(ctx context.Context, officerID, institutionID string) (officer.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + compensationColumns + `
		FROM officer_compensations
		WHERE officer_id = $1 AND institution_id = $2
	`

	c, err := scanCompensation(q.QueryRow(ctx, query, officerID, institutionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return officer.Compensation{}, officer.ErrCompensationNotFound
		}
		return officer.Compensation{}, fmt.Errorf("failed to get compensation: %w", err)
	}

	return c, nil
}

// ListByInstitution implements officer.CompensationRepository.
func (r *compensationRepository) ListByInstitution(ctx context.Context, institutionID string) ([]officer.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + compensationColumns + `
		FROM officer_compensations
		WHERE institution_id = $1
		ORDER BY officer_id
	`

	rows, err := q.Query(ctx, query, institutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensations: %w", err)
	}
	defer rows.Close()

	var compensations []officer.Compensation
	for rows.Next() {
		c, err := scanCompensation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compensation: %w", err)
		}
		compensations = append(compensations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read compensation rows: %w", err)
	}

	return compensations, nil
}

// SaveStructure implements officer.CompensationRepository.
func (r *compensationRepository) SaveStructure(ctx context.Context, officerID, institutionID string, structure officer.SalaryStructure, statutory officer.StatutoryInfo) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE officer_compensations
		SET structure_basic_pay = $1, structure_hra = $2,
			structure_conveyance_allowance = $3, structure_medical_allowance = $4,
			structure_special_allowance = $5, structure_da = $6,
			structure_transport_allowance = $7, structure_other_allowances = $8,
			pf_applicable = $9, esi_applicable = $10, pt_applicable = $11, pt_state = $12,
			updated_at = NOW()
		WHERE officer_id = $13 AND institution_id = $14
	`

	tag, err := q.Exec(ctx, query,
		structure.BasicPay, structure.HRA,
		structure.ConveyanceAllowance, structure.MedicalAllowance,
		structure.SpecialAllowance, structure.DA,
		structure.TransportAllowance, structure.OtherAllowances,
		statutory.PFApplicable, statutory.ESIApplicable, statutory.PTApplicable, statutory.PTState,
		officerID, institutionID,
	)
	if err != nil {
		return fmt.Errorf("failed to save salary structure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return officer.ErrCompensationNotFound
	}

	return nil
}
