package officer

import (
	"context"
)

// CompensationRepository defines data access for compensation records.
type CompensationRepository interface {
	// GetByOfficerID retrieves the officer's compensation record. Returns
	// ErrCompensationNotFound when the officer has none.
	GetByOfficerID(ctx context.Context, officerID, institutionID string) (Compensation, error)

	// ListByInstitution returns all compensation records of an institution.
	// Used by the batch payroll run.
	ListByInstitution(ctx context.Context, institutionID string) ([]Compensation, error)

	// SaveStructure persists a resolved structure and statutory flags back to
	// the record.
	SaveStructure(ctx context.Context, officerID, institutionID string, structure SalaryStructure, statutory StatutoryInfo) error
}
