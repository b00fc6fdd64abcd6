package salary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edupoint/ims-backend-go/internal/domain/officer"
)

// Service exposes resolved salary structures.
type Service interface {
	GetStructure(ctx context.Context, officerID, institutionID string) (officer.SalaryStructure, officer.StatutoryInfo, error)
}

type ServiceImpl struct {
	compensationRepo officer.CompensationRepository
	resolver         *Resolver
}

func NewSalaryService(compensationRepo officer.CompensationRepository, resolver *Resolver) Service {
	return &ServiceImpl{
		compensationRepo: compensationRepo,
		resolver:         resolver,
	}
}

// GetStructure resolves the officer's salary breakdown. When the record held
// no usable structure, the derived one is written back so later reads and
// payroll exports see the same breakdown.
func (s *ServiceImpl) GetStructure(ctx context.Context, officerID, institutionID string) (officer.SalaryStructure, officer.StatutoryInfo, error) {
	comp, err := s.compensationRepo.GetByOfficerID(ctx, officerID, institutionID)
	if err != nil {
		return officer.SalaryStructure{}, officer.StatutoryInfo{}, fmt.Errorf("failed to load compensation: %w", err)
	}

	structure, statutory := s.resolver.Resolve(comp)

	missing := comp.Structure == nil || !comp.Structure.Total().IsPositive()
	if missing && structure.Total().IsPositive() {
		if err := s.compensationRepo.SaveStructure(ctx, officerID, institutionID, structure, statutory); err != nil {
			// The derived structure is still correct; persisting it is an
			// optimization for later reads.
			slog.Warn("failed to persist derived salary structure",
				"officer_id", officerID, "error", err)
		}
	}

	return structure, statutory, nil
}
