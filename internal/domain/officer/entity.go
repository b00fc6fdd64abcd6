package officer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compensation is an officer's compensation record. One per officer, mutated
// only by payroll administration, kept until superseded.
type Compensation struct {
	ID            string
	OfficerID     string
	InstitutionID string
	Designation   string
	AnnualSalary  decimal.Decimal

	// Optional stored overrides. Nil means "derive from config/annual salary".
	Structure          *SalaryStructure
	Statutory          *StatutoryInfo
	HourlyRateOverride *decimal.Decimal
	OvertimeMultiplier *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SalaryStructure is the named monthly breakdown whose components sum to
// gross monthly salary.
type SalaryStructure struct {
	BasicPay            decimal.Decimal
	HRA                 decimal.Decimal
	ConveyanceAllowance decimal.Decimal
	MedicalAllowance    decimal.Decimal
	SpecialAllowance    decimal.Decimal
	DA                  decimal.Decimal
	TransportAllowance  decimal.Decimal
	OtherAllowances     decimal.Decimal
}

// Total returns the sum of all components.
func (s SalaryStructure) Total() decimal.Decimal {
	return s.BasicPay.
		Add(s.HRA).
		Add(s.ConveyanceAllowance).
		Add(s.MedicalAllowance).
		Add(s.SpecialAllowance).
		Add(s.DA).
		Add(s.TransportAllowance).
		Add(s.OtherAllowances)
}

// Normalized upgrades a legacy structure in one read-time step: older records
// stored the conveyance figure under TransportAllowance, so a zero
// ConveyanceAllowance takes the TransportAllowance value instead.
func (s SalaryStructure) Normalized() SalaryStructure {
	if s.ConveyanceAllowance.IsZero() && !s.TransportAllowance.IsZero() {
		s.ConveyanceAllowance = s.TransportAllowance
		s.TransportAllowance = decimal.Zero
	}
	return s
}

// StatutoryInfo carries statutory-contribution applicability for a
// compensation record.
type StatutoryInfo struct {
	PFApplicable  bool
	ESIApplicable bool
	PTApplicable  bool
	PTState       string
}
