package salary

import (
	"github.com/edupoint/ims-backend-go/internal/config"
	"github.com/edupoint/ims-backend-go/internal/domain/officer"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// Resolver resolves an officer's salary breakdown and statutory flags. Pure:
// persistence of a resolved structure is the repository's concern.
type Resolver struct {
	cfg config.PayrollConfig
}

func NewResolver(cfg config.PayrollConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve returns the salary structure and statutory info for a compensation
// record. A stored structure wins when its components sum above zero;
// otherwise a default breakdown is derived from the annual salary.
func (r *Resolver) Resolve(comp officer.Compensation) (officer.SalaryStructure, officer.StatutoryInfo) {
	monthly := decimal.Zero
	if !comp.AnnualSalary.IsZero() {
		monthly = comp.AnnualSalary.Div(twelve)
	}

	structure := r.resolveStructure(comp, monthly)
	statutory := r.resolveStatutory(comp, monthly)
	return structure, statutory
}

func (r *Resolver) resolveStructure(comp officer.Compensation, monthly decimal.Decimal) officer.SalaryStructure {
	if comp.Structure != nil {
		stored := comp.Structure.Normalized()
		if stored.Total().IsPositive() {
			return stored
		}
		// An all-zero stored structure is treated as absent, not as a real
		// zero breakdown.
	}
	return r.deriveStructure(monthly)
}

// deriveStructure builds the default percentage breakdown: basic and HRA as
// configured fractions of monthly gross, fixed conveyance and medical
// amounts, and the remainder as special allowance, floored at zero.
func (r *Resolver) deriveStructure(monthly decimal.Decimal) officer.SalaryStructure {
	if monthly.IsZero() {
		return officer.SalaryStructure{}
	}

	basic := monthly.Mul(decimal.NewFromFloat(r.cfg.BasicPct))
	hra := monthly.Mul(decimal.NewFromFloat(r.cfg.HRAPct))
	conveyance := decimal.NewFromFloat(r.cfg.ConveyanceAmount)
	medical := decimal.NewFromFloat(r.cfg.MedicalAmount)

	special := monthly.Sub(basic).Sub(hra).Sub(conveyance).Sub(medical)
	if special.IsNegative() {
		special = decimal.Zero
	}

	return officer.SalaryStructure{
		BasicPay:            basic,
		HRA:                 hra,
		ConveyanceAllowance: conveyance,
		MedicalAllowance:    medical,
		SpecialAllowance:    special,
	}
}

func (r *Resolver) resolveStatutory(comp officer.Compensation, monthly decimal.Decimal) officer.StatutoryInfo {
	if comp.Statutory != nil {
		return *comp.Statutory
	}
	return officer.StatutoryInfo{
		PFApplicable:  true,
		ESIApplicable: monthly.LessThanOrEqual(decimal.NewFromFloat(r.cfg.ESIWageCeiling)),
		PTApplicable:  true,
		PTState:       r.cfg.DefaultPTState,
	}
}
