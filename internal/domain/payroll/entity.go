package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type RunStatus string

const (
	RunStatusDraft     RunStatus = "draft"
	RunStatusFinalized RunStatus = "finalized"
)

// Run is a batch payroll snapshot for one institution and one period. Items
// are computed once and persisted so the run stays stable and auditable; the
// interactive dashboards recompute instead.
type Run struct {
	ID            string
	InstitutionID string
	PeriodMonth   int
	PeriodYear    int
	Status        RunStatus
	GeneratedBy   string
	CreatedAt     time.Time

	Items []RunItem
}

// RunItem is one officer's earnings inside a run.
type RunItem struct {
	ID        string
	RunID     string
	OfficerID string

	DaysPresent   int
	PaidHolidays  int
	Weekends      int
	PaidLeaveDays float64
	PayableDays   float64
	OvertimeHours float64

	MonthlyBase   decimal.Decimal
	PerDaySalary  decimal.Decimal
	EarnedSalary  decimal.Decimal
	OvertimePay   decimal.Decimal
	TotalEarnings decimal.Decimal

	DataComplete bool
}
