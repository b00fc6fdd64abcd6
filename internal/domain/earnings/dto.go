package earnings

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceSummary is the per-officer, per-period attendance aggregation.
// Derived and ephemeral; recomputed per request, never persisted.
//
// Invariant: PayableDays = DaysPresent + PaidHolidays + PaidLeaveDays + Weekends.
type AttendanceSummary struct {
	OfficerID   string
	PeriodStart time.Time
	PeriodEnd   time.Time

	DaysPresent           int
	TotalHoursWorked      float64
	ApprovedOvertimeHours float64
	PaidHolidays          int
	PaidLeaveDays         float64
	Weekends              int
	PayableDays           float64
}

// Rates are the per-period pay rates derived from an annual salary.
// Unrounded; rounding happens only at the response edge.
type Rates struct {
	MonthlyBase  decimal.Decimal
	PerDaySalary decimal.Decimal
	PerHourRate  decimal.Decimal
}

// Result is the earned-salary computation for one officer and one period.
type Result struct {
	OfficerID   string
	PeriodStart time.Time
	PeriodEnd   time.Time

	MonthlyBase  decimal.Decimal
	PerDaySalary decimal.Decimal

	DaysPresent   int
	WorkingDays   int
	PaidHolidays  int
	Weekends      int
	PaidLeaveDays float64
	PayableDays   float64

	EarnedSalary       decimal.Decimal
	OvertimeHours      float64
	OvertimePay        decimal.Decimal
	TotalEarnings      decimal.Decimal
	ProgressPercentage float64

	// DataComplete is false when the officer has no compensation record and
	// the engine soft-defaulted the annual salary to zero. Consumers should
	// warn instead of displaying a verified zero.
	DataComplete bool
}

// SummaryResponse is the wire shape of an AttendanceSummary.
type SummaryResponse struct {
	OfficerID             string  `json:"officer_id"`
	PeriodStart           string  `json:"period_start"`
	PeriodEnd             string  `json:"period_end"`
	DaysPresent           int     `json:"days_present"`
	TotalHoursWorked      float64 `json:"total_hours_worked"`
	ApprovedOvertimeHours float64 `json:"approved_overtime_hours"`
	PaidHolidays          int     `json:"paid_holidays"`
	PaidLeaveDays         float64 `json:"paid_leave_days"`
	Weekends              int     `json:"weekends"`
	PayableDays           float64 `json:"payable_days"`
}

// ResultResponse is the wire shape of a Result. Monetary figures are rounded
// to two decimals here and nowhere earlier.
type ResultResponse struct {
	OfficerID          string  `json:"officer_id"`
	PeriodStart        string  `json:"period_start"`
	PeriodEnd          string  `json:"period_end"`
	MonthlyBase        string  `json:"monthly_base"`
	PerDaySalary       string  `json:"per_day_salary"`
	DaysPresent        int     `json:"days_present"`
	WorkingDays        int     `json:"working_days"`
	PaidHolidays       int     `json:"paid_holidays"`
	Weekends           int     `json:"weekends"`
	PaidLeaveDays      float64 `json:"paid_leave_days"`
	PayableDays        float64 `json:"payable_days"`
	EarnedSalary       string  `json:"earned_salary"`
	OvertimeHours      float64 `json:"overtime_hours"`
	OvertimePay        string  `json:"overtime_pay"`
	TotalEarnings      string  `json:"total_earnings"`
	ProgressPercentage float64 `json:"progress_percentage"`
	DataComplete       bool    `json:"data_complete"`
}

const dateLayout = "2006-01-02"

func (s AttendanceSummary) ToResponse() SummaryResponse {
	return SummaryResponse{
		OfficerID:             s.OfficerID,
		PeriodStart:           s.PeriodStart.Format(dateLayout),
		PeriodEnd:             s.PeriodEnd.Format(dateLayout),
		DaysPresent:           s.DaysPresent,
		TotalHoursWorked:      s.TotalHoursWorked,
		ApprovedOvertimeHours: s.ApprovedOvertimeHours,
		PaidHolidays:          s.PaidHolidays,
		PaidLeaveDays:         s.PaidLeaveDays,
		Weekends:              s.Weekends,
		PayableDays:           s.PayableDays,
	}
}

func (r Result) ToResponse() ResultResponse {
	return ResultResponse{
		OfficerID:          r.OfficerID,
		PeriodStart:        r.PeriodStart.Format(dateLayout),
		PeriodEnd:          r.PeriodEnd.Format(dateLayout),
		MonthlyBase:        r.MonthlyBase.StringFixed(2),
		PerDaySalary:       r.PerDaySalary.StringFixed(2),
		DaysPresent:        r.DaysPresent,
		WorkingDays:        r.WorkingDays,
		PaidHolidays:       r.PaidHolidays,
		Weekends:           r.Weekends,
		PaidLeaveDays:      r.PaidLeaveDays,
		PayableDays:        r.PayableDays,
		EarnedSalary:       r.EarnedSalary.StringFixed(2),
		OvertimeHours:      r.OvertimeHours,
		OvertimePay:        r.OvertimePay.StringFixed(2),
		TotalEarnings:      r.TotalEarnings.StringFixed(2),
		ProgressPercentage: r.ProgressPercentage,
		DataComplete:       r.DataComplete,
	}
}
