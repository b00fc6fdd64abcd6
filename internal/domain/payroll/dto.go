package payroll

import (
	"time"
)

// GenerateRunRequest asks for a batch payroll snapshot of a period.
type GenerateRunRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
}

func (r GenerateRunRequest) Validate() error {
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		return ErrInvalidPeriod
	}
	if r.PeriodYear < 2000 || r.PeriodYear > time.Now().Year()+1 {
		return ErrInvalidPeriod
	}
	return nil
}

// RunResponse is the wire shape of a Run.
type RunResponse struct {
	ID            string            `json:"id"`
	InstitutionID string            `json:"institution_id"`
	PeriodMonth   int               `json:"period_month"`
	PeriodYear    int               `json:"period_year"`
	Status        string            `json:"status"`
	GeneratedBy   string            `json:"generated_by"`
	CreatedAt     string            `json:"created_at"`
	Items         []RunItemResponse `json:"items"`
}

type RunItemResponse struct {
	OfficerID     string  `json:"officer_id"`
	DaysPresent   int     `json:"days_present"`
	PaidHolidays  int     `json:"paid_holidays"`
	Weekends      int     `json:"weekends"`
	PaidLeaveDays float64 `json:"paid_leave_days"`
	PayableDays   float64 `json:"payable_days"`
	OvertimeHours float64 `json:"overtime_hours"`
	MonthlyBase   string  `json:"monthly_base"`
	PerDaySalary  string  `json:"per_day_salary"`
	EarnedSalary  string  `json:"earned_salary"`
	OvertimePay   string  `json:"overtime_pay"`
	TotalEarnings string  `json:"total_earnings"`
	DataComplete  bool    `json:"data_complete"`
}

func (r Run) ToResponse() RunResponse {
	items := make([]RunItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, RunItemResponse{
			OfficerID:     item.OfficerID,
			DaysPresent:   item.DaysPresent,
			PaidHolidays:  item.PaidHolidays,
			Weekends:      item.Weekends,
			PaidLeaveDays: item.PaidLeaveDays,
			PayableDays:   item.PayableDays,
			OvertimeHours: item.OvertimeHours,
			MonthlyBase:   item.MonthlyBase.StringFixed(2),
			PerDaySalary:  item.PerDaySalary.StringFixed(2),
			EarnedSalary:  item.EarnedSalary.StringFixed(2),
			OvertimePay:   item.OvertimePay.StringFixed(2),
			TotalEarnings: item.TotalEarnings.StringFixed(2),
			DataComplete:  item.DataComplete,
		})
	}

	return RunResponse{
		ID:            r.ID,
		InstitutionID: r.InstitutionID,
		PeriodMonth:   r.PeriodMonth,
		PeriodYear:    r.PeriodYear,
		Status:        string(r.Status),
		GeneratedBy:   r.GeneratedBy,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		Items:         items,
	}
}
