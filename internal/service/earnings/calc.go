package earnings

import (
	"time"

	"github.com/edupoint/ims-backend-go/internal/domain/earnings"
	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// DeriveRates converts an annual salary into monthly, per-day and per-hour
// rates. The per-day rate uses the actual number of days in reference's
// month (28-31, leap years included). No rounding is applied here.
func DeriveRates(annualSalary decimal.Decimal, reference time.Time, workingHoursPerDay float64) earnings.Rates {
	if annualSalary.IsZero() || workingHoursPerDay <= 0 {
		return earnings.Rates{
			MonthlyBase:  decimal.Zero,
			PerDaySalary: decimal.Zero,
			PerHourRate:  decimal.Zero,
		}
	}

	monthlyBase := annualSalary.Div(twelve)
	perDay := monthlyBase.Div(decimal.NewFromInt(int64(DaysInMonth(reference))))
	perHour := perDay.Div(decimal.NewFromFloat(workingHoursPerDay))

	return earnings.Rates{
		MonthlyBase:  monthlyBase,
		PerDaySalary: perDay,
		PerHourRate:  perHour,
	}
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// Compute combines an attendance summary and derived rates into an earnings
// result. Pure: zero or missing numeric inputs degrade to zero-valued
// outputs, never to an error.
func Compute(summary earnings.AttendanceSummary, rates earnings.Rates, overtimeMultiplier decimal.Decimal, reference time.Time) earnings.Result {
	payable := decimal.NewFromFloat(summary.PayableDays)
	earned := payable.Mul(rates.PerDaySalary)

	otHours := decimal.NewFromFloat(summary.ApprovedOvertimeHours)
	otPay := otHours.Mul(rates.PerHourRate).Mul(overtimeMultiplier)

	return earnings.Result{
		OfficerID:          summary.OfficerID,
		PeriodStart:        summary.PeriodStart,
		PeriodEnd:          summary.PeriodEnd,
		MonthlyBase:        rates.MonthlyBase,
		PerDaySalary:       rates.PerDaySalary,
		DaysPresent:        summary.DaysPresent,
		WorkingDays:        reference.Day(),
		PaidHolidays:       summary.PaidHolidays,
		Weekends:           summary.Weekends,
		PaidLeaveDays:      summary.PaidLeaveDays,
		PayableDays:        summary.PayableDays,
		EarnedSalary:       earned,
		OvertimeHours:      summary.ApprovedOvertimeHours,
		OvertimePay:        otPay,
		TotalEarnings:      earned.Add(otPay),
		ProgressPercentage: progress(summary.PayableDays, reference.Day()),
		DataComplete:       true,
	}
}

// progress compares accumulated payable days against elapsed calendar days,
// capped to [0, 100]. A zero day-of-month yields 0 rather than dividing by
// zero.
func progress(payableDays float64, dayOfMonth int) float64 {
	if dayOfMonth <= 0 || payableDays <= 0 {
		return 0
	}
	pct := payableDays / float64(dayOfMonth) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
