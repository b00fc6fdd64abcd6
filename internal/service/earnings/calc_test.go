package earnings

import (
	"testing"
	"time"

	"github.com/edupoint/ims-backend-go/internal/domain/earnings"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(date(2025, time.January, 15)))
	assert.Equal(t, 28, DaysInMonth(date(2025, time.February, 1)))
	assert.Equal(t, 29, DaysInMonth(date(2024, time.February, 10)))
	assert.Equal(t, 30, DaysInMonth(date(2025, time.June, 30)))
	assert.Equal(t, 31, DaysInMonth(date(2025, time.December, 1)))
}

func TestDeriveRates(t *testing.T) {
	annual := decimal.NewFromInt(1200000)

	t.Run("30 day month", func(t *testing.T) {
		rates := DeriveRates(annual, date(2025, time.June, 15), 8)

		assert.Equal(t, "100000.00", rates.MonthlyBase.StringFixed(2))
		assert.Equal(t, "3333.33", rates.PerDaySalary.StringFixed(2))
		assert.Equal(t, "416.67", rates.PerHourRate.StringFixed(2))
	})

	t.Run("31 day month", func(t *testing.T) {
		rates := DeriveRates(annual, date(2025, time.July, 1), 8)

		assert.Equal(t, "3225.81", rates.PerDaySalary.StringFixed(2))
	})

	t.Run("february leap year", func(t *testing.T) {
		rates := DeriveRates(annual, date(2024, time.February, 5), 8)

		assert.Equal(t, "3448.28", rates.PerDaySalary.StringFixed(2))
	})

	t.Run("february non leap year", func(t *testing.T) {
		rates := DeriveRates(annual, date(2025, time.February, 5), 8)

		assert.Equal(t, "3571.43", rates.PerDaySalary.StringFixed(2))
	})

	t.Run("per day times days recovers monthly base", func(t *testing.T) {
		rates := DeriveRates(annual, date(2025, time.June, 15), 8)
		recovered := rates.PerDaySalary.Mul(decimal.NewFromInt(30))

		assert.Equal(t, "100000.00", recovered.StringFixed(2))
	})

	t.Run("zero salary yields zero rates", func(t *testing.T) {
		rates := DeriveRates(decimal.Zero, date(2025, time.June, 15), 8)

		assert.True(t, rates.MonthlyBase.IsZero())
		assert.True(t, rates.PerDaySalary.IsZero())
		assert.True(t, rates.PerHourRate.IsZero())
	})

	t.Run("non positive working hours yields zero rates", func(t *testing.T) {
		rates := DeriveRates(annual, date(2025, time.June, 15), 0)

		assert.True(t, rates.PerHourRate.IsZero())
	})
}

func TestCompute(t *testing.T) {
	annual := decimal.NewFromInt(1200000)
	multiplier := decimal.NewFromFloat(1.5)

	t.Run("full month earnings", func(t *testing.T) {
		reference := date(2025, time.June, 30)
		rates := DeriveRates(annual, reference, 8)
		summary := earnings.AttendanceSummary{
			OfficerID:             "off-1",
			PeriodStart:           date(2025, time.June, 1),
			PeriodEnd:             reference,
			DaysPresent:           19,
			PaidHolidays:          0,
			Weekends:              8,
			PaidLeaveDays:         0,
			ApprovedOvertimeHours: 4,
			PayableDays:           27,
		}

		result := Compute(summary, rates, multiplier, reference)

		assert.Equal(t, "90000.00", result.EarnedSalary.StringFixed(2))
		assert.Equal(t, "2500.00", result.OvertimePay.StringFixed(2))
		assert.Equal(t, "92500.00", result.TotalEarnings.StringFixed(2))
		assert.Equal(t, 30, result.WorkingDays)
		assert.Equal(t, 27.0, result.PayableDays)
		assert.InDelta(t, 90.0, result.ProgressPercentage, 0.001)
	})

	t.Run("zero rates degrade to zero earnings", func(t *testing.T) {
		reference := date(2025, time.June, 30)
		summary := earnings.AttendanceSummary{PayableDays: 27, ApprovedOvertimeHours: 4}

		result := Compute(summary, earnings.Rates{
			MonthlyBase:  decimal.Zero,
			PerDaySalary: decimal.Zero,
			PerHourRate:  decimal.Zero,
		}, multiplier, reference)

		assert.True(t, result.EarnedSalary.IsZero())
		assert.True(t, result.OvertimePay.IsZero())
		assert.True(t, result.TotalEarnings.IsZero())
	})

	t.Run("overtime pay uses per hour rate and multiplier", func(t *testing.T) {
		reference := date(2025, time.June, 30)
		rates := DeriveRates(annual, reference, 8)
		summary := earnings.AttendanceSummary{ApprovedOvertimeHours: 2}

		result := Compute(summary, rates, decimal.NewFromInt(2), reference)

		// 2h * 416.67 * 2
		assert.Equal(t, "1666.67", result.OvertimePay.StringFixed(2))
	})
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name        string
		payableDays float64
		dayOfMonth  int
		want        float64
	}{
		{"partial month", 10, 20, 50},
		{"full payability", 15, 15, 100},
		{"capped above hundred", 20, 15, 100},
		{"zero payable", 0, 10, 0},
		{"zero day of month", 10, 0, 0},
		{"negative day of month", 10, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, progress(tt.payableDays, tt.dayOfMonth), 0.001)
		})
	}
}
