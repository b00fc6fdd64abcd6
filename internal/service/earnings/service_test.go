package earnings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edupoint/ims-backend-go/internal/config"
	"github.com/edupoint/ims-backend-go/internal/domain/attendance"
	"github.com/edupoint/ims-backend-go/internal/domain/calendar"
	"github.com/edupoint/ims-backend-go/internal/domain/earnings"
	"github.com/edupoint/ims-backend-go/internal/domain/leave"
	"github.com/edupoint/ims-backend-go/internal/domain/officer"
	"github.com/edupoint/ims-backend-go/internal/domain/overtime"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records  []attendance.Record
	err      error
	gotFrom  time.Time
	gotTo    time.Time
	listHits int
}

func (f *fakeAttendanceRepo) ListCompleted(ctx context.Context, officerID, institutionID string, from, to time.Time) ([]attendance.Record, error) {
	f.gotFrom, f.gotTo = from, to
	f.listHits++
	return f.records, f.err
}

func (f *fakeAttendanceRepo) GetOpenSessions(ctx context.Context, olderThan time.Time) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, record attendance.Record) error {
	return nil
}

type fakeOvertimeRepo struct {
	requests []overtime.Request
	err      error
}

func (f *fakeOvertimeRepo) ListApproved(ctx context.Context, officerID, institutionID string, from, to time.Time) ([]overtime.Request, error) {
	return f.requests, f.err
}

type fakeLeaveRepo struct {
	applications []leave.Application
	err          error
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(ctx context.Context, applicantID, institutionID string, from, to time.Time) ([]leave.Application, error) {
	return f.applications, f.err
}

type fakeCompensationRepo struct {
	comp officer.Compensation
	err  error
}

func (f *fakeCompensationRepo) GetByOfficerID(ctx context.Context, officerID, institutionID string) (officer.Compensation, error) {
	return f.comp, f.err
}

func (f *fakeCompensationRepo) ListByInstitution(ctx context.Context, institutionID string) ([]officer.Compensation, error) {
	return nil, nil
}

func (f *fakeCompensationRepo) SaveStructure(ctx context.Context, officerID, institutionID string, structure officer.SalaryStructure, statutory officer.StatutoryInfo) error {
	return nil
}

type fakeCalendarService struct {
	classification calendar.Classification
	err            error
}

func (f *fakeCalendarService) ClassifyRange(ctx context.Context, institutionID string, from, to time.Time) (calendar.Classification, error) {
	if f.err != nil {
		return calendar.Classification{}, f.err
	}
	if f.classification.Weekends == nil {
		return calendar.NewClassification(), nil
	}
	return f.classification, nil
}

func testConfig() config.PayrollConfig {
	return config.PayrollConfig{
		WorkingHoursPerDay: 8,
		OvertimeMultiplier: 1.5,
	}
}

func completedRecord(officerID string, d time.Time, hours float64) attendance.Record {
	return attendance.Record{
		ID:            "rec-" + d.Format("20060102"),
		OfficerID:     officerID,
		InstitutionID: "inst-1",
		Date:          d,
		HoursWorked:   hours,
		Status:        attendance.StatusCheckedOut,
	}
}

// juneClassification marks the Saturdays, Sundays and June 16 of June 2025.
func juneClassification() calendar.Classification {
	c := calendar.NewClassification()
	for d := date(2025, time.June, 1); !d.After(date(2025, time.June, 30)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			c.Weekends.Add(d)
		}
	}
	c.Holidays.Add(date(2025, time.June, 16))
	return c
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("payable days combine presence holidays weekends and paid leave", func(t *testing.T) {
		var records []attendance.Record
		present := 0
		for d := date(2025, time.June, 2); !d.After(date(2025, time.June, 30)) && present < 16; d = d.AddDate(0, 0, 1) {
			if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday || d.Day() == 16 {
				continue
			}
			records = append(records, completedRecord("off-1", d, 8))
			present++
		}
		require.Equal(t, 16, present)

		svc := NewEarningsService(
			&fakeAttendanceRepo{records: records},
			&fakeOvertimeRepo{requests: []overtime.Request{
				{Date: date(2025, time.June, 10), RequestedHours: 4, Status: overtime.StatusApproved},
			}},
			&fakeLeaveRepo{applications: []leave.Application{
				{StartDate: date(2025, time.June, 26), EndDate: date(2025, time.June, 26), PaidDays: 1, Status: leave.StatusApproved},
			}},
			&fakeCompensationRepo{},
			&fakeCalendarService{classification: juneClassification()},
			testConfig(),
		)

		summary, err := svc.Summarize(ctx, "off-1", "inst-1", date(2025, time.June, 1), date(2025, time.June, 30))
		require.NoError(t, err)

		assert.Equal(t, 16, summary.DaysPresent)
		assert.Equal(t, 9, summary.Weekends)
		assert.Equal(t, 1, summary.PaidHolidays)
		assert.Equal(t, 1.0, summary.PaidLeaveDays)
		assert.Equal(t, 4.0, summary.ApprovedOvertimeHours)
		assert.Equal(t, 27.0, summary.PayableDays)
		assert.Equal(t, float64(summary.DaysPresent+summary.PaidHolidays+summary.Weekends)+summary.PaidLeaveDays, summary.PayableDays)
	})

	t.Run("same day sessions count once", func(t *testing.T) {
		d := date(2025, time.June, 10)
		morning := completedRecord("off-1", d, 4)
		evening := completedRecord("off-1", d, 3)
		evening.ID = "rec-evening"

		svc := NewEarningsService(
			&fakeAttendanceRepo{records: []attendance.Record{morning, evening}},
			&fakeOvertimeRepo{}, &fakeLeaveRepo{}, &fakeCompensationRepo{},
			&fakeCalendarService{}, testConfig(),
		)

		summary, err := svc.Summarize(ctx, "off-1", "inst-1", date(2025, time.June, 1), date(2025, time.June, 30))
		require.NoError(t, err)

		assert.Equal(t, 1, summary.DaysPresent)
		assert.Equal(t, 7.0, summary.TotalHoursWorked)
	})

	t.Run("open sessions are not presence", func(t *testing.T) {
		open := attendance.Record{
			OfficerID: "off-1",
			Date:      date(2025, time.June, 10),
			Status:    attendance.StatusCheckedIn,
		}

		svc := NewEarningsService(
			&fakeAttendanceRepo{records: []attendance.Record{open}},
			&fakeOvertimeRepo{}, &fakeLeaveRepo{}, &fakeCompensationRepo{},
			&fakeCalendarService{}, testConfig(),
		)

		summary, err := svc.Summarize(ctx, "off-1", "inst-1", date(2025, time.June, 1), date(2025, time.June, 30))
		require.NoError(t, err)

		assert.Equal(t, 0, summary.DaysPresent)
	})

	t.Run("auto checkout sessions count as presence", func(t *testing.T) {
		rec := completedRecord("off-1", date(2025, time.June, 10), 8)
		rec.Status = attendance.StatusAutoCheckout

		svc := NewEarningsService(
			&fakeAttendanceRepo{records: []attendance.Record{rec}},
			&fakeOvertimeRepo{}, &fakeLeaveRepo{}, &fakeCompensationRepo{},
			&fakeCalendarService{}, testConfig(),
		)

		summary, err := svc.Summarize(ctx, "off-1", "inst-1", date(2025, time.June, 1), date(2025, time.June, 30))
		require.NoError(t, err)

		assert.Equal(t, 1, summary.DaysPresent)
	})

	t.Run("only approved overtime counts", func(t *testing.T) {
		svc := NewEarningsService(
			&fakeAttendanceRepo{},
			&fakeOvertimeRepo{requests: []overtime.Request{
				{RequestedHours: 5, Status: overtime.StatusPending},
				{RequestedHours: 3, Status: overtime.StatusApproved},
				{RequestedHours: 2, Status: overtime.StatusRejected},
			}},
			&fakeLeaveRepo{}, &fakeCompensationRepo{},
			&fakeCalendarService{}, testConfig(),
		)

		summary, err := svc.Summarize(ctx, "off-1", "inst-1", date(2025, time.June, 1), date(2025, time.June, 30))
		require.NoError(t, err)

		assert.Equal(t, 3.0, summary.ApprovedOvertimeHours)
	})

	t.Run("loss of pay leave contributes nothing", func(t *testing.T) {
		svc := NewEarningsService(
			&fakeAttendanceRepo{}, &fakeOvertimeRepo{},
			&fakeLeaveRepo{applications: []leave.Application{
				{PaidDays: 2, IsLossOfPay: false, Status: leave.StatusApproved},
				{PaidDays: 3, IsLossOfPay: true, Status: leave.StatusApproved},
			}},
			&fakeCompensationRepo{},
			&fakeCalendarService{}, testConfig(),
		)

		summary, err := svc.Summarize(ctx, "off-1", "inst-1", date(2025, time.June, 1), date(2025, time.June, 30))
		require.NoError(t, err)

		assert.Equal(t, 2.0, summary.PaidLeaveDays)
	})

	t.Run("holiday on weekend counted once as weekend", func(t *testing.T) {
		c := calendar.NewClassification()
		c.Weekends.Add(date(2025, time.June, 7))
		c.Holidays.Add(date(2025, time.June, 7))

		svc := NewEarningsService(
			&fakeAttendanceRepo{}, &fakeOvertimeRepo{}, &fakeLeaveRepo{},
			&fakeCompensationRepo{},
			&fakeCalendarService{classification: c}, testConfig(),
		)

		summary, err := svc.Summarize(ctx, "off-1", "inst-1", date(2025, time.June, 1), date(2025, time.June, 30))
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Weekends)
		assert.Equal(t, 0, summary.PaidHolidays)
	})

	t.Run("inverted period fails", func(t *testing.T) {
		svc := NewEarningsService(
			&fakeAttendanceRepo{}, &fakeOvertimeRepo{}, &fakeLeaveRepo{},
			&fakeCompensationRepo{}, &fakeCalendarService{}, testConfig(),
		)

		_, err := svc.Summarize(ctx, "off-1", "inst-1", date(2025, time.June, 30), date(2025, time.June, 1))
		assert.ErrorIs(t, err, earnings.ErrInvalidPeriod)
	})

	t.Run("attendance fetch failure propagates as data fetch error", func(t *testing.T) {
		svc := NewEarningsService(
			&fakeAttendanceRepo{err: errors.New("connection reset")},
			&fakeOvertimeRepo{}, &fakeLeaveRepo{}, &fakeCompensationRepo{},
			&fakeCalendarService{}, testConfig(),
		)

		_, err := svc.Summarize(ctx, "off-1", "inst-1", date(2025, time.June, 1), date(2025, time.June, 30))
		require.Error(t, err)

		assert.ErrorIs(t, err, earnings.ErrDataFetch)
		var fetchErr *earnings.DataFetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "attendance records", fetchErr.Source)
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("calendar failure propagates as data fetch error", func(t *testing.T) {
		svc := NewEarningsService(
			&fakeAttendanceRepo{}, &fakeOvertimeRepo{}, &fakeLeaveRepo{},
			&fakeCompensationRepo{},
			&fakeCalendarService{err: errors.New("boom")}, testConfig(),
		)

		_, err := svc.Summarize(ctx, "off-1", "inst-1", date(2025, time.June, 1), date(2025, time.June, 30))
		require.Error(t, err)

		var fetchErr *earnings.DataFetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "calendar classification", fetchErr.Source)
	})
}

func TestCalculateForPeriod(t *testing.T) {
	ctx := context.Background()

	t.Run("end of month earnings", func(t *testing.T) {
		var records []attendance.Record
		present := 0
		for d := date(2025, time.June, 2); !d.After(date(2025, time.June, 30)) && present < 16; d = d.AddDate(0, 0, 1) {
			if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday || d.Day() == 16 {
				continue
			}
			records = append(records, completedRecord("off-1", d, 8))
			present++
		}

		svc := NewEarningsService(
			&fakeAttendanceRepo{records: records},
			&fakeOvertimeRepo{requests: []overtime.Request{
				{RequestedHours: 4, Status: overtime.StatusApproved},
			}},
			&fakeLeaveRepo{applications: []leave.Application{
				{PaidDays: 1, Status: leave.StatusApproved},
			}},
			&fakeCompensationRepo{comp: officer.Compensation{
				OfficerID:    "off-1",
				AnnualSalary: decimal.NewFromInt(1200000),
			}},
			&fakeCalendarService{classification: juneClassification()},
			testConfig(),
		)

		result, err := svc.CalculateForPeriod(ctx, "off-1", "inst-1", date(2025, time.June, 30))
		require.NoError(t, err)

		assert.Equal(t, "100000.00", result.MonthlyBase.StringFixed(2))
		assert.Equal(t, "3333.33", result.PerDaySalary.StringFixed(2))
		assert.Equal(t, 27.0, result.PayableDays)
		assert.Equal(t, "90000.00", result.EarnedSalary.StringFixed(2))
		assert.Equal(t, "2500.00", result.OvertimePay.StringFixed(2))
		assert.Equal(t, "92500.00", result.TotalEarnings.StringFixed(2))
		assert.True(t, result.DataComplete)
		assert.InDelta(t, 90.0, result.ProgressPercentage, 0.001)
	})

	t.Run("window clips at reference day", func(t *testing.T) {
		attendanceRepo := &fakeAttendanceRepo{}
		svc := NewEarningsService(
			attendanceRepo, &fakeOvertimeRepo{}, &fakeLeaveRepo{},
			&fakeCompensationRepo{comp: officer.Compensation{AnnualSalary: decimal.NewFromInt(1200000)}},
			&fakeCalendarService{}, testConfig(),
		)

		_, err := svc.CalculateForPeriod(ctx, "off-1", "inst-1", date(2025, time.June, 15))
		require.NoError(t, err)

		assert.Equal(t, date(2025, time.June, 1), attendanceRepo.gotFrom)
		assert.Equal(t, date(2025, time.June, 15), attendanceRepo.gotTo)
	})

	t.Run("missing compensation soft defaults to zero", func(t *testing.T) {
		svc := NewEarningsService(
			&fakeAttendanceRepo{records: []attendance.Record{completedRecord("off-1", date(2025, time.June, 10), 8)}},
			&fakeOvertimeRepo{}, &fakeLeaveRepo{},
			&fakeCompensationRepo{err: officer.ErrCompensationNotFound},
			&fakeCalendarService{}, testConfig(),
		)

		result, err := svc.CalculateForPeriod(ctx, "off-1", "inst-1", date(2025, time.June, 30))
		require.NoError(t, err)

		assert.False(t, result.DataComplete)
		assert.True(t, result.EarnedSalary.IsZero())
		assert.True(t, result.TotalEarnings.IsZero())
		assert.Equal(t, 1, result.DaysPresent)
	})

	t.Run("compensation store failure is a fetch error", func(t *testing.T) {
		svc := NewEarningsService(
			&fakeAttendanceRepo{}, &fakeOvertimeRepo{}, &fakeLeaveRepo{},
			&fakeCompensationRepo{err: errors.New("relation missing")},
			&fakeCalendarService{}, testConfig(),
		)

		_, err := svc.CalculateForPeriod(ctx, "off-1", "inst-1", date(2025, time.June, 30))
		require.Error(t, err)

		var fetchErr *earnings.DataFetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "compensation record", fetchErr.Source)
	})

	t.Run("hourly rate and multiplier overrides apply", func(t *testing.T) {
		hourly := decimal.NewFromInt(500)
		multiplier := decimal.NewFromInt(2)

		svc := NewEarningsService(
			&fakeAttendanceRepo{},
			&fakeOvertimeRepo{requests: []overtime.Request{
				{RequestedHours: 2, Status: overtime.StatusApproved},
			}},
			&fakeLeaveRepo{},
			&fakeCompensationRepo{comp: officer.Compensation{
				AnnualSalary:       decimal.NewFromInt(1200000),
				HourlyRateOverride: &hourly,
				OvertimeMultiplier: &multiplier,
			}},
			&fakeCalendarService{}, testConfig(),
		)

		result, err := svc.CalculateForPeriod(ctx, "off-1", "inst-1", date(2025, time.June, 30))
		require.NoError(t, err)

		// 2h * 500 * 2
		assert.Equal(t, "2000.00", result.OvertimePay.StringFixed(2))
	})
}
