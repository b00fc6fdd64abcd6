package earnings

import (
	"context"
	"errors"
	"time"

	"github.com/edupoint/ims-backend-go/internal/config"
	"github.com/edupoint/ims-backend-go/internal/domain/attendance"
	"github.com/edupoint/ims-backend-go/internal/domain/calendar"
	"github.com/edupoint/ims-backend-go/internal/domain/earnings"
	"github.com/edupoint/ims-backend-go/internal/domain/leave"
	"github.com/edupoint/ims-backend-go/internal/domain/officer"
	"github.com/edupoint/ims-backend-go/internal/domain/overtime"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ServiceImpl struct {
	attendanceRepo   attendance.Repository
	overtimeRepo     overtime.Repository
	leaveRepo        leave.Repository
	compensationRepo officer.CompensationRepository
	calendarService  calendar.Service
	cfg              config.PayrollConfig
}

func NewEarningsService(
	attendanceRepo attendance.Repository,
	overtimeRepo overtime.Repository,
	leaveRepo leave.Repository,
	compensationRepo officer.CompensationRepository,
	calendarService calendar.Service,
	cfg config.PayrollConfig,
) earnings.Service {
	return &ServiceImpl{
		attendanceRepo:   attendanceRepo,
		overtimeRepo:     overtimeRepo,
		leaveRepo:        leaveRepo,
		compensationRepo: compensationRepo,
		calendarService:  calendarService,
		cfg:              cfg,
	}
}

// Summarize implements earnings.Service. The four collaborator queries are
// independent, so they run concurrently; any failure aborts the summary
// rather than degrading to a partial result.
func (s *ServiceImpl) Summarize(ctx context.Context, officerID, institutionID string, periodStart, periodEnd time.Time) (earnings.AttendanceSummary, error) {
	if periodStart.IsZero() || periodEnd.IsZero() || periodEnd.Before(periodStart) {
		return earnings.AttendanceSummary{}, earnings.ErrInvalidPeriod
	}

	var (
		records        []attendance.Record
		otRequests     []overtime.Request
		leaves         []leave.Application
		classification calendar.Classification
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListCompleted(gctx, officerID, institutionID, periodStart, periodEnd)
		if err != nil {
			return earnings.FetchError("attendance records", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		otRequests, err = s.overtimeRepo.ListApproved(gctx, officerID, institutionID, periodStart, periodEnd)
		if err != nil {
			return earnings.FetchError("overtime requests", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListApprovedOverlapping(gctx, officerID, institutionID, periodStart, periodEnd)
		if err != nil {
			return earnings.FetchError("leave applications", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		classification, err = s.calendarService.ClassifyRange(gctx, institutionID, periodStart, periodEnd)
		if err != nil {
			return earnings.FetchError("calendar classification", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return earnings.AttendanceSummary{}, err
	}

	summary := earnings.AttendanceSummary{
		OfficerID:   officerID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}

	// Presence: distinct dates with a completed session. The repository
	// already filters on status, but sessions are re-checked so a fake or
	// future store cannot leak open sessions into pay.
	seen := make(map[string]struct{})
	for _, record := range records {
		if !record.Completed() {
			continue
		}
		key := record.Date.Format("2006-01-02")
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			summary.DaysPresent++
		}
		summary.TotalHoursWorked += record.HoursWorked
	}

	for _, req := range otRequests {
		if req.Status != overtime.StatusApproved {
			continue
		}
		summary.ApprovedOvertimeHours += req.RequestedHours
	}

	// One walk over the window; weekend priority via calendar.Classify, so a
	// holiday on a weekend is counted once, as a weekend.
	for d := periodStart; !d.After(periodEnd); d = d.AddDate(0, 0, 1) {
		switch calendar.Classify(d, classification) {
		case calendar.DayWeekend:
			summary.Weekends++
		case calendar.DayHoliday:
			summary.PaidHolidays++
		}
	}

	// Leaves overlapping the window contribute their full PaidDays; no
	// clipping to the window boundary.
	for _, application := range leaves {
		if application.IsLossOfPay {
			continue
		}
		summary.PaidLeaveDays += application.PaidDays
	}

	summary.PayableDays = float64(summary.DaysPresent+summary.PaidHolidays+summary.Weekends) + summary.PaidLeaveDays

	return summary, nil
}

// CalculateForPeriod implements earnings.Service. The evaluation window is
// the month containing reference, clipped so it never extends past
// reference.
func (s *ServiceImpl) CalculateForPeriod(ctx context.Context, officerID, institutionID string, reference time.Time) (earnings.Result, error) {
	periodStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	periodEnd := time.Date(reference.Year(), reference.Month()+1, 0, 0, 0, 0, 0, reference.Location())
	if periodEnd.After(reference) {
		periodEnd = time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())
	}

	dataComplete := true
	comp, err := s.compensationRepo.GetByOfficerID(ctx, officerID, institutionID)
	if err != nil {
		if !errors.Is(err, officer.ErrCompensationNotFound) {
			return earnings.Result{}, earnings.FetchError("compensation record", err)
		}
		// Soft default: no compensation record means zero salary, flagged so
		// consumers can warn instead of showing a verified zero.
		comp = officer.Compensation{OfficerID: officerID, InstitutionID: institutionID}
		dataComplete = false
	}

	summary, err := s.Summarize(ctx, officerID, institutionID, periodStart, periodEnd)
	if err != nil {
		return earnings.Result{}, err
	}

	rates := DeriveRates(comp.AnnualSalary, reference, s.cfg.WorkingHoursPerDay)
	if comp.HourlyRateOverride != nil && !comp.HourlyRateOverride.IsZero() {
		rates.PerHourRate = *comp.HourlyRateOverride
	}

	multiplier := decimal.NewFromFloat(s.cfg.OvertimeMultiplier)
	if comp.OvertimeMultiplier != nil && !comp.OvertimeMultiplier.IsZero() {
		multiplier = *comp.OvertimeMultiplier
	}

	result := Compute(summary, rates, multiplier, reference)
	result.DataComplete = dataComplete
	return result, nil
}

// CalculateMonthly implements earnings.Service.
func (s *ServiceImpl) CalculateMonthly(ctx context.Context, officerID, institutionID string) (earnings.Result, error) {
	return s.CalculateForPeriod(ctx, officerID, institutionID, time.Now())
}
