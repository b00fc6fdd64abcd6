package payroll

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/edupoint/ims-backend-go/internal/domain/earnings"
	"github.com/edupoint/ims-backend-go/internal/domain/officer"
	"github.com/edupoint/ims-backend-go/internal/domain/payroll"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentOfficers bounds the per-officer fan-out of a batch run.
const maxConcurrentOfficers = 8

type Service interface {
	GenerateRun(ctx context.Context, institutionID, generatedBy string, req payroll.GenerateRunRequest) (payroll.Run, error)
	GetRun(ctx context.Context, id, institutionID string) (payroll.Run, error)
}

type ServiceImpl struct {
	payrollRepo     payroll.Repository
	officerRepo     officer.CompensationRepository
	earningsService earnings.Service
}

func NewPayrollService(
	payrollRepo payroll.Repository,
	officerRepo officer.CompensationRepository,
	earningsService earnings.Service,
) Service {
	return &ServiceImpl{
		payrollRepo:     payrollRepo,
		officerRepo:     officerRepo,
		earningsService: earningsService,
	}
}

// GenerateRun computes earnings for every officer of the institution and
// persists the result as one stable snapshot. Officer computations are
// independent and run in parallel; any fetch failure aborts the whole run so
// a partial snapshot never reaches payout.
func (s *ServiceImpl) GenerateRun(ctx context.Context, institutionID, generatedBy string, req payroll.GenerateRunRequest) (payroll.Run, error) {
	if err := req.Validate(); err != nil {
		return payroll.Run{}, err
	}

	exists, err := s.payrollRepo.RunExists(ctx, institutionID, req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("failed to check existing payroll run: %w", err)
	}
	if exists {
		return payroll.Run{}, payroll.ErrRunAlreadyExists
	}

	comps, err := s.officerRepo.ListByInstitution(ctx, institutionID)
	if err != nil {
		return payroll.Run{}, earnings.FetchError("compensation records", err)
	}

	reference := periodReference(req.PeriodMonth, req.PeriodYear, time.Now())

	runID := uuid.NewString()
	items := make([]payroll.RunItem, 0, len(comps))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOfficers)
	for _, comp := range comps {
		g.Go(func() error {
			result, err := s.earningsService.CalculateForPeriod(gctx, comp.OfficerID, institutionID, reference)
			if err != nil {
				return fmt.Errorf("officer %s: %w", comp.OfficerID, err)
			}

			mu.Lock()
			items = append(items, payroll.RunItem{
				ID:            uuid.NewString(),
				RunID:         runID,
				OfficerID:     comp.OfficerID,
				DaysPresent:   result.DaysPresent,
				PaidHolidays:  result.PaidHolidays,
				Weekends:      result.Weekends,
				PaidLeaveDays: result.PaidLeaveDays,
				PayableDays:   result.PayableDays,
				OvertimeHours: result.OvertimeHours,
				MonthlyBase:   result.MonthlyBase,
				PerDaySalary:  result.PerDaySalary,
				EarnedSalary:  result.EarnedSalary,
				OvertimePay:   result.OvertimePay,
				TotalEarnings: result.TotalEarnings,
				DataComplete:  result.DataComplete,
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return payroll.Run{}, err
	}

	run := payroll.Run{
		ID:            runID,
		InstitutionID: institutionID,
		PeriodMonth:   req.PeriodMonth,
		PeriodYear:    req.PeriodYear,
		Status:        payroll.RunStatusDraft,
		GeneratedBy:   generatedBy,
		Items:         items,
	}

	created, err := s.payrollRepo.CreateRun(ctx, run)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("failed to persist payroll run: %w", err)
	}
	return created, nil
}

// GetRun implements Service.
func (s *ServiceImpl) GetRun(ctx context.Context, id, institutionID string) (payroll.Run, error) {
	run, err := s.payrollRepo.GetRunByID(ctx, id, institutionID)
	if err != nil {
		return payroll.Run{}, err
	}
	return run, nil
}

// periodReference picks the evaluation reference for a period: the last day
// of the month for closed months, today for the current month.
func periodReference(month, year int, now time.Time) time.Time {
	monthEnd := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, now.Location())
	if monthEnd.After(now) {
		return now
	}
	return monthEnd
}
