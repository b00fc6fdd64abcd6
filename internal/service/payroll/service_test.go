package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edupoint/ims-backend-go/internal/domain/earnings"
	"github.com/edupoint/ims-backend-go/internal/domain/officer"
	"github.com/edupoint/ims-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	exists    bool
	existsErr error
	createErr error

	created *payroll.Run
	stored  payroll.Run
	getErr  error
}

func (f *fakePayrollRepo) CreateRun(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	if f.createErr != nil {
		return payroll.Run{}, f.createErr
	}
	f.created = &run
	return run, nil
}

func (f *fakePayrollRepo) GetRunByID(ctx context.Context, id, institutionID string) (payroll.Run, error) {
	return f.stored, f.getErr
}

func (f *fakePayrollRepo) RunExists(ctx context.Context, institutionID string, month, year int) (bool, error) {
	return f.exists, f.existsErr
}

type fakeCompensationRepo struct {
	comps []officer.Compensation
	err   error
}

func (f *fakeCompensationRepo) GetByOfficerID(ctx context.Context, officerID, institutionID string) (officer.Compensation, error) {
	return officer.Compensation{}, officer.ErrCompensationNotFound
}

func (f *fakeCompensationRepo) ListByInstitution(ctx context.Context, institutionID string) ([]officer.Compensation, error) {
	return f.comps, f.err
}

func (f *fakeCompensationRepo) SaveStructure(ctx context.Context, officerID, institutionID string, structure officer.SalaryStructure, statutory officer.StatutoryInfo) error {
	return nil
}

type fakeEarningsService struct {
	results map[string]earnings.Result
	errFor  map[string]error
}

func (f *fakeEarningsService) Summarize(ctx context.Context, officerID, institutionID string, periodStart, periodEnd time.Time) (earnings.AttendanceSummary, error) {
	return earnings.AttendanceSummary{}, nil
}

func (f *fakeEarningsService) CalculateForPeriod(ctx context.Context, officerID, institutionID string, reference time.Time) (earnings.Result, error) {
	if err, ok := f.errFor[officerID]; ok {
		return earnings.Result{}, err
	}
	return f.results[officerID], nil
}

func (f *fakeEarningsService) CalculateMonthly(ctx context.Context, officerID, institutionID string) (earnings.Result, error) {
	return f.CalculateForPeriod(ctx, officerID, institutionID, time.Now())
}

func comps(ids ...string) []officer.Compensation {
	out := make([]officer.Compensation, 0, len(ids))
	for _, id := range ids {
		out = append(out, officer.Compensation{OfficerID: id, AnnualSalary: decimal.NewFromInt(1200000)})
	}
	return out
}

func TestGenerateRun(t *testing.T) {
	ctx := context.Background()
	req := payroll.GenerateRunRequest{PeriodMonth: 6, PeriodYear: 2025}

	t.Run("snapshots every officer", func(t *testing.T) {
		payrollRepo := &fakePayrollRepo{}
		svc := NewPayrollService(payrollRepo, &fakeCompensationRepo{comps: comps("off-1", "off-2", "off-3")},
			&fakeEarningsService{results: map[string]earnings.Result{
				"off-1": {OfficerID: "off-1", PayableDays: 27, TotalEarnings: decimal.NewFromInt(92500), DataComplete: true},
				"off-2": {OfficerID: "off-2", PayableDays: 30, TotalEarnings: decimal.NewFromInt(100000), DataComplete: true},
				"off-3": {OfficerID: "off-3", DataComplete: false},
			}},
		)

		run, err := svc.GenerateRun(ctx, "inst-1", "user-1", req)
		require.NoError(t, err)

		assert.Len(t, run.Items, 3)
		assert.Equal(t, payroll.RunStatusDraft, run.Status)
		assert.Equal(t, 6, run.PeriodMonth)
		assert.Equal(t, 2025, run.PeriodYear)
		assert.Equal(t, "user-1", run.GeneratedBy)
		require.NotNil(t, payrollRepo.created)
		assert.Len(t, payrollRepo.created.Items, 3)

		byOfficer := make(map[string]payroll.RunItem)
		for _, item := range run.Items {
			byOfficer[item.OfficerID] = item
		}
		assert.Equal(t, 27.0, byOfficer["off-1"].PayableDays)
		assert.False(t, byOfficer["off-3"].DataComplete)
	})

	t.Run("duplicate period conflicts", func(t *testing.T) {
		svc := NewPayrollService(&fakePayrollRepo{exists: true}, &fakeCompensationRepo{}, &fakeEarningsService{})

		_, err := svc.GenerateRun(ctx, "inst-1", "user-1", req)
		assert.ErrorIs(t, err, payroll.ErrRunAlreadyExists)
	})

	t.Run("invalid period rejected", func(t *testing.T) {
		svc := NewPayrollService(&fakePayrollRepo{}, &fakeCompensationRepo{}, &fakeEarningsService{})

		_, err := svc.GenerateRun(ctx, "inst-1", "user-1", payroll.GenerateRunRequest{PeriodMonth: 13, PeriodYear: 2025})
		assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
	})

	t.Run("officer listing failure is a fetch error", func(t *testing.T) {
		svc := NewPayrollService(&fakePayrollRepo{}, &fakeCompensationRepo{err: errors.New("down")}, &fakeEarningsService{})

		_, err := svc.GenerateRun(ctx, "inst-1", "user-1", req)
		assert.ErrorIs(t, err, earnings.ErrDataFetch)
	})

	t.Run("single officer failure aborts the run", func(t *testing.T) {
		payrollRepo := &fakePayrollRepo{}
		svc := NewPayrollService(payrollRepo, &fakeCompensationRepo{comps: comps("off-1", "off-2")},
			&fakeEarningsService{
				results: map[string]earnings.Result{"off-1": {OfficerID: "off-1"}},
				errFor:  map[string]error{"off-2": earnings.FetchError("attendance records", errors.New("reset"))},
			},
		)

		_, err := svc.GenerateRun(ctx, "inst-1", "user-1", req)
		require.Error(t, err)
		assert.ErrorIs(t, err, earnings.ErrDataFetch)
		assert.Nil(t, payrollRepo.created)
	})

	t.Run("empty institution produces an empty run", func(t *testing.T) {
		svc := NewPayrollService(&fakePayrollRepo{}, &fakeCompensationRepo{}, &fakeEarningsService{})

		run, err := svc.GenerateRun(ctx, "inst-1", "user-1", req)
		require.NoError(t, err)
		assert.Empty(t, run.Items)
	})
}

func TestGetRun(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored run", func(t *testing.T) {
		stored := payroll.Run{ID: "run-1", InstitutionID: "inst-1", Status: payroll.RunStatusDraft}
		svc := NewPayrollService(&fakePayrollRepo{stored: stored}, &fakeCompensationRepo{}, &fakeEarningsService{})

		run, err := svc.GetRun(ctx, "run-1", "inst-1")
		require.NoError(t, err)
		assert.Equal(t, stored, run)
	})

	t.Run("missing run propagates", func(t *testing.T) {
		svc := NewPayrollService(&fakePayrollRepo{getErr: payroll.ErrRunNotFound}, &fakeCompensationRepo{}, &fakeEarningsService{})

		_, err := svc.GetRun(ctx, "run-x", "inst-1")
		assert.ErrorIs(t, err, payroll.ErrRunNotFound)
	})
}

func TestPeriodReference(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

	t.Run("closed month uses month end", func(t *testing.T) {
		ref := periodReference(5, 2025, now)
		assert.Equal(t, time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC), ref)
	})

	t.Run("current month uses now", func(t *testing.T) {
		ref := periodReference(6, 2025, now)
		assert.Equal(t, now, ref)
	})
}
