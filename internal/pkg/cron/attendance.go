package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edupoint/ims-backend-go/internal/config"
	"github.com/edupoint/ims-backend-go/internal/domain/attendance"
)

// staleSessionAge is how long after check-in an open session is considered
// abandoned.
const staleSessionAge = 16 * time.Hour

type AttendanceJobs struct {
	attendanceRepo attendance.Repository
	cfg            config.PayrollConfig
}

func NewAttendanceJobs(attendanceRepo attendance.Repository, cfg config.PayrollConfig) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		cfg:            cfg,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_checkout_stale_sessions", 1*time.Hour, j.AutoCheckoutStaleSessions)
}

// AutoCheckoutStaleSessions closes open sessions whose check-in is older than
// the stale cutoff. Closed sessions get status auto_checkout, which the
// earnings aggregation counts as a completed day; hours are capped at the
// configured working day so a forgotten checkout cannot inflate pay.
func (j *AttendanceJobs) AutoCheckoutStaleSessions(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-checkout stale sessions job")

	cutoff := time.Now().UTC().Add(-staleSessionAge)
	staleSessions, err := j.attendanceRepo.GetOpenSessions(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to get stale sessions: %w", err)
	}

	if len(staleSessions) == 0 {
		slog.Info("Cron: No stale sessions found")
		return nil
	}

	closedCount := 0
	for _, session := range staleSessions {
		if session.CheckIn == nil {
			continue
		}

		hours := j.cfg.WorkingHoursPerDay
		checkOut := session.CheckIn.Add(time.Duration(hours * float64(time.Hour)))
		if elapsed := time.Since(*session.CheckIn).Hours(); elapsed < hours {
			hours = elapsed
			checkOut = time.Now().UTC()
		}

		session.CheckOut = &checkOut
		session.HoursWorked = hours
		session.Status = attendance.StatusAutoCheckout

		if err := j.attendanceRepo.Update(ctx, session); err != nil {
			slog.Error("Cron: Failed to auto-checkout session",
				"record_id", session.ID,
				"officer_id", session.OfficerID,
				"error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: Auto-checked-out stale sessions", "count", closedCount)
	return nil
}
