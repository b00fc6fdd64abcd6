package leave

import (
	"time"
)

type Status string

const (
	StatusWaitingApproval Status = "waiting_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusCancelled       Status = "cancelled"
)

// Application is a leave application spanning [StartDate, EndDate]. PaidDays
// is the number of days the application pays for (half days allowed); an
// application marked loss-of-pay contributes nothing regardless of PaidDays.
type Application struct {
	ID            string
	ApplicantID   string
	InstitutionID string
	StartDate     time.Time
	EndDate       time.Time
	PaidDays      float64
	IsLossOfPay   bool
	Status        Status
	Reason        string
	ApprovedBy    *string
	ApprovedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
