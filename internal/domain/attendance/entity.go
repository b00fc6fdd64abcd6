package attendance

import (
	"time"
)

type Status string

const (
	StatusCheckedIn    Status = "checked_in"
	StatusCheckedOut   Status = "checked_out"
	StatusAutoCheckout Status = "auto_checkout"
)

// Record is one attendance session of an officer on a calendar day. Date is
// the working day, not a timestamp; CheckIn/CheckOut are absolute times.
type Record struct {
	ID            string
	OfficerID     string
	InstitutionID string
	Date          time.Time
	CheckIn       *time.Time
	CheckOut      *time.Time
	HoursWorked   float64
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Completed reports whether the session counts toward pay. Open sessions
// (checked in, never checked out) are excluded from every aggregation.
func (r Record) Completed() bool {
	return r.Status == StatusCheckedOut || r.Status == StatusAutoCheckout
}
