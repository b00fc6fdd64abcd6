package overtime

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is an overtime request for a single date. Only approved requests
// contribute to pay.
type Request struct {
	ID             string
	OfficerID      string
	InstitutionID  string
	Date           time.Time
	RequestedHours float64
	Status         Status
	ReviewedBy     *string
	ReviewedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
