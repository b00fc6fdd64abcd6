package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/edupoint/ims-backend-go/internal/domain/auth"
	"github.com/edupoint/ims-backend-go/internal/domain/calendar"
	"github.com/edupoint/ims-backend-go/internal/domain/earnings"
	"github.com/edupoint/ims-backend-go/internal/domain/officer"
	"github.com/edupoint/ims-backend-go/internal/domain/payroll"
	"github.com/edupoint/ims-backend-go/internal/domain/user"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// A failed collaborator fetch is an upstream problem, never reported as a
	// zero result.
	var fetchErr *earnings.DataFetchError
	if errors.As(err, &fetchErr) {
		BadGateway(w, fmt.Sprintf("Failed to fetch %s", fetchErr.Source))
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "HR or admin access required")

	// Officer domain errors
	case errors.Is(err, officer.ErrCompensationNotFound):
		NotFound(w, "Compensation record not found")
	case errors.Is(err, officer.ErrOfficerNotFound):
		NotFound(w, "Officer not found")

	// Earnings domain errors
	case errors.Is(err, earnings.ErrInvalidPeriod):
		BadRequest(w, "Invalid period", nil)
	case errors.Is(err, calendar.ErrInvalidRange):
		BadRequest(w, "Invalid date range", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunAlreadyExists):
		Conflict(w, "Payroll run already exists for this period")
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
