package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/edupoint/ims-backend-go/internal/domain/earnings"
	"github.com/edupoint/ims-backend-go/internal/handler/http/response"
	"github.com/edupoint/ims-backend-go/internal/service/salary"
	"github.com/go-chi/chi/v5"
)

type EarningsHandler interface {
	GetEarnings(w http.ResponseWriter, r *http.Request)
	GetAttendanceSummary(w http.ResponseWriter, r *http.Request)
	GetSalaryStructure(w http.ResponseWriter, r *http.Request)
}

type EarningsHandlerImpl struct {
	earningsService earnings.Service
	salaryService   salary.Service
}

func NewEarningsHandler(earningsService earnings.Service, salaryService salary.Service) EarningsHandler {
	return &EarningsHandlerImpl{
		earningsService: earningsService,
		salaryService:   salaryService,
	}
}

// periodQuery reads optional month/year query parameters and returns the
// evaluation reference: the last day of a closed month, today otherwise.
func periodQuery(r *http.Request, now time.Time) (time.Time, bool, error) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")
	if monthStr == "" && yearStr == "" {
		return now, false, nil
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false, earnings.ErrInvalidPeriod
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 {
		return time.Time{}, false, earnings.ErrInvalidPeriod
	}

	monthEnd := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, now.Location())
	if monthEnd.After(now) {
		if time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location()).After(now) {
			return time.Time{}, false, earnings.ErrInvalidPeriod
		}
		return now, true, nil
	}
	return monthEnd, true, nil
}

// GetEarnings implements EarningsHandler.
func (h *EarningsHandlerImpl) GetEarnings(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	officerID := chi.URLParam(r, "officerID")
	if !claims.canAccessOfficer(officerID) {
		response.Forbidden(w, "You can only view your own earnings")
		return
	}

	reference, explicit, err := periodQuery(r, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var result earnings.Result
	if explicit {
		result, err = h.earningsService.CalculateForPeriod(r.Context(), officerID, claims.InstitutionID, reference)
	} else {
		result, err = h.earningsService.CalculateMonthly(r.Context(), officerID, claims.InstitutionID)
	}
	if err != nil {
		slog.Error("GetEarnings service error", "officer_id", officerID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result.ToResponse())
}

// GetAttendanceSummary implements EarningsHandler.
func (h *EarningsHandlerImpl) GetAttendanceSummary(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	officerID := chi.URLParam(r, "officerID")
	if !claims.canAccessOfficer(officerID) {
		response.Forbidden(w, "You can only view your own attendance summary")
		return
	}

	reference, _, err := periodQuery(r, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	periodStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	periodEnd := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())

	summary, err := h.earningsService.Summarize(r.Context(), officerID, claims.InstitutionID, periodStart, periodEnd)
	if err != nil {
		slog.Error("GetAttendanceSummary service error", "officer_id", officerID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary.ToResponse())
}

// GetSalaryStructure implements EarningsHandler.
func (h *EarningsHandlerImpl) GetSalaryStructure(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	officerID := chi.URLParam(r, "officerID")
	if !claims.canAccessOfficer(officerID) {
		response.Forbidden(w, "You can only view your own salary structure")
		return
	}

	structure, statutory, err := h.salaryService.GetStructure(r.Context(), officerID, claims.InstitutionID)
	if err != nil {
		slog.Error("GetSalaryStructure service error", "officer_id", officerID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, structure.ToResponse(statutory))
}
