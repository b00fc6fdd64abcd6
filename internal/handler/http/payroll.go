package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/edupoint/ims-backend-go/internal/domain/payroll"
	"github.com/edupoint/ims-backend-go/internal/handler/http/response"
	payrollService "github.com/edupoint/ims-backend-go/internal/service/payroll"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GenerateRun(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payrollService.Service
}

func NewPayrollHandler(svc payrollService.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: svc}
}

// GenerateRun implements PayrollHandler.
func (h *PayrollHandlerImpl) GenerateRun(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req payroll.GenerateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GenerateRun decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	run, err := h.payrollService.GenerateRun(r.Context(), claims.InstitutionID, claims.UserID, req)
	if err != nil {
		slog.Error("GenerateRun service error",
			"institution_id", claims.InstitutionID,
			"period_month", req.PeriodMonth,
			"period_year", req.PeriodYear,
			"error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll run generated",
		"run_id", run.ID,
		"institution_id", run.InstitutionID,
		"officers", len(run.Items))
	response.Created(w, "Payroll run generated", run.ToResponse())
}

// GetRun implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	runID := chi.URLParam(r, "runID")
	run, err := h.payrollService.GetRun(r.Context(), runID, claims.InstitutionID)
	if err != nil {
		slog.Error("GetRun service error", "run_id", runID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, run.ToResponse())
}
