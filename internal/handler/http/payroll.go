package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/zentra-hr/payroll-backend-go/internal/handler/http/response"
	payrollService "github.com/zentra-hr/payroll-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ListStatements(w http.ResponseWriter, r *http.Request)
	DetailedReport(w http.ResponseWriter, r *http.Request)
	LiveReport(w http.ResponseWriter, r *http.Request)
	Months(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payrollService.PayrollService
}

func NewPayrollHandler(payrollService payrollService.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GenerateMonthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated", result)
}

func (h *payrollHandlerImpl) ListStatements(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	employeeID := r.URL.Query().Get("employee_id")

	result, err := h.payrollService.ListStatements(r.Context(), month, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DetailedReport(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	if month == "" {
		response.BadRequest(w, "Month is required", nil)
		return
	}

	result, err := h.payrollService.DetailedReport(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) LiveReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.LiveReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Months(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Months(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
