package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/increment"
	"github.com/zentra-hr/payroll-backend-go/internal/handler/http/response"
	salaryService "github.com/zentra-hr/payroll-backend-go/internal/service/salary"
)

type IncrementHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ActivatePending(w http.ResponseWriter, r *http.Request)
}

type incrementHandlerImpl struct {
	salaryService salaryService.SalaryService
}

func NewIncrementHandler(salaryService salaryService.SalaryService) IncrementHandler {
	return &incrementHandlerImpl{salaryService: salaryService}
}

func (h *incrementHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req increment.AddIncrementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.salaryService.AddIncrement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary increment recorded", result)
}

func (h *incrementHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.salaryService.ListEmployeeIncrements(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *incrementHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.salaryService.PendingIncrement(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *incrementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.ListIncrements(r.Context(), false)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *incrementHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.ListIncrements(r.Context(), true)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *incrementHandlerImpl) ActivatePending(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.ActivatePending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pending increments activated", result)
}
