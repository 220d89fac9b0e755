package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/zentra-hr/payroll-backend-go/internal/handler/http/response"
	adjustmentService "github.com/zentra-hr/payroll-backend-go/internal/service/adjustment"
)

type AdjustmentHandler interface {
	CreateAdvance(w http.ResponseWriter, r *http.Request)
	ListAdvances(w http.ResponseWriter, r *http.Request)

	CreateLoan(w http.ResponseWriter, r *http.Request)
	ListLoans(w http.ResponseWriter, r *http.Request)
	UpdateLoanStatus(w http.ResponseWriter, r *http.Request)

	CreateExtraPayment(w http.ResponseWriter, r *http.Request)
	ListExtraPayments(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService adjustmentService.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustmentService.AdjustmentService) AdjustmentHandler {
	return &adjustmentHandlerImpl{adjustmentService: adjustmentService}
}

func (h *adjustmentHandlerImpl) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.adjustmentService.CreateAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance recorded", result)
}

func (h *adjustmentHandlerImpl) ListAdvances(w http.ResponseWriter, r *http.Request) {
	result, err := h.adjustmentService.ListAdvances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adjustmentHandlerImpl) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.adjustmentService.CreateLoan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan recorded", result)
}

func (h *adjustmentHandlerImpl) ListLoans(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")

	result, err := h.adjustmentService.ListLoans(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adjustmentHandlerImpl) UpdateLoanStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	var req adjustment.UpdateLoanStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.adjustmentService.UpdateLoanStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adjustmentHandlerImpl) CreateExtraPayment(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateExtraPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.adjustmentService.CreateExtraPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Extra payment recorded", result)
}

func (h *adjustmentHandlerImpl) ListExtraPayments(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := r.URL.Query().Get("month")

	result, err := h.adjustmentService.ListExtraPayments(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
