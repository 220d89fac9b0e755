package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/calendar"
	"github.com/zentra-hr/payroll-backend-go/internal/handler/http/response"
	calendarService "github.com/zentra-hr/payroll-backend-go/internal/service/calendar"
)

type CalendarHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	AddHoliday(w http.ResponseWriter, r *http.Request)
	RemoveHoliday(w http.ResponseWriter, r *http.Request)
	WorkingDays(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendarService.CalendarService
}

func NewCalendarHandler(calendarService calendarService.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{calendarService: calendarService}
}

func (h *calendarHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.calendarService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calendarHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req calendar.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calendarHandlerImpl) AddHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.AddHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.AddHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday added", result)
}

func (h *calendarHandlerImpl) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if date == "" {
		response.BadRequest(w, "Holiday date is required", nil)
		return
	}

	result, err := h.calendarService.RemoveHoliday(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday removed", result)
}

func (h *calendarHandlerImpl) WorkingDays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Invalid month", nil)
		return
	}

	result, err := h.calendarService.WorkingDays(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
