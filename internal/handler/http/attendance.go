package http

import (
	"net/http"

	"github.com/zentra-hr/payroll-backend-go/internal/handler/http/response"
	attendanceService "github.com/zentra-hr/payroll-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	ListByMonth(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendanceService.AttendanceService
}

func NewAttendanceHandler(attendanceService attendanceService.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "month is required", nil)
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	result, err := h.attendanceService.ListByMonth(r.Context(), month, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
