package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AttendanceHandler interface {
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
	ExportAttendance(w http.ResponseWriter, r *http.Request)
	ListEmployeeAttendance(w http.ResponseWriter, r *http.Request)
	GetEmployeeStats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// MarkAttendance handles POST /attendance. A repeat mark for the same
// employee and date overwrites the earlier one.
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("Failed to decode attendance request", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked successfully", result)
}

// ListAttendance handles GET /attendance?start_date=&end_date=
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListAttendance(r.Context(), parseDateRange(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportAttendance handles GET /attendance/export
func (h *attendanceHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	// Buffer so a failed export still gets a JSON error instead of a
	// truncated file.
	var buf bytes.Buffer
	if err := h.attendanceService.ExportAttendance(r.Context(), parseDateRange(r), &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s.xlsx", time.Now().Format("20060102_150405"))
	response.Attachment(w, xlsxContentType, filename, buf.Bytes())
}

// ListEmployeeAttendance handles GET /attendance/employee/{employeeId}
func (h *attendanceHandlerImpl) ListEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeId")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.attendanceService.ListEmployeeAttendance(r.Context(), id, parseDateRange(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeStats handles GET /attendance/stats/employee/{employeeId}
func (h *attendanceHandlerImpl) GetEmployeeStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeId")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.attendanceService.GetEmployeeStats(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parseDateRange reads start_date/end_date, also accepting camelCase names.
func parseDateRange(r *http.Request) attendance.DateRangeFilter {
	query := r.URL.Query()
	var filter attendance.DateRangeFilter

	if v := firstNonEmpty(query.Get("start_date"), query.Get("startDate")); v != "" {
		filter.StartDate = &v
	}
	if v := firstNonEmpty(query.Get("end_date"), query.Get("endDate")); v != "" {
		filter.EndDate = &v
	}
	return filter
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
