package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`   // YYYY-MM-DD
	Status     Status `json:"status"` // Present | Absent
}

func (r *MarkAttendanceRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)

	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(string(r.Status), validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DateRangeFilter bounds are inclusive and optional.
type DateRangeFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *DateRangeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate == "" {
		f.StartDate = nil
	}
	if f.EndDate != nil && *f.EndDate == "" {
		f.EndDate = nil
	}

	if f.StartDate != nil {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
	MarkedAt   string `json:"marked_at"`
}

type AttendanceWithEmployeeResponse struct {
	AttendanceResponse
	EmployeeName string `json:"employee_name"`
}

type EmployeeStatsResponse struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	TotalPresent   int64           `json:"total_present"`
	TotalAbsent    int64           `json:"total_absent"`
	TotalRecords   int64           `json:"total_records"`
	AttendanceRate decimal.Decimal `json:"attendance_rate"` // percent present, 2 dp
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     a.Status,
		MarkedAt:   a.MarkedAt.UTC().Format(time.RFC3339Nano),
	}
}

func ToResponseWithEmployee(a AttendanceWithEmployee) AttendanceWithEmployeeResponse {
	return AttendanceWithEmployeeResponse{
		AttendanceResponse: ToResponse(a.Attendance),
		EmployeeName:       a.EmployeeName,
	}
}

// AttendanceRate returns present/total as a percentage rounded to two places.
func AttendanceRate(counts StatusCounts) decimal.Decimal {
	total := counts.Present + counts.Absent
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(counts.Present).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(2)
}
