package attendance

import (
	"context"
	"io"
)

type AttendanceService interface {
	// MarkAttendance creates or overwrites the mark for an employee on a date
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance returns all records in the optional date range with employee names
	ListAttendance(ctx context.Context, filter DateRangeFilter) ([]AttendanceWithEmployeeResponse, error)

	// ListEmployeeAttendance returns one employee's records in the optional date range
	ListEmployeeAttendance(ctx context.Context, employeeID string, filter DateRangeFilter) ([]AttendanceResponse, error)

	// GetEmployeeStats returns present/absent counts for one employee
	GetEmployeeStats(ctx context.Context, employeeID string) (EmployeeStatsResponse, error)

	// ExportAttendance writes the ListAttendance rows as an xlsx workbook
	ExportAttendance(ctx context.Context, filter DateRangeFilter, w io.Writer) error
}
