package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert inserts the record or, when one already exists for the same
	// (employee, date), overwrites its status and marked_at. Returns
	// employee.ErrEmployeeNotFound if the employee row is missing.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)

	// List returns records joined with employee names, ordered by date
	// then marked_at, both descending.
	List(ctx context.Context, filter DateRangeFilter) ([]AttendanceWithEmployee, error)

	// ListByEmployee returns one employee's records ordered by date descending.
	ListByEmployee(ctx context.Context, employeeID string, filter DateRangeFilter) ([]Attendance, error)

	CountByStatus(ctx context.Context, employeeID string) (StatusCounts, error)
}
