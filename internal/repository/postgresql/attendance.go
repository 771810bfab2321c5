package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository.
// The (employee_id, date) unique constraint makes concurrent marks for the
// same pair collapse onto one row.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (employee_id, date, status, marked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			marked_at = EXCLUDED.marked_at
		RETURNING id, employee_id, date, status, marked_at
	`

	var (
		saved  attendance.Attendance
		status string
	)
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, string(record.Status), record.MarkedAt,
	).Scan(&saved.ID, &saved.EmployeeID, &saved.Date, &status, &saved.MarkedAt)
	if err != nil {
		if _, ok := pgError(err, foreignKeyViolation); ok {
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	saved.Status = attendance.Status(status)
	return saved, nil
}

// dateRangeWhere appends inclusive bounds on column to where/args.
func dateRangeWhere(where string, args []interface{}, column string, filter attendance.DateRangeFilter) (string, []interface{}) {
	argIdx := len(args) + 1
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND %s >= $%d", column, argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND %s <= $%d", column, argIdx)
		args = append(args, *filter.EndDate)
	}
	return where, args
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.DateRangeFilter) ([]attendance.AttendanceWithEmployee, error) {
	q := GetQuerier(ctx, a.db)

	where, args := dateRangeWhere("1 = 1", nil, "a.date", filter)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.marked_at, e.full_name
		FROM attendance a
		JOIN employees e ON e.employee_id = a.employee_id
		WHERE ` + where + `
		ORDER BY a.date DESC, a.marked_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.AttendanceWithEmployee, 0)
	for rows.Next() {
		var (
			rec    attendance.AttendanceWithEmployee
			status string
		)
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &status, &rec.MarkedAt, &rec.EmployeeName); err != nil {
			return nil, err
		}
		rec.Status = attendance.Status(status)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.DateRangeFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	where, args := dateRangeWhere("employee_id = $1", []interface{}{employeeID}, "date", filter)

	query := `
		SELECT id, employee_id, date, status, marked_at
		FROM attendance
		WHERE ` + where + `
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var (
			rec    attendance.Attendance
			status string
		)
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &status, &rec.MarkedAt); err != nil {
			return nil, err
		}
		rec.Status = attendance.Status(status)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByStatus(ctx context.Context, employeeID string) (attendance.StatusCounts, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent
		FROM attendance
		WHERE employee_id = $1
	`

	var counts attendance.StatusCounts
	if err := q.QueryRow(ctx, query, employeeID).Scan(&counts.Present, &counts.Absent); err != nil {
		return attendance.StatusCounts{}, fmt.Errorf("failed to count attendance for employee %s: %w", employeeID, err)
	}
	return counts, nil
}
