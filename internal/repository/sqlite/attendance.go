package sqlite

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/mattn/go-sqlite3"
)

type attendanceRepository struct {
	db *database.SQLiteDB
}

func NewAttendanceRepository(db *database.SQLiteDB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	saved := record
	saved.MarkedAt = record.MarkedAt.UTC()

	query := `
		INSERT INTO attendance (employee_id, date, status, marked_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = excluded.status,
			marked_at = excluded.marked_at
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		saved.EmployeeID, saved.Date, string(saved.Status), saved.MarkedAt,
	).Scan(&saved.ID)
	if err != nil {
		if _, ok := constraintError(err, sqlite3.ErrConstraintForeignKey); ok {
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return saved, nil
}

func dateRangeWhere(where string, args []any, column string, filter attendance.DateRangeFilter) (string, []any) {
	if filter.StartDate != nil {
		where += " AND " + column + " >= ?"
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		where += " AND " + column + " <= ?"
		args = append(args, *filter.EndDate)
	}
	return where, args
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.DateRangeFilter) ([]attendance.AttendanceWithEmployee, error) {
	where, args := dateRangeWhere("1 = 1", nil, "a.date", filter)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.marked_at, e.full_name
		FROM attendance a
		JOIN employees e ON e.employee_id = a.employee_id
		WHERE ` + where + `
		ORDER BY a.date DESC, a.marked_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
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
	return records, rows.Err()
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.DateRangeFilter) ([]attendance.Attendance, error) {
	where, args := dateRangeWhere("employee_id = ?", []any{employeeID}, "date", filter)

	query := `
		SELECT id, employee_id, date, status, marked_at
		FROM attendance
		WHERE ` + where + `
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
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
	return records, rows.Err()
}

func (r *attendanceRepository) CountByStatus(ctx context.Context, employeeID string) (attendance.StatusCounts, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent
		FROM attendance
		WHERE employee_id = ?
	`

	var counts attendance.StatusCounts
	if err := r.db.QueryRowContext(ctx, query, employeeID).Scan(&counts.Present, &counts.Absent); err != nil {
		return attendance.StatusCounts{}, fmt.Errorf("failed to count attendance for employee %s: %w", employeeID, err)
	}
	return counts, nil
}
