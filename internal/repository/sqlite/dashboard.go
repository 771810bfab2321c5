package sqlite

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.SQLiteDB
}

func NewDashboardRepository(db *database.SQLiteDB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

func (r *dashboardRepository) GetAttendanceStatsByDate(ctx context.Context, date string) (dashboard.DayAttendanceStats, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent
		FROM attendance
		WHERE date = ?
	`

	var stats dashboard.DayAttendanceStats
	if err := r.db.QueryRowContext(ctx, query, date).Scan(&stats.Present, &stats.Absent); err != nil {
		return dashboard.DayAttendanceStats{}, fmt.Errorf("failed to get attendance stats by date: %w", err)
	}
	return stats, nil
}

func (r *dashboardRepository) GetDepartmentCounts(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT department, COUNT(*)
		FROM employees
		GROUP BY department
		ORDER BY department
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get department counts: %w", err)
	}
	defer rows.Close()

	departments := make([]dashboard.DepartmentCount, 0)
	for rows.Next() {
		var d dashboard.DepartmentCount
		if err := rows.Scan(&d.Name, &d.Count); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *dashboardRepository) GetRecentAttendance(ctx context.Context, limit int) ([]dashboard.RecentAttendanceItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.full_name, a.date, a.status
		FROM attendance a
		JOIN employees e ON e.employee_id = a.employee_id
		ORDER BY a.marked_at DESC, a.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent attendance: %w", err)
	}
	defer rows.Close()

	items := make([]dashboard.RecentAttendanceItem, 0, limit)
	for rows.Next() {
		var item dashboard.RecentAttendanceItem
		if err := rows.Scan(&item.EmployeeName, &item.Date, &item.Status); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
