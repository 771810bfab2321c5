package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

// GetAttendanceStatsByDate returns present/absent for a specific day
func (r *dashboardRepositoryImpl) GetAttendanceStatsByDate(ctx context.Context, date string) (dashboard.DayAttendanceStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent
		FROM attendance
		WHERE date = $1
	`

	var stats dashboard.DayAttendanceStats
	if err := q.QueryRow(ctx, query, date).Scan(&stats.Present, &stats.Absent); err != nil {
		return dashboard.DayAttendanceStats{}, fmt.Errorf("failed to get attendance stats by date: %w", err)
	}
	return stats, nil
}

func (r *dashboardRepositoryImpl) GetDepartmentCounts(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, COUNT(*)
		FROM employees
		GROUP BY department
		ORDER BY department
	`

	rows, err := q.Query(ctx, query)
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

// GetRecentAttendance returns the latest marks joined with employee names
func (r *dashboardRepositoryImpl) GetRecentAttendance(ctx context.Context, limit int) ([]dashboard.RecentAttendanceItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.full_name, a.date, a.status
		FROM attendance a
		JOIN employees e ON e.employee_id = a.employee_id
		ORDER BY a.marked_at DESC, a.id DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
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
