package dashboard

import (
	"context"
)

// DayAttendanceStats holds present/absent counts for a single date
type DayAttendanceStats struct {
	Present int64
	Absent  int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)

	// GetAttendanceStatsByDate counts marks on date (YYYY-MM-DD) by status
	GetAttendanceStatsByDate(ctx context.Context, date string) (DayAttendanceStats, error)

	// GetDepartmentCounts groups employees by department, ordered by name
	GetDepartmentCounts(ctx context.Context) ([]DepartmentCount, error)

	// GetRecentAttendance returns the latest marks by marked_at
	GetRecentAttendance(ctx context.Context, limit int) ([]RecentAttendanceItem, error)
}
