package dashboard

import "context"

// RecentAttendanceLimit is how many events GetStats reports.
const RecentAttendanceLimit = 5

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetStats returns today's counts, department headcounts and recent marks
	GetStats(ctx context.Context) (*DashboardStatsResponse, error)
}
