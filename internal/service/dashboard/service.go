package dashboard

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	now func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		now:                 time.Now,
	}
}

// GetStats returns combined dashboard data using parallel goroutines,
// one query each.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (*dashboard.DashboardStatsResponse, error) {
	today := s.now().Format("2006-01-02")

	var (
		totalEmployees int64
		dayStats       dashboard.DayAttendanceStats
		departments    []dashboard.DepartmentCount
		recent         []dashboard.RecentAttendanceItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Headcount
	g.Go(func() error {
		total, err := s.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		totalEmployees = total
		return nil
	})

	// 2. Today's present/absent
	g.Go(func() error {
		stats, err := s.GetAttendanceStatsByDate(gCtx, today)
		if err != nil {
			return err
		}
		dayStats = stats
		return nil
	})

	// 3. Department breakdown
	g.Go(func() error {
		counts, err := s.GetDepartmentCounts(gCtx)
		if err != nil {
			return err
		}
		departments = counts
		return nil
	})

	// 4. Latest marks
	g.Go(func() error {
		items, err := s.GetRecentAttendance(gCtx, dashboard.RecentAttendanceLimit)
		if err != nil {
			return err
		}
		recent = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if departments == nil {
		departments = []dashboard.DepartmentCount{}
	}
	if recent == nil {
		recent = []dashboard.RecentAttendanceItem{}
	}

	return &dashboard.DashboardStatsResponse{
		TotalEmployees:   totalEmployees,
		PresentToday:     dayStats.Present,
		AbsentToday:      dayStats.Absent,
		UnmarkedToday:    totalEmployees - dayStats.Present - dayStats.Absent,
		Departments:      departments,
		RecentAttendance: recent,
	}, nil
}
