package postgresql_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	ctx := context.Background()

	s, ok, err := NewTestDatabase(ctx)
	if !ok {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.TruncateAllTables(ctx))
	return s
}

func strPtr(s string) *string { return &s }

func seedEmployee(t *testing.T, repo employee.EmployeeRepository, id, dept string) {
	t.Helper()
	_, err := repo.Create(context.Background(), employee.Employee{
		EmployeeID: id,
		FullName:   "Employee " + id,
		Email:      id + "@x.com",
		Department: dept,
	})
	require.NoError(t, err)
}

// ===== EMPLOYEE REPOSITORY TESTS =====

func TestEmployeeRepository_CreateAndConflicts(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(s.DB)

	created, err := repo.Create(ctx, employee.Employee{EmployeeID: "E1", FullName: "Ada", Email: "a@x.com", Department: "Eng"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "E1", FullName: "B", Email: "b@x.com", Department: "Eng"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "E2", FullName: "B", Email: "a@x.com", Department: "Eng"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	found, err := repo.GetByEmployeeID(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByEmployeeID(ctx, "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_DeleteCascades(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	empRepo := postgresql.NewEmployeeRepository(s.DB)
	attRepo := postgresql.NewAttendanceRepository(s.DB)

	seedEmployee(t, empRepo, "E1", "Eng")
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		_, err := attRepo.Upsert(ctx, attendance.Attendance{EmployeeID: "E1", Date: d, Status: attendance.StatusPresent, MarkedAt: time.Now()})
		require.NoError(t, err)
	}

	require.NoError(t, empRepo.Delete(ctx, "E1"))
	assert.ErrorIs(t, empRepo.Delete(ctx, "E1"), employee.ErrEmployeeNotFound)

	var remaining int
	require.NoError(t, s.DB.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE employee_id = 'E1'`).Scan(&remaining))
	assert.Zero(t, remaining)
}

// ===== ATTENDANCE REPOSITORY TESTS =====

func TestAttendanceRepository_UpsertAndFilter(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	empRepo := postgresql.NewEmployeeRepository(s.DB)
	repo := postgresql.NewAttendanceRepository(s.DB)
	seedEmployee(t, empRepo, "E1", "Eng")

	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	first, err := repo.Upsert(ctx, attendance.Attendance{EmployeeID: "E1", Date: "2024-01-01", Status: attendance.StatusPresent, MarkedAt: base})
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, attendance.Attendance{EmployeeID: "E1", Date: "2024-01-01", Status: attendance.StatusAbsent, MarkedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusAbsent, second.Status)

	_, err = repo.Upsert(ctx, attendance.Attendance{EmployeeID: "E1", Date: "2024-01-05", Status: attendance.StatusPresent, MarkedAt: base})
	require.NoError(t, err)

	all, err := repo.List(ctx, attendance.DateRangeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2024-01-05", all[0].Date)
	assert.Equal(t, "Employee E1", all[0].EmployeeName)

	inverted, err := repo.List(ctx, attendance.DateRangeFilter{StartDate: strPtr("2024-02-01"), EndDate: strPtr("2024-01-01")})
	require.NoError(t, err)
	assert.Empty(t, inverted)

	counts, err := repo.CountByStatus(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCounts{Present: 1, Absent: 1}, counts)

	_, err = repo.Upsert(ctx, attendance.Attendance{EmployeeID: "ghost", Date: "2024-01-01", Status: attendance.StatusPresent, MarkedAt: base})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceRepository_ConcurrentUpsertKeepsOneRow(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	seedEmployee(t, postgresql.NewEmployeeRepository(s.DB), "E1", "Eng")
	repo := postgresql.NewAttendanceRepository(s.DB)

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := attendance.StatusPresent
			if i%2 == 1 {
				status = attendance.StatusAbsent
			}
			_, err := repo.Upsert(ctx, attendance.Attendance{EmployeeID: "E1", Date: "2024-01-01", Status: status, MarkedAt: time.Now()})
			if err != nil {
				errs <- fmt.Errorf("writer %d: %w", i, err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	records, err := repo.ListByEmployee(ctx, "E1", attendance.DateRangeFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

// ===== DASHBOARD REPOSITORY TESTS =====

func TestDashboardRepository(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	empRepo := postgresql.NewEmployeeRepository(s.DB)
	attRepo := postgresql.NewAttendanceRepository(s.DB)
	repo := postgresql.NewDashboardRepository(s.DB)

	seedEmployee(t, empRepo, "E1", "Eng")
	seedEmployee(t, empRepo, "E2", "Sales")

	_, err := attRepo.Upsert(ctx, attendance.Attendance{EmployeeID: "E1", Date: "2024-03-01", Status: attendance.StatusPresent, MarkedAt: time.Now()})
	require.NoError(t, err)

	total, err := repo.CountEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	day, err := repo.GetAttendanceStatsByDate(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), day.Present)
	assert.Zero(t, day.Absent)

	depts, err := repo.GetDepartmentCounts(ctx)
	require.NoError(t, err)
	require.Len(t, depts, 2)
	assert.Equal(t, "Eng", depts[0].Name)

	recent, err := repo.GetRecentAttendance(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Employee E1", recent[0].EmployeeName)
}
