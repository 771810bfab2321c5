package attendance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/spreadsheet"
)

const exportSheetName = "Attendance"

var exportHeaders = []string{"ID", "Employee ID", "Employee Name", "Date", "Status", "Marked At"}

type AttendanceServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewAttendanceService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.requireEmployee(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// The employee may be deleted between the check and the write; the
	// repository maps the FK failure back to ErrEmployeeNotFound.
	record, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
		MarkedAt:   s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	slog.Info("Attendance marked",
		"employee_id", record.EmployeeID,
		"date", record.Date,
		"status", record.Status,
	)

	return attendance.ToResponse(record), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.DateRangeFilter) ([]attendance.AttendanceWithEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceWithEmployeeResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponseWithEmployee(r))
	}
	return responses, nil
}

// ListEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListEmployeeAttendance(ctx context.Context, employeeID string, filter attendance.DateRangeFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses, nil
}

// GetEmployeeStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeStats(ctx context.Context, employeeID string) (attendance.EmployeeStatsResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.EmployeeStatsResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.EmployeeStatsResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	counts, err := s.attendanceRepo.CountByStatus(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeStatsResponse{}, fmt.Errorf("failed to count attendance: %w", err)
	}

	return attendance.EmployeeStatsResponse{
		EmployeeID:     emp.EmployeeID,
		EmployeeName:   emp.FullName,
		TotalPresent:   counts.Present,
		TotalAbsent:    counts.Absent,
		TotalRecords:   counts.Present + counts.Absent,
		AttendanceRate: attendance.AttendanceRate(counts),
	}, nil
}

// ExportAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportAttendance(ctx context.Context, filter attendance.DateRangeFilter, w io.Writer) error {
	records, err := s.ListAttendance(ctx, filter)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{r.ID, r.EmployeeID, r.EmployeeName, r.Date, string(r.Status), r.MarkedAt})
	}

	if err := spreadsheet.Write(w, exportSheetName, spreadsheet.Table{Headers: exportHeaders, Rows: rows}); err != nil {
		return fmt.Errorf("failed to export attendance: %w", err)
	}

	slog.Info("Attendance exported", "rows", len(rows))
	return nil
}

func (s *AttendanceServiceImpl) requireEmployee(ctx context.Context, employeeID string) error {
	exists, err := s.employeeRepo.ExistsByEmployeeID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
