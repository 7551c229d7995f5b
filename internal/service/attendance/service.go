package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
)

const (
	dateFormat      = "2006-01-02"
	timestampFormat = "2006-01-02 15:04:05"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format(dateFormat),
		Status:     string(att.Status),
		CreatedAt:  att.CreatedAt.Format(timestampFormat),
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Validate already rejects future dates against wall-clock time, but
	// the ledger must not accept a violating date when called directly.
	// ParsedDate is UTC midnight; compare against the local calendar day.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.ParsedDate.After(today) {
		return attendance.AttendanceResponse{}, attendance.ErrFutureDate
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if emp == nil {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.ParsedDate)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceExists
	}

	// The unique (employee_id, date) constraint backstops a concurrent
	// create racing past the check above.
	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.ParsedDate,
		Status:     req.ParsedStatus,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 100
	}

	records, err := s.attendanceRepo.GetAll(ctx, filter.Skip, filter.Limit, filter.Date)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	results := make([]attendance.AttendanceWithEmployeeResponse, 0, len(records))
	for _, rec := range records {
		results = append(results, attendance.AttendanceWithEmployeeResponse{
			AttendanceResponse: mapAttendanceToResponse(rec.Attendance),
			EmployeeName:       rec.EmployeeName,
			EmployeeCode:       rec.EmployeeCode,
			Department:         rec.Department,
		})
	}

	return attendance.ListAttendanceResponse{Records: results, Total: int64(len(results))}, nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID int64, startDate, endDate *time.Time) (attendance.EmployeeAttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp == nil {
		return attendance.EmployeeAttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	records, err := s.attendanceRepo.GetByEmployee(ctx, employeeID, startDate, endDate)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to get attendance records: %w", err)
	}

	summary, err := s.attendanceRepo.GetSummary(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to get attendance summary: %w", err)
	}

	results := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		results = append(results, mapAttendanceToResponse(rec))
	}

	var updatedAt *string
	if emp.UpdatedAt != nil {
		s := emp.UpdatedAt.Format(timestampFormat)
		updatedAt = &s
	}

	return attendance.EmployeeAttendanceResponse{
		Employee: employee.EmployeeResponse{
			ID:           emp.ID,
			EmployeeCode: emp.EmployeeCode,
			FullName:     emp.FullName,
			Email:        emp.Email,
			Department:   emp.Department,
			CreatedAt:    emp.CreatedAt.Format(timestampFormat),
			UpdatedAt:    updatedAt,
		},
		AttendanceRecords: results,
		Summary: attendance.SummaryResponse{
			TotalDays:            summary.TotalDays,
			PresentDays:          summary.PresentDays,
			AbsentDays:           summary.AbsentDays,
			AttendancePercentage: summary.Percentage,
		},
	}, nil
}

// UpdateStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateStatus(ctx context.Context, id int64, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.attendanceRepo.UpdateStatus(ctx, id, attendance.Status(req.Status))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}
	if updated == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	return mapAttendanceToResponse(*updated), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	found, err := s.attendanceRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if !found {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
